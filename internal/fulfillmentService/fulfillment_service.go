package fulfillment

import (
	"fmt"
	"strings"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
)

// synopsisTimeLayout is how pickup window bounds appear in the synopsis
const synopsisTimeLayout = "2006-01-02 15:04"

// minimum lead time before a pickup window may open, and minimum duration
// of the window itself
const minLead = time.Hour

// FulfillmentService resolves how a sold product reaches its buyer: a pickup
// window or a delivery address. It never mutates the product's bid; it only
// attaches the pickup window and a human-readable delivery synopsis.
type FulfillmentService struct {
	nowFn func() time.Time
}

// NewFulfillmentService creates a new FulfillmentService instance
func NewFulfillmentService() *FulfillmentService {
	return &FulfillmentService{
		nowFn: time.Now,
	}
}

// ArrangePickup attaches a pickup window to the product. The window must
// start strictly more than one hour from now and end strictly more than one
// hour after it starts.
func (s *FulfillmentService) ArrangePickup(product *models.Product, start, end time.Time) (models.PickupWindow, error) {
	if product == nil {
		return models.PickupWindow{}, fmt.Errorf("fulfillment: %w - missing product", auctionerrors.ErrValidation)
	}

	now := s.nowFn()
	if !start.After(now.Add(minLead)) {
		return models.PickupWindow{}, fmt.Errorf("fulfillment: %w - pickup must start after %s",
			auctionerrors.ErrValidation, now.Add(minLead).Format(synopsisTimeLayout))
	}
	if !end.After(start.Add(minLead)) {
		return models.PickupWindow{}, fmt.Errorf("fulfillment: %w - pickup must end after %s",
			auctionerrors.ErrValidation, start.Add(minLead).Format(synopsisTimeLayout))
	}

	window := models.PickupWindow{Start: start, End: end}
	product.Pickup = &window
	product.DeliverySynopsis = fmt.Sprintf("Pick up between %s and %s",
		start.Format(synopsisTimeLayout), end.Format(synopsisTimeLayout))

	return window, nil
}

// ArrangeDelivery records a delivery plan for the product. With
// useHomeAddress the buyer's stored home address is used; if none is on file
// the negotiation fails and no plan is recorded. Otherwise the ad-hoc
// address is used and must not be blank.
func (s *FulfillmentService) ArrangeDelivery(product *models.Product, buyer *models.User, useHomeAddress bool, address string) (string, error) {
	if product == nil || buyer == nil {
		return "", fmt.Errorf("fulfillment: %w - missing product or buyer", auctionerrors.ErrValidation)
	}

	var synopsis string
	if useHomeAddress {
		if buyer.HomeAddress == "" {
			return "", fmt.Errorf("fulfillment: %w", auctionerrors.ErrNoAddressOnFile)
		}
		synopsis = "Home delivery to " + buyer.HomeAddress
	} else {
		address = strings.TrimSpace(address)
		if address == "" {
			return "", fmt.Errorf("fulfillment: %w", auctionerrors.ErrInvalidDeliveryAddress)
		}
		synopsis = "Deliver to " + address
	}

	product.DeliverySynopsis = synopsis

	return synopsis, nil
}
