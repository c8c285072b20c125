package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid field input"
	case errors.Is(err, auctionerrors.ErrInvalidSelection):
		return http.StatusBadRequest, "invalid selection"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrDuplicateEmail):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrNoBid):
		return http.StatusConflict, "product has no bid"
	case errors.Is(err, auctionerrors.ErrNotWinningBidder):
		return http.StatusForbidden, "not the winning bidder"
	case errors.Is(err, auctionerrors.ErrAddressAlreadySet):
		return http.StatusConflict, "home address already recorded"
	case errors.Is(err, auctionerrors.ErrNoAddressOnFile):
		return http.StatusUnprocessableEntity, "no home address on file"
	case errors.Is(err, auctionerrors.ErrInvalidDeliveryAddress):
		return http.StatusUnprocessableEntity, "invalid delivery address"
	case errors.Is(err, auctionerrors.ErrCapacityExceeded):
		return http.StatusServiceUnavailable, "user directory at full capacity"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError sends the mapped JSON error for a domain failure and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": "+message, ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// NewBidResponse converts a bid into its wire representation
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:       bid.BidID,
		BidderName:  bid.BidderName,
		BidderEmail: bid.BidderEmail,
		Amount:      bid.Amount.StringFixed(2),
		CreatedAt:   bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewProductResponse converts a product into its wire representation
func NewProductResponse(product *model.Product) ProductResponse {
	resp := ProductResponse{
		ProductID:   product.ProductID,
		Number:      product.Number,
		Name:        product.Name,
		Description: product.Description,
		SalePrice:   product.SalePrice.StringFixed(2),
	}
	if product.Bid != nil {
		bid := NewBidResponse(*product.Bid)
		resp.Bid = &bid
	}
	return resp
}

// NewProductListResponse converts a rendered product view into its wire
// representation
func NewProductListResponse(products []*model.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, NewProductResponse(p))
	}
	return resp
}

// NewPurchaseResponse converts a purchase record into its wire representation
func NewPurchaseResponse(record model.PurchaseRecord) PurchaseResponse {
	return PurchaseResponse{
		SellerEmail:        record.SellerEmail,
		ProductName:        record.ProductName,
		ProductDescription: record.ProductDescription,
		ListPrice:          record.ListPrice.StringFixed(2),
		AmountPaid:         record.AmountPaid.StringFixed(2),
		DeliverySynopsis:   record.DeliverySynopsis,
	}
}
