package bidding

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/validation"
	"auction-house/utils"
)

// BiddingService enforces the monotonic highest-bid rule for a product
type BiddingService struct {
	mu sync.Mutex // serializes the compare-and-replace on product.Bid
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService() *BiddingService {
	return &BiddingService{}
}

// PlaceBid validates the amount and records the bidder's bid on the product.
// A bid is accepted only when the product has no bid yet or the amount is
// strictly greater than the current highest; otherwise the product is left
// unchanged and the error reports the amount to beat. The advertiser is not
// prevented from bidding on their own product.
func (s *BiddingService) PlaceBid(product *models.Product, bidder *models.User, amount string) (models.Bid, error) {
	if product == nil || bidder == nil {
		return models.Bid{}, fmt.Errorf("bidding: %w - missing product or bidder", auctionerrors.ErrValidation)
	}

	amt, ok := validation.ValidCurrency(amount)
	if !ok {
		return models.Bid{}, fmt.Errorf("bidding: %w - %q is not a valid currency amount", auctionerrors.ErrValidation, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if product.Bid != nil && !amt.GreaterThan(product.Bid.Amount) {
		return models.Bid{}, fmt.Errorf("bidding: %w - current highest bid is %s",
			auctionerrors.ErrBidTooLow, product.Bid.Amount.StringFixed(2))
	}

	bid := &models.Bid{
		BidID:       utils.NewID(),
		BidderName:  bidder.Name,
		BidderEmail: bidder.Email,
		Amount:      amt,
		CreatedAt:   time.Now().UTC(),
	}
	// single assignment, no partial state
	product.Bid = bid

	return *bid, nil
}
