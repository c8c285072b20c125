package ledger

import (
	"fmt"
	"sort"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
)

// LedgerService finalizes accepted bids into purchase records
type LedgerService struct {
	store repository.AuctionStore
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(store repository.AuctionStore) *LedgerService {
	return &LedgerService{
		store: store,
	}
}

// BiddedProducts returns the advertiser's products that currently carry a
// bid, sorted by name, then description, then list price, with 1..N row
// numbers assigned. Sale selection indexes into exactly this view.
func (s *LedgerService) BiddedProducts(advertiser *models.User) []*models.Product {
	var bidded []*models.Product
	for _, p := range advertiser.AdvertisedProducts {
		if p.Bid != nil {
			bidded = append(bidded, p)
		}
	}

	sort.SliceStable(bidded, func(i, j int) bool {
		if bidded[i].Name != bidded[j].Name {
			return bidded[i].Name < bidded[j].Name
		}
		if bidded[i].Description != bidded[j].Description {
			return bidded[i].Description < bidded[j].Description
		}
		return bidded[i].SalePrice.LessThan(bidded[j].SalePrice)
	})
	for i, p := range bidded {
		p.Number = i + 1
	}

	return bidded
}

// FinalizeSale accepts the bid on the advertiser's product at the given
// 1-based row of the bid-filtered view and appends a purchase record to the
// winning bidder's history. The product itself stays in the catalog.
func (s *LedgerService) FinalizeSale(advertiser *models.User, rowNumber int) (models.PurchaseRecord, error) {
	view := s.BiddedProducts(advertiser)
	if rowNumber < 1 || rowNumber > len(view) {
		return models.PurchaseRecord{}, fmt.Errorf("ledger: %w - no product at row %d", auctionerrors.ErrInvalidSelection, rowNumber)
	}

	product := view[rowNumber-1]
	if product.Bid == nil {
		return models.PurchaseRecord{}, fmt.Errorf("ledger: %w", auctionerrors.ErrNoBid)
	}

	record := models.PurchaseRecord{
		SellerEmail:        advertiser.Email,
		ProductName:        product.Name,
		ProductDescription: product.Description,
		ListPrice:          product.SalePrice,
		AmountPaid:         product.Bid.Amount,
		DeliverySynopsis:   product.DeliverySynopsis,
	}
	if _, err := s.store.RecordPurchase(product.Bid.BidderEmail, record); err != nil {
		return models.PurchaseRecord{}, fmt.Errorf("ledger: failed to record purchase for %s: %w", product.Bid.BidderEmail, err)
	}

	return record, nil
}

// PurchasesForDisplay returns the user's purchase history sorted by product
// name, then description, then list price
func (s *LedgerService) PurchasesForDisplay(buyer *models.User) []models.PurchaseRecord {
	purchases := append([]models.PurchaseRecord(nil), buyer.Purchases...)
	sort.SliceStable(purchases, func(i, j int) bool {
		if purchases[i].ProductName != purchases[j].ProductName {
			return purchases[i].ProductName < purchases[j].ProductName
		}
		if purchases[i].ProductDescription != purchases[j].ProductDescription {
			return purchases[i].ProductDescription < purchases[j].ProductDescription
		}
		return purchases[i].ListPrice.LessThan(purchases[j].ListPrice)
	})
	return purchases
}
