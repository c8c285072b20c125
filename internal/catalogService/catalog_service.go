package catalog

import (
	"fmt"
	"sort"
	"strings"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/validation"
	"auction-house/utils"
)

// matchAllPhrase matches every product not advertised by the requester
const matchAllPhrase = "ALL"

// CatalogService owns the global collection of advertised products
type CatalogService struct {
	store repository.AuctionStore
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store repository.AuctionStore) *CatalogService {
	return &CatalogService{
		store: store,
	}
}

// Advertise validates the listing fields and creates a product owned by the
// advertiser. The product is appended to both the global catalog and the
// advertiser's list, and numbered from the advertiser's private counter.
func (s *CatalogService) Advertise(advertiser *models.User, name, description, price string) (*models.Product, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return nil, fmt.Errorf("catalog: %w - product name must not be blank", auctionerrors.ErrValidation)
	}
	if description == "" || strings.EqualFold(description, name) {
		return nil, fmt.Errorf("catalog: %w - description must not be blank or equal the name", auctionerrors.ErrValidation)
	}
	amount, ok := validation.ValidCurrency(price)
	if !ok {
		return nil, fmt.Errorf("catalog: %w - %q is not a valid currency amount", auctionerrors.ErrValidation, price)
	}

	product := &models.Product{
		ProductID:    utils.NewID(),
		Number:       advertiser.NextProductNumber(),
		Name:         name,
		Description:  description,
		SalePrice:    amount,
		AdvertiserID: advertiser.UserID,
	}

	if err := s.store.AddProduct(advertiser, product); err != nil {
		return nil, fmt.Errorf("catalog: failed to advertise %q: %w", name, err)
	}

	return product, nil
}

// Search returns the products matching a phrase. The phrase "ALL"
// (case-insensitive) matches every product not advertised by the requester;
// any other phrase matches products whose name or description contains it as
// a case-insensitive substring, the requester's own products included.
// The result may be empty but the call never fails.
func (s *CatalogService) Search(phrase string, requesterID int) ([]*models.Product, error) {
	products, err := s.store.AllProducts()
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to search products: %w", err)
	}

	var matches []*models.Product
	if strings.EqualFold(phrase, matchAllPhrase) {
		for _, p := range products {
			if p.AdvertiserID != requesterID {
				matches = append(matches, p)
			}
		}
		return matches, nil
	}

	needle := strings.ToLower(phrase)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// RenumberForDisplay sorts the products by name ascending (ties keep their
// relative order) and assigns 1..N display numbers. Display numbers are only
// valid for the render they were assigned for.
func (s *CatalogService) RenumberForDisplay(products []*models.Product) []*models.Product {
	sorted := append([]*models.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	for i, p := range sorted {
		p.Number = i + 1
	}
	return sorted
}

// SelectByNumber picks a product out of a rendered view by its 1-based
// display number
func (s *CatalogService) SelectByNumber(products []*models.Product, number int) (*models.Product, error) {
	if number < 1 || number > len(products) {
		return nil, fmt.Errorf("catalog: %w - no product at row %d", auctionerrors.ErrInvalidSelection, number)
	}
	return products[number-1], nil
}

// ProductByID resolves a stable product identifier to the catalog entry
func (s *CatalogService) ProductByID(productID string) (*models.Product, error) {
	product, err := s.store.GetProductByID(productID)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to look up product %s: %w", productID, err)
	}
	return product, nil
}
