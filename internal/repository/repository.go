package repository

import (
	"fmt"
	"strings"
	"sync"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// AuctionStore defines the user and product storage interface for the
// auction house
type AuctionStore interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(userID int) (*model.User, error)
	SetHomeAddress(user *model.User, fullAddress string) error
	AddProduct(advertiser *model.User, product *model.Product) error
	GetProductByID(productID string) (*model.Product, error)
	AllProducts() ([]*model.Product, error)
	RecordPurchase(buyerEmail string, record model.PurchaseRecord) (*model.User, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
// Emails are indexed case-insensitively; user identities are stable integers
// assigned from a monotonic counter starting at 1. A capacity of 0 means
// the directory is unbounded.
type MemoryStore struct {
	mu           sync.RWMutex
	capacity     int
	nextUserID   int
	usersByEmail map[string]*model.User // key: lowercased email
	usersByID    map[int]*model.User
	products     []*model.Product // global catalog in insertion order
	productsByID map[string]*model.Product
}

// NewMemoryStore creates a new in-memory store. capacity limits the number
// of registered users; pass 0 for no limit.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		capacity:     capacity,
		nextUserID:   1,
		usersByEmail: make(map[string]*model.User),
		usersByID:    make(map[int]*model.User),
		productsByID: make(map[string]*model.Product),
	}
}

// CreateUser registers a user, assigning the lowest unused identity.
// The email must be unique across the directory, case-insensitively.
func (s *MemoryStore) CreateUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := s.usersByEmail[key]; exists {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrDuplicateEmail)
	}
	if s.capacity > 0 && len(s.usersByID) >= s.capacity {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrCapacityExceeded)
	}

	user.UserID = s.nextUserID
	s.nextUserID++
	s.usersByEmail[key] = user
	s.usersByID[user.UserID] = user

	return nil
}

// GetUserByEmail looks a user up by email, case-insensitively
func (s *MemoryStore) GetUserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByID looks a user up by stable identity
func (s *MemoryStore) GetUserByID(userID int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return nil, fmt.Errorf("get user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// SetHomeAddress records a user's home address. The address may be set at
// most once.
func (s *MemoryStore) SetHomeAddress(user *model.User, fullAddress string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.HomeAddress != "" {
		return fmt.Errorf("set address for %s: %w", user.Email, auctionerrors.ErrAddressAlreadySet)
	}
	user.HomeAddress = fullAddress

	return nil
}

// AddProduct appends a product to the global catalog and to the
// advertiser's listing
func (s *MemoryStore) AddProduct(advertiser *model.User, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ProductID == "" {
		return fmt.Errorf("add product %q: missing product id", product.Name)
	}
	s.products = append(s.products, product)
	s.productsByID[product.ProductID] = product
	if advertiser != nil {
		advertiser.AdvertisedProducts = append(advertiser.AdvertisedProducts, product)
	}

	return nil
}

// GetProductByID looks a product up by its stable identifier
func (s *MemoryStore) GetProductByID(productID string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.productsByID[productID]
	if !ok {
		return nil, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return product, nil
}

// AllProducts returns the global catalog. The slice is a copy but the
// products are shared instances, so callers observe bid and fulfillment
// updates.
func (s *MemoryStore) AllProducts() ([]*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*model.Product(nil), s.products...), nil
}

// RecordPurchase appends a purchase record to the buyer's history and
// returns the buyer
func (s *MemoryStore) RecordPurchase(buyerEmail string, record model.PurchaseRecord) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buyer, ok := s.usersByEmail[strings.ToLower(buyerEmail)]
	if !ok {
		return nil, fmt.Errorf("record purchase for %s: %w", buyerEmail, auctionerrors.ErrUserNotFound)
	}
	buyer.Purchases = append(buyer.Purchases, record)

	return buyer, nil
}
