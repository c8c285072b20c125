package directory

import (
	"errors"
	"fmt"
	"strings"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// DirectoryService registers and authenticates marketplace users
type DirectoryService struct {
	store repository.AuctionStore
}

// NewDirectoryService creates a new DirectoryService instance
func NewDirectoryService(store repository.AuctionStore) *DirectoryService {
	return &DirectoryService{
		store: store,
	}
}

// Register validates the registration fields, hashes the password and
// stores the new user. The store assigns the stable user identity and
// rejects duplicate emails case-insensitively.
func (s *DirectoryService) Register(name, email, password string) (*models.User, error) {
	if !validation.ValidName(name) {
		return nil, fmt.Errorf("directory: %w - invalid name", auctionerrors.ErrValidation)
	}
	if !validation.ValidEmail(email) {
		return nil, fmt.Errorf("directory: %w - invalid email address", auctionerrors.ErrValidation)
	}
	if !validation.ValidPassword(password) {
		return nil, fmt.Errorf("directory: %w - invalid password", auctionerrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("directory: failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, fmt.Errorf("directory: failed to register %s: %w", email, err)
	}

	return user, nil
}

// Authenticate looks the user up by email (case-insensitively) and verifies
// the password. Both an unknown email and a wrong password map to
// ErrInvalidCredentials.
func (s *DirectoryService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return nil, fmt.Errorf("directory: %w", auctionerrors.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("directory: failed to look up %s: %w", email, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("directory: %w", auctionerrors.ErrInvalidCredentials)
	}

	return user, nil
}

// UserByID resolves a stable user identity to its account
func (s *DirectoryService) UserByID(userID int) (*models.User, error) {
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("directory: failed to look up user %d: %w", userID, err)
	}
	return user, nil
}

// SetHomeAddress records the user's home delivery address. The address can
// be set at most once; it is collected on the user's first sign-in.
func (s *DirectoryService) SetHomeAddress(user *models.User, address models.Address) (string, error) {
	if user.HomeAddress != "" {
		return "", fmt.Errorf("directory: %w", auctionerrors.ErrAddressAlreadySet)
	}
	if address.UnitNumber < 0 {
		return "", fmt.Errorf("directory: %w - unit number must be positive", auctionerrors.ErrValidation)
	}
	if address.StreetNumber <= 0 {
		return "", fmt.Errorf("directory: %w - street number must be positive", auctionerrors.ErrValidation)
	}
	if strings.TrimSpace(address.StreetName) == "" {
		return "", fmt.Errorf("directory: %w - street name must not be blank", auctionerrors.ErrValidation)
	}
	if !validation.ValidStreetType(address.StreetType) {
		return "", fmt.Errorf("directory: %w - invalid street type", auctionerrors.ErrValidation)
	}
	if strings.TrimSpace(address.City) == "" {
		return "", fmt.Errorf("directory: %w - city must not be blank", auctionerrors.ErrValidation)
	}
	if !validation.ValidPostcode(address.Postcode) {
		return "", fmt.Errorf("directory: %w - postcode must be between 1000 and 9999", auctionerrors.ErrValidation)
	}
	if !validation.ValidState(address.State) {
		return "", fmt.Errorf("directory: %w - invalid state", auctionerrors.ErrValidation)
	}

	unit := ""
	if address.UnitNumber > 0 {
		unit = fmt.Sprintf("U%d ", address.UnitNumber)
	}
	full := fmt.Sprintf("%s%d %s %s, %s %s %d",
		unit,
		address.StreetNumber,
		strings.TrimSpace(address.StreetName),
		address.StreetType,
		strings.TrimSpace(address.City),
		strings.ToUpper(address.State),
		address.Postcode,
	)
	if err := s.store.SetHomeAddress(user, full); err != nil {
		return "", fmt.Errorf("directory: failed to record address for %s: %w", user.Email, err)
	}

	return full, nil
}
