package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrCapacityExceeded = errors.New("user directory at full capacity")
)

// business logic errors
var (
	ErrValidation             = errors.New("invalid field input")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrBidTooLow              = errors.New("bid amount too low")
	ErrInvalidSelection       = errors.New("invalid selection")
	ErrNoBid                  = errors.New("product has no bid")
	ErrNotWinningBidder       = errors.New("caller does not hold the winning bid")
	ErrNoAddressOnFile        = errors.New("no home address on file")
	ErrInvalidDeliveryAddress = errors.New("invalid delivery address")
	ErrAddressAlreadySet      = errors.New("home address already recorded")
)
