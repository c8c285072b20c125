package utils

import (
	"github.com/google/uuid"
)

// NewID returns a fresh identifier for bids and catalog entries
func NewID() string {
	return uuid.New().String()
}
