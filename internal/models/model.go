package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered marketplace account
type User struct {
	UserID             int              `json:"user_id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	PasswordHash       string           `json:"-"`
	HomeAddress        string           `json:"home_address,omitempty"`
	AdvertisedProducts []*Product       `json:"-"`
	Purchases          []PurchaseRecord `json:"-"`

	nextProductNumber int
}

// NextProductNumber returns the user's current product counter and advances it.
// The counter starts at 1 and only ever increases.
func (u *User) NextProductNumber() int {
	if u.nextProductNumber == 0 {
		u.nextProductNumber = 1
	}
	n := u.nextProductNumber
	u.nextProductNumber++
	return n
}

// Product represents an advertised listing. The same instance is shared
// between the global catalog and the advertiser's list, so bid and
// fulfillment updates are visible through both views. Number is a
// render-time display index, not a stable identifier; ProductID is.
type Product struct {
	ProductID        string          `json:"product_id"`
	Number           int             `json:"number"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	AdvertiserID     int             `json:"advertiser_id"`
	Bid              *Bid            `json:"bid,omitempty"`
	Pickup           *PickupWindow   `json:"pickup,omitempty"`
	DeliverySynopsis string          `json:"delivery_synopsis,omitempty"`
}

// Bid represents the current highest bid on a product
type Bid struct {
	BidID       string          `json:"bid_id"`
	BidderName  string          `json:"bidder_name"`
	BidderEmail string          `json:"bidder_email"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PickupWindow is an agreed collection slot for a sold product
type PickupWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PurchaseRecord documents a completed sale from the buyer's side
type PurchaseRecord struct {
	SellerEmail        string          `json:"seller_email"`
	ProductName        string          `json:"product_name"`
	ProductDescription string          `json:"product_description"`
	ListPrice          decimal.Decimal `json:"list_price"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	DeliverySynopsis   string          `json:"delivery_synopsis"`
}

// Address holds the fields of a structured home delivery address.
// UnitNumber 0 means no unit.
type Address struct {
	UnitNumber   int    `json:"unit_number,omitempty"`
	StreetNumber int    `json:"street_number"`
	StreetName   string `json:"street_name"`
	StreetType   string `json:"street_type"`
	City         string `json:"city"`
	Postcode     int    `json:"postcode"`
	State        string `json:"state"`
}
