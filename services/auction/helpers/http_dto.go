package helpers

// Request/Response DTOs
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddressRequest struct {
	UnitNumber   int    `json:"unit_number"`
	StreetNumber int    `json:"street_number" binding:"required"`
	StreetName   string `json:"street_name" binding:"required"`
	StreetType   string `json:"street_type" binding:"required"`
	City         string `json:"city" binding:"required"`
	Postcode     int    `json:"postcode" binding:"required"`
	State        string `json:"state" binding:"required"`
}

type AdvertiseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       string `json:"price" binding:"required"`
}

type PlaceBidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type FulfillmentRequest struct {
	Method         string `json:"method" binding:"required,oneof=collect deliver"`
	Start          string `json:"start"`
	End            string `json:"end"`
	UseHomeAddress bool   `json:"use_home_address"`
	Address        string `json:"address"`
}

type FinalizeSaleRequest struct {
	RowNumber int `json:"row_number" binding:"required"`
}

type UserResponse struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type LoginResponse struct {
	Token           string       `json:"token"`
	AddressRequired bool         `json:"address_required"`
	User            UserResponse `json:"user"`
}

type AddressResponse struct {
	HomeAddress string `json:"home_address"`
}

type BidResponse struct {
	BidID       string `json:"bid_id"`
	BidderName  string `json:"bidder_name"`
	BidderEmail string `json:"bidder_email"`
	Amount      string `json:"amount"`
	CreatedAt   string `json:"created_at"`
}

type ProductResponse struct {
	ProductID   string       `json:"product_id"`
	Number      int          `json:"number"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	SalePrice   string       `json:"sale_price"`
	Bid         *BidResponse `json:"bid,omitempty"`
}

type FulfillmentResponse struct {
	DeliverySynopsis string `json:"delivery_synopsis"`
}

type PurchaseResponse struct {
	SellerEmail        string `json:"seller_email"`
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
	ListPrice          string `json:"list_price"`
	AmountPaid         string `json:"amount_paid"`
	DeliverySynopsis   string `json:"delivery_synopsis"`
}
