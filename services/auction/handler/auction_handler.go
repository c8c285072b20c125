package handler

import (
	"errors"
	"net/http"
	"time"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type DirectoryServiceInterface interface {
	Register(name, email, password string) (*model.User, error)
	Authenticate(email, password string) (*model.User, error)
	UserByID(userID int) (*model.User, error)
	SetHomeAddress(user *model.User, address model.Address) (string, error)
}

type CatalogServiceInterface interface {
	Advertise(advertiser *model.User, name, description, price string) (*model.Product, error)
	Search(phrase string, requesterID int) ([]*model.Product, error)
	RenumberForDisplay(products []*model.Product) []*model.Product
	ProductByID(productID string) (*model.Product, error)
}

type BiddingServiceInterface interface {
	PlaceBid(product *model.Product, bidder *model.User, amount string) (model.Bid, error)
}

type FulfillmentServiceInterface interface {
	ArrangePickup(product *model.Product, start, end time.Time) (model.PickupWindow, error)
	ArrangeDelivery(product *model.Product, buyer *model.User, useHomeAddress bool, address string) (string, error)
}

type LedgerServiceInterface interface {
	BiddedProducts(advertiser *model.User) []*model.Product
	FinalizeSale(advertiser *model.User, rowNumber int) (model.PurchaseRecord, error)
	PurchasesForDisplay(buyer *model.User) []model.PurchaseRecord
}

// AuctionHandler exposes the auction house over HTTP. It owns no state of
// its own; every mutation goes through the core services.
type AuctionHandler struct {
	directory   DirectoryServiceInterface
	catalog     CatalogServiceInterface
	bidding     BiddingServiceInterface
	fulfillment FulfillmentServiceInterface
	ledger      LedgerServiceInterface

	jwtSecret   string
	tokenMaxAge time.Duration
}

func NewAuctionHandler(
	directory DirectoryServiceInterface,
	catalog CatalogServiceInterface,
	bidding BiddingServiceInterface,
	fulfillment FulfillmentServiceInterface,
	ledger LedgerServiceInterface,
	jwtSecret string,
	tokenMaxAge time.Duration,
) *AuctionHandler {
	return &AuctionHandler{
		directory:   directory,
		catalog:     catalog,
		bidding:     bidding,
		fulfillment: fulfillment,
		ledger:      ledger,
		jwtSecret:   jwtSecret,
		tokenMaxAge: tokenMaxAge,
	}
}

// currentUser resolves the authenticated user from the request context.
// Responds with the mapped error and returns false when resolution fails.
func (h *AuctionHandler) currentUser(c *gin.Context, handlerName string) (*model.User, bool) {
	// set by the auth middleware; user ids start at 1
	userID := c.GetInt("user_id")
	if userID == 0 {
		err := errors.New("missing authenticated user identity")
		utils.JSONError(c, http.StatusUnauthorized, err, "unauthorized")
		utils.Warn(handlerName+": no user identity in context", nil)
		return nil, false
	}

	user, err := h.directory.UserByID(userID)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{"user_id": userID})
		return nil, false
	}
	return user, true
}
