package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// AdvertiseHandler handles POST /products
func (h *AuctionHandler) AdvertiseHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "AdvertiseHandler")
	if !ok {
		return
	}

	var req helpers.AdvertiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AdvertiseHandler", err)
		return
	}

	product, err := h.catalog.Advertise(user, req.Name, req.Description, req.Price)
	if err != nil {
		helpers.HandleServiceError(c, "AdvertiseHandler", err, map[string]any{"user_id": user.UserID, "name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewProductResponse(product), "advertisement created successfully")
	helpers.LogSuccess("AdvertiseHandler", "advertisement created successfully", map[string]any{
		"product_id": product.ProductID,
		"user_id":    user.UserID,
		"name":       product.Name,
	})
}

// SearchHandler handles GET /products?phrase=
func (h *AuctionHandler) SearchHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "SearchHandler")
	if !ok {
		return
	}

	phrase := strings.TrimSpace(c.Query("phrase"))
	if phrase == "" {
		err := fmt.Errorf("%w - search phrase must not be blank", auctionerrors.ErrValidation)
		helpers.HandleServiceError(c, "SearchHandler", err, map[string]any{"user_id": user.UserID})
		return
	}

	matches, err := h.catalog.Search(phrase, user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "SearchHandler", err, map[string]any{"user_id": user.UserID, "phrase": phrase})
		return
	}
	view := h.catalog.RenumberForDisplay(matches)

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductListResponse(view), "products retrieved successfully")
	helpers.LogSuccess("SearchHandler", "products retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"phrase":  phrase,
		"count":   len(view),
	})
}

// MyProductsHandler handles GET /me/products
func (h *AuctionHandler) MyProductsHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "MyProductsHandler")
	if !ok {
		return
	}

	view := h.catalog.RenumberForDisplay(user.AdvertisedProducts)

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductListResponse(view), "products retrieved successfully")
	helpers.LogSuccess("MyProductsHandler", "products retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(view),
	})
}

// BiddedProductsHandler handles GET /me/products/bids
func (h *AuctionHandler) BiddedProductsHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "BiddedProductsHandler")
	if !ok {
		return
	}

	view := h.ledger.BiddedProducts(user)

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductListResponse(view), "bidded products retrieved successfully")
	helpers.LogSuccess("BiddedProductsHandler", "bidded products retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(view),
	})
}

// PlaceBidHandler handles POST /products/:product_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	productID := c.Param("product_id")
	product, err := h.catalog.ProductByID(productID)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{"product_id": productID})
		return
	}

	bid, err := h.bidding.PlaceBid(product, user, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"product_id": productID,
			"user_id":    user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": productID,
		"user_id":    user.UserID,
		"amount":     bid.Amount.StringFixed(2),
	})
}

// FulfillmentHandler handles POST /products/:product_id/fulfillment
func (h *AuctionHandler) FulfillmentHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "FulfillmentHandler")
	if !ok {
		return
	}

	var req helpers.FulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FulfillmentHandler", err)
		return
	}

	productID := c.Param("product_id")
	product, err := h.catalog.ProductByID(productID)
	if err != nil {
		helpers.HandleServiceError(c, "FulfillmentHandler", err, map[string]any{"product_id": productID})
		return
	}

	// fulfillment is negotiated on behalf of the winning bidder only
	if product.Bid == nil {
		err := fmt.Errorf("nothing to fulfill: %w", auctionerrors.ErrNoBid)
		helpers.HandleServiceError(c, "FulfillmentHandler", err, map[string]any{"product_id": productID})
		return
	}
	if !strings.EqualFold(product.Bid.BidderEmail, user.Email) {
		err := fmt.Errorf("%w - the winning bid belongs to another user", auctionerrors.ErrNotWinningBidder)
		helpers.HandleServiceError(c, "FulfillmentHandler", err, map[string]any{
			"product_id": productID,
			"user_id":    user.UserID,
		})
		return
	}

	if req.Method == "collect" {
		start, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			err = fmt.Errorf("%w - start is not a valid RFC3339 timestamp", auctionerrors.ErrValidation)
			helpers.HandleServiceError(c, "FulfillmentHandler", err, map[string]any{"product_id": productID})
			return
		}
		end, err := time.Parse(time.RFC3339, req.End)
		if err != nil {
			err = fmt.Errorf("%w - end is not a valid RFC3339 timestamp", auctionerrors.ErrValidation)
			helpers.HandleServiceError(c, "FulfillmentHandler", err, map[string]any{"product_id": productID})
			return
		}

		if _, err := h.fulfillment.ArrangePickup(product, start, end); err != nil {
			helpers.HandleServiceError(c, "FulfillmentHandler", err, map[string]any{"product_id": productID})
			return
		}
	} else {
		if _, err := h.fulfillment.ArrangeDelivery(product, user, req.UseHomeAddress, req.Address); err != nil {
			helpers.HandleServiceError(c, "FulfillmentHandler", err, map[string]any{"product_id": productID})
			return
		}
	}

	resp := helpers.FulfillmentResponse{DeliverySynopsis: product.DeliverySynopsis}

	utils.JSONResponse(c, http.StatusOK, resp, "fulfillment arranged successfully")
	helpers.LogSuccess("FulfillmentHandler", "fulfillment arranged successfully", map[string]any{
		"product_id": productID,
		"user_id":    user.UserID,
		"method":     req.Method,
	})
}

// FinalizeSaleHandler handles POST /me/sales
func (h *AuctionHandler) FinalizeSaleHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "FinalizeSaleHandler")
	if !ok {
		return
	}

	var req helpers.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FinalizeSaleHandler", err)
		return
	}

	record, err := h.ledger.FinalizeSale(user, req.RowNumber)
	if err != nil {
		helpers.HandleServiceError(c, "FinalizeSaleHandler", err, map[string]any{
			"user_id": user.UserID,
			"row":     req.RowNumber,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewPurchaseResponse(record), "sale finalized successfully")
	helpers.LogSuccess("FinalizeSaleHandler", "sale finalized successfully", map[string]any{
		"user_id": user.UserID,
		"product": record.ProductName,
		"amount":  record.AmountPaid.StringFixed(2),
	})
}
