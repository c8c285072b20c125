package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Test AdvertiseHandler
func TestAdvertiseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHandler(ctrl)
	alice := &model.User{UserID: 1, Name: "Alice", Email: "alice@example.com"}

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products", authAs(1), handler.AdvertiseHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_listing",
			requestBody: helpers.AdvertiseRequest{
				Name:        "Lamp",
				Description: "A reading lamp",
				Price:       "$20.00",
			},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
				mocks.catalog.EXPECT().
					Advertise(alice, "Lamp", "A reading lamp", "$20.00").
					Return(&model.Product{
						ProductID:    "p1",
						Number:       1,
						Name:         "Lamp",
						Description:  "A reading lamp",
						SalePrice:    decimal.RequireFromString("20.00"),
						AdvertiserID: 1,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "advertisement created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "p1", data["product_id"])
				require.Equal(t, 1.0, data["number"])
				require.Equal(t, "20.00", data["sale_price"])
				require.Nil(t, data["bid"])
			},
		},
		{
			name:        "missing_price",
			requestBody: helpers.AdvertiseRequest{Name: "Lamp", Description: "A reading lamp"},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_validation_failure",
			requestBody: helpers.AdvertiseRequest{
				Name:        "Lamp",
				Description: "lamp",
				Price:       "$20.00",
			},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
				mocks.catalog.EXPECT().
					Advertise(alice, "Lamp", "lamp", "$20.00").
					Return(nil, auctionerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid field input",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test SearchHandler
func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHandler(ctrl)
	alice := &model.User{UserID: 1, Name: "Alice", Email: "alice@example.com"}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products", authAs(1), handler.SearchHandler)

	lamp := &model.Product{ProductID: "p1", Number: 1, Name: "Lamp", Description: "A reading lamp", SalePrice: decimal.RequireFromString("20.00")}

	tests := []struct {
		name           string
		query          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []map[string]any)
	}{
		{
			name:  "success_phrase_match",
			query: "?phrase=lamp",
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
				mocks.catalog.EXPECT().Search("lamp", 1).Return([]*model.Product{lamp}, nil)
				mocks.catalog.EXPECT().RenumberForDisplay([]*model.Product{lamp}).Return([]*model.Product{lamp})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "products retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 1)
				require.Equal(t, "Lamp", data[0]["name"])
				require.Equal(t, 1.0, data[0]["number"])
			},
		},
		{
			name:  "success_no_matches",
			query: "?phrase=zeppelin",
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
				mocks.catalog.EXPECT().Search("zeppelin", 1).Return(nil, nil)
				mocks.catalog.EXPECT().RenumberForDisplay(gomock.Nil()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "products retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 0)
			},
		},
		{
			name:  "blank_phrase_rejected",
			query: "?phrase=%20%20",
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid field input",
		},
		{
			name:  "missing_phrase_rejected",
			query: "",
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid field input",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/products"+tc.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				dataRaw := resp["data"].([]any)
				data := make([]map[string]any, len(dataRaw))
				for i, v := range dataRaw {
					data[i] = v.(map[string]any)
				}
				tc.validateData(t, data)
			}
		})
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHandler(ctrl)
	bob := &model.User{UserID: 2, Name: "Bob", Email: "bob@example.com"}
	lamp := &model.Product{ProductID: "p1", Name: "Lamp", AdvertiserID: 1}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products/:product_id/bids", authAs(2), handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		productID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_bid_recorded",
			productID:   "p1",
			requestBody: helpers.PlaceBidRequest{Amount: "$25.00"},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(lamp, nil)
				mocks.bidding.EXPECT().
					PlaceBid(lamp, bob, "$25.00").
					Return(model.Bid{
						BidID:       "b1",
						BidderName:  "Bob",
						BidderEmail: "bob@example.com",
						Amount:      decimal.RequireFromString("25.00"),
						CreatedAt:   now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "b1", data["bid_id"])
				require.Equal(t, "bob@example.com", data["bidder_email"])
				require.Equal(t, "25.00", data["amount"])
			},
		},
		{
			name:        "unknown_product",
			productID:   "missing",
			requestBody: helpers.PlaceBidRequest{Amount: "$25.00"},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("missing").Return(nil, auctionerrors.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "product not found",
		},
		{
			name:        "bid_too_low",
			productID:   "p1",
			requestBody: helpers.PlaceBidRequest{Amount: "$10.00"},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(lamp, nil)
				mocks.bidding.EXPECT().
					PlaceBid(lamp, bob, "$10.00").
					Return(model.Bid{}, auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:        "invalid_amount",
			productID:   "p1",
			requestBody: helpers.PlaceBidRequest{Amount: "abc"},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(lamp, nil)
				mocks.bidding.EXPECT().
					PlaceBid(lamp, bob, "abc").
					Return(model.Bid{}, auctionerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid field input",
		},
		{
			name:        "missing_amount",
			productID:   "p1",
			requestBody: `{}`,
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/products/"+tc.productID+"/bids", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test FulfillmentHandler
func TestFulfillmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHandler(ctrl)
	bob := &model.User{UserID: 2, Name: "Bob", Email: "bob@example.com", HomeAddress: "12 Apple St, Brisbane QLD 4000"}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products/:product_id/fulfillment", authAs(2), handler.FulfillmentHandler)

	// a product whose winning bid is held by the given email
	wonProduct := func(bidderEmail string) *model.Product {
		return &model.Product{
			ProductID: "p1",
			Name:      "Lamp",
			Bid: &model.Bid{
				BidID:       "b1",
				BidderEmail: bidderEmail,
				Amount:      decimal.RequireFromString("25.00"),
			},
		}
	}

	start := time.Now().UTC().Add(2 * time.Hour).Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		wantSynopsis   string
	}{
		{
			name: "success_pickup_window",
			requestBody: helpers.FulfillmentRequest{
				Method: "collect",
				Start:  start.Format(time.RFC3339),
				End:    end.Format(time.RFC3339),
			},
			mockSetup: func() {
				product := wonProduct("bob@example.com")
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(product, nil)
				mocks.fulfillment.EXPECT().
					ArrangePickup(product, gomock.Any(), gomock.Any()).
					DoAndReturn(func(p *model.Product, s, e time.Time) (model.PickupWindow, error) {
						require.True(t, s.Equal(start))
						require.True(t, e.Equal(end))
						p.DeliverySynopsis = "Pick up between soon and later"
						return model.PickupWindow{Start: s, End: e}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "fulfillment arranged successfully",
			wantSynopsis:   "Pick up between soon and later",
		},
		{
			name: "success_home_delivery",
			requestBody: helpers.FulfillmentRequest{
				Method:         "deliver",
				UseHomeAddress: true,
			},
			mockSetup: func() {
				product := wonProduct("bob@example.com")
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(product, nil)
				mocks.fulfillment.EXPECT().
					ArrangeDelivery(product, bob, true, "").
					DoAndReturn(func(p *model.Product, u *model.User, home bool, addr string) (string, error) {
						p.DeliverySynopsis = "Home delivery to " + u.HomeAddress
						return p.DeliverySynopsis, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "fulfillment arranged successfully",
			wantSynopsis:   "Home delivery to 12 Apple St, Brisbane QLD 4000",
		},
		{
			name: "bidless_product_rejected",
			requestBody: helpers.FulfillmentRequest{
				Method:  "deliver",
				Address: "666 Carol Ct, Darwin NT 8000",
			},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(&model.Product{ProductID: "p1", Name: "Lamp"}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "product has no bid",
		},
		{
			name: "caller_without_winning_bid_rejected",
			requestBody: helpers.FulfillmentRequest{
				Method:  "deliver",
				Address: "666 Carol Ct, Darwin NT 8000",
			},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(wonProduct("carol@example.com"), nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not the winning bidder",
		},
		{
			name: "pickup_with_malformed_start",
			requestBody: helpers.FulfillmentRequest{
				Method: "collect",
				Start:  "tomorrow",
				End:    end.Format(time.RFC3339),
			},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(wonProduct("bob@example.com"), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid field input",
		},
		{
			name: "delivery_without_address_on_file",
			requestBody: helpers.FulfillmentRequest{
				Method:         "deliver",
				UseHomeAddress: true,
			},
			mockSetup: func() {
				product := wonProduct("bob@example.com")
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
				mocks.catalog.EXPECT().ProductByID("p1").Return(product, nil)
				mocks.fulfillment.EXPECT().
					ArrangeDelivery(product, bob, true, "").
					Return("", auctionerrors.ErrNoAddressOnFile)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "no home address on file",
		},
		{
			name:        "unknown_method_rejected",
			requestBody: helpers.FulfillmentRequest{Method: "teleport"},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(2).Return(bob, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/products/p1/fulfillment", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.wantSynopsis != "" && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, tc.wantSynopsis, data["delivery_synopsis"])
			}
		})
	}
}

// Test BiddedProductsHandler
func TestBiddedProductsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHandler(ctrl)
	alice := &model.User{UserID: 1, Name: "Alice", Email: "alice@example.com"}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me/products/bids", authAs(1), handler.BiddedProductsHandler)

	lamp := &model.Product{
		ProductID:   "p1",
		Number:      1,
		Name:        "Lamp",
		Description: "A reading lamp",
		SalePrice:   decimal.RequireFromString("20.00"),
		Bid: &model.Bid{
			BidID:       "b1",
			BidderName:  "Bob",
			BidderEmail: "bob@example.com",
			Amount:      decimal.RequireFromString("25.00"),
		},
	}

	mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
	mocks.ledger.EXPECT().BiddedProducts(alice).Return([]*model.Product{lamp})

	req := httptest.NewRequest(http.MethodGet, "/me/products/bids", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp["message"], "bidded products retrieved successfully")

	data := resp["data"].([]any)
	require.Len(t, data, 1)
	row := data[0].(map[string]any)
	require.Equal(t, "Lamp", row["name"])
	bid := row["bid"].(map[string]any)
	require.Equal(t, "25.00", bid["amount"])
}

// Test FinalizeSaleHandler
func TestFinalizeSaleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mocks := newTestHandler(ctrl)
	alice := &model.User{UserID: 1, Name: "Alice", Email: "alice@example.com"}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/me/sales", authAs(1), handler.FinalizeSaleHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_sale_finalized",
			requestBody: helpers.FinalizeSaleRequest{RowNumber: 1},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
				mocks.ledger.EXPECT().
					FinalizeSale(alice, 1).
					Return(model.PurchaseRecord{
						SellerEmail:        "alice@example.com",
						ProductName:        "Lamp",
						ProductDescription: "A reading lamp",
						ListPrice:          decimal.RequireFromString("20.00"),
						AmountPaid:         decimal.RequireFromString("25.00"),
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "sale finalized successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "alice@example.com", data["seller_email"])
				require.Equal(t, "25.00", data["amount_paid"])
			},
		},
		{
			name:        "row_out_of_range",
			requestBody: helpers.FinalizeSaleRequest{RowNumber: 9},
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
				mocks.ledger.EXPECT().
					FinalizeSale(alice, 9).
					Return(model.PurchaseRecord{}, auctionerrors.ErrInvalidSelection)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid selection",
		},
		{
			name:        "missing_row_number",
			requestBody: `{}`,
			mockSetup: func() {
				mocks.directory.EXPECT().UserByID(1).Return(alice, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/me/sales", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}
