package handler

import (
	"net/http"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHandler handles POST /auth/register
func (h *AuctionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.directory.Register(req.Name, req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	resp := helpers.UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

// LoginHandler handles POST /auth/login
func (h *AuctionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.directory.Authenticate(req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	token, err := helpers.IssueToken(h.jwtSecret, user.UserID, h.tokenMaxAge)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
		utils.Error("LoginHandler: failed to issue token", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return
	}

	resp := helpers.LoginResponse{
		Token: token,
		// the first sign-in must collect a home address before trading
		AddressRequired: user.HomeAddress == "",
		User: helpers.UserResponse{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
		},
	}

	utils.JSONResponse(c, http.StatusOK, resp, "signed in successfully")
	helpers.LogSuccess("LoginHandler", "signed in successfully", map[string]any{
		"user_id":          user.UserID,
		"address_required": resp.AddressRequired,
	})
}

// SetAddressHandler handles PUT /me/address
func (h *AuctionHandler) SetAddressHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "SetAddressHandler")
	if !ok {
		return
	}

	var req helpers.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetAddressHandler", err)
		return
	}

	full, err := h.directory.SetHomeAddress(user, model.Address{
		UnitNumber:   req.UnitNumber,
		StreetNumber: req.StreetNumber,
		StreetName:   req.StreetName,
		StreetType:   req.StreetType,
		City:         req.City,
		Postcode:     req.Postcode,
		State:        req.State,
	})
	if err != nil {
		helpers.HandleServiceError(c, "SetAddressHandler", err, map[string]any{"user_id": user.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AddressResponse{HomeAddress: full}, "address recorded successfully")
	helpers.LogSuccess("SetAddressHandler", "address recorded successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// PurchasesHandler handles GET /me/purchases
func (h *AuctionHandler) PurchasesHandler(c *gin.Context) {
	user, ok := h.currentUser(c, "PurchasesHandler")
	if !ok {
		return
	}

	purchases := h.ledger.PurchasesForDisplay(user)
	resp := make([]helpers.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		resp = append(resp, helpers.NewPurchaseResponse(p))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "purchases retrieved successfully")
	helpers.LogSuccess("PurchasesHandler", "purchases retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(resp),
	})
}
