package server

import (
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionHandler *handler.AuctionHandler, jwtSecret string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auth := router.Group("/auth")
	{
		auth.POST("/register", auctionHandler.RegisterHandler)
		auth.POST("/login", auctionHandler.LoginHandler)
	}

	products := router.Group("/products", AuthMiddleware(jwtSecret))
	{
		products.POST("", auctionHandler.AdvertiseHandler)
		products.GET("", auctionHandler.SearchHandler)
		products.POST("/:product_id/bids", auctionHandler.PlaceBidHandler)
		products.POST("/:product_id/fulfillment", auctionHandler.FulfillmentHandler)
	}

	me := router.Group("/me", AuthMiddleware(jwtSecret))
	{
		me.PUT("/address", auctionHandler.SetAddressHandler)
		me.GET("/products", auctionHandler.MyProductsHandler)
		me.GET("/products/bids", auctionHandler.BiddedProductsHandler)
		me.GET("/purchases", auctionHandler.PurchasesHandler)
		me.POST("/sales", auctionHandler.FinalizeSaleHandler)
	}

	return router
}
