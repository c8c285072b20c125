package main

import (
	"fmt"
	"os"
	"time"

	bidding "auction-house/internal/biddingService"
	catalog "auction-house/internal/catalogService"
	"auction-house/internal/config"
	fulfillment "auction-house/internal/fulfillmentService"
	ledger "auction-house/internal/ledgerService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	directory "auction-house/internal/userDirectory"
	handler "auction-house/services/auction/handler"
)

func main() {

	cfg := config.Load()

	store := repository.NewMemoryStore(cfg.UserCapacity)

	directorySvc := directory.NewDirectoryService(store)
	catalogSvc := catalog.NewCatalogService(store)
	biddingSvc := bidding.NewBiddingService()
	fulfillmentSvc := fulfillment.NewFulfillmentService()
	ledgerSvc := ledger.NewLedgerService(store)

	auctionHandler := handler.NewAuctionHandler(
		directorySvc,
		catalogSvc,
		biddingSvc,
		fulfillmentSvc,
		ledgerSvc,
		cfg.JWTSecret,
		time.Duration(cfg.TokenMaxAge)*time.Second,
	)

	router := server.SetupRouter(auctionHandler, cfg.JWTSecret)

	addr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Starting auction house server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
