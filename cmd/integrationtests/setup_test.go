package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	bidding "auction-house/internal/biddingService"
	catalog "auction-house/internal/catalogService"
	fulfillment "auction-house/internal/fulfillmentService"
	ledger "auction-house/internal/ledgerService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	directory "auction-house/internal/userDirectory"
	"auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

const (
	testJWTSecret   = "integration-test-secret"
	testTokenMaxAge = time.Hour
)

// SetupTestRouter wires the full stack against an in-memory store for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore(0)
	h := handler.NewAuctionHandler(
		directory.NewDirectoryService(store),
		catalog.NewCatalogService(store),
		bidding.NewBiddingService(),
		fulfillment.NewFulfillmentService(),
		ledger.NewLedgerService(store),
		testJWTSecret,
		testTokenMaxAge,
	)
	return server.SetupRouter(h, testJWTSecret)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope. An empty token leaves the request anonymous.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
