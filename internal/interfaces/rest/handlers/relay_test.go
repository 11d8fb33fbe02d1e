package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application/services"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/config"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/infrastructure/cashea"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/infrastructure/shopify"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest/handlers"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RelaySuite drives the relay through real clients against fake
// Cashea and Shopify servers.
type RelaySuite struct {
	suite.Suite

	casheaCalls  atomic.Int32
	shopifyCalls atomic.Int32
	casheaPaths  chan string

	casheaStatus  int
	casheaBody    string
	shopifyStatus int
	shopifyBody   string

	cashea  *httptest.Server
	shopify *httptest.Server
	relay   *httptest.Server
}

func TestRelaySuite(t *testing.T) {
	suite.Run(t, new(RelaySuite))
}

func (s *RelaySuite) SetupTest() {
	s.casheaCalls.Store(0)
	s.shopifyCalls.Store(0)
	s.casheaPaths = make(chan string, 4)
	s.casheaStatus = http.StatusCreated
	s.casheaBody = `{"status":"PAID"}`
	s.shopifyStatus = http.StatusCreated

	var orderSeq atomic.Int64
	s.shopifyBody = ""

	s.cashea = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.casheaCalls.Add(1)
		s.casheaPaths <- r.URL.Path
		w.WriteHeader(s.casheaStatus)
		_, _ = io.WriteString(w, s.casheaBody)
	}))

	s.shopify = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.shopifyCalls.Add(1)
		w.WriteHeader(s.shopifyStatus)
		if s.shopifyBody != "" {
			_, _ = io.WriteString(w, s.shopifyBody)
			return
		}
		id := 1000 + orderSeq.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order": map[string]any{"id": id, "order_number": id},
		})
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	casheaClient := cashea.NewClient(config.CasheaConfig{
		BaseURL: s.cashea.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
	shopifyClient := shopify.NewClient(config.ShopifyConfig{
		Store:       "relojteca",
		BaseURL:     s.shopify.URL,
		APIVersion:  "2024-01",
		AccessToken: "shpat_test",
		Timeout:     2 * time.Second,
	})

	svc := services.NewConfirmationService(casheaClient, shopifyClient, 2*time.Second, logger)

	mux := http.NewServeMux()
	handlers.NewHandlers(svc, logger, false).RegisterRoutes(mux)

	handler := middleware.Recovery(logger, false)(mux)
	handler = middleware.Logging(logger)(handler)
	s.relay = httptest.NewServer(handler)
}

func (s *RelaySuite) TearDownTest() {
	s.relay.Close()
	s.cashea.Close()
	s.shopify.Close()
}

func (s *RelaySuite) post(body string) (int, map[string]any) {
	resp, err := http.Post(s.relay.URL+handlers.ConfirmPath, "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	var decoded map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func (s *RelaySuite) TestSuccess() {
	status, body := s.post(validBody)

	s.Equal(http.StatusOK, status)
	s.Equal(true, body["success"])
	s.Equal(map[string]any{"status": "PAID"}, body["providerResponse"])
	s.Equal(int32(1), s.casheaCalls.Load())
	s.Equal(int32(1), s.shopifyCalls.Load())
}

func (s *RelaySuite) TestNumericIDNumberIsNormalised() {
	status, body := s.post(strings.Replace(validBody, `"CSH-1001"`, `1e3`, 1))

	s.Equal(http.StatusOK, status)
	s.Equal("1000", body["idNumber"])
	s.Equal("/orders/1000/down-payment", <-s.casheaPaths)
}

func (s *RelaySuite) TestNumericZeroIDNumberIsMissing() {
	status, body := s.post(strings.Replace(validBody, `"CSH-1001"`, `0`, 1))

	s.Equal(http.StatusBadRequest, status)
	s.Equal("MISSING_ORDER_ID", body["error"])
	s.Zero(s.casheaCalls.Load())
}

func (s *RelaySuite) TestValidationMakesNoOutboundCalls() {
	status, body := s.post(`{"idNumber": "", "amount": 10}`)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("MISSING_ORDER_ID", body["error"])
	s.Zero(s.casheaCalls.Load())
	s.Zero(s.shopifyCalls.Load())
}

func (s *RelaySuite) TestCasheaRejectionStopsBeforeShopify() {
	s.casheaStatus = http.StatusUnprocessableEntity
	s.casheaBody = `{"message":"amount mismatch"}`

	status, body := s.post(validBody)

	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal(map[string]any{"message": "amount mismatch"}, body["details"])
	s.Equal(int32(1), s.casheaCalls.Load())
	s.Zero(s.shopifyCalls.Load())
}

func (s *RelaySuite) TestCasheaNonJSONBodyStillConfirms() {
	s.casheaStatus = http.StatusOK
	s.casheaBody = "OK"

	status, body := s.post(validBody)

	s.Equal(http.StatusOK, status)
	s.Equal(map[string]any{}, body["providerResponse"])
}

func (s *RelaySuite) TestShopifyRejectionIsPartialSuccess() {
	s.shopifyStatus = http.StatusUnprocessableEntity
	s.shopifyBody = `{"errors":{"customer":["is invalid"]}}`

	status, body := s.post(validBody)

	s.Equal(http.StatusMultiStatus, status)
	s.Equal(float64(http.StatusUnprocessableEntity), body["platformStatus"])
	s.Equal(map[string]any{"errors": map[string]any{"customer": []any{"is invalid"}}}, body["platformError"])
}

func (s *RelaySuite) TestShopifySuccessWithoutOrderIsPartialSuccess() {
	s.shopifyStatus = http.StatusOK
	s.shopifyBody = "accepted"

	status, body := s.post(validBody)

	s.Equal(http.StatusMultiStatus, status)
	s.Equal("accepted", body["platformError"])
}

func (s *RelaySuite) TestShopifyUnreachableIsServerError() {
	s.shopify.Close()

	status, body := s.post(validBody)

	s.Equal(http.StatusInternalServerError, status)
	s.Equal("CSH-1001", body["idNumber"])
	s.Equal(int32(1), s.casheaCalls.Load())
}

// No idempotency: the same notification twice confirms twice and
// creates two distinct orders.
func (s *RelaySuite) TestDuplicateRequestsCreateDuplicateOrders() {
	_, first := s.post(validBody)
	_, second := s.post(validBody)

	s.Equal(int32(2), s.casheaCalls.Load())
	s.Equal(int32(2), s.shopifyCalls.Load())

	firstOrder := first["order"].(map[string]any)
	secondOrder := second["order"].(map[string]any)
	s.NotEqual(firstOrder["id"], secondOrder["id"])
}

func TestRelay_UnreachableCashea(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	var shopifyCalls atomic.Int32
	shop := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopifyCalls.Add(1)
	}))
	defer shop.Close()

	svc := services.NewConfirmationService(
		cashea.NewClient(config.CasheaConfig{BaseURL: deadURL, APIKey: "k", Timeout: time.Second}),
		shopify.NewClient(config.ShopifyConfig{Store: "s", BaseURL: shop.URL, APIVersion: "2024-01", AccessToken: "t", Timeout: time.Second}),
		time.Second,
		logger,
	)
	mux := http.NewServeMux()
	handlers.NewHandlers(svc, logger, false).RegisterRoutes(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, handlers.ConfirmAliasPath, strings.NewReader(validBody)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "CSH-1001", body["idNumber"])
	assert.Zero(t, shopifyCalls.Load())
}

// Shopify outlives its own timeout after Cashea confirmed. With the request
// deadline above both outbound timeouts the caller gets the relay's TIMEOUT
// error with the idNumber, not the middleware's 503.
func TestRelay_ShopifyDeadlineAfterConfirmation(t *testing.T) {
	const (
		outboundTimeout = 150 * time.Millisecond
		requestTimeout  = 2*outboundTimeout + 500*time.Millisecond
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var casheaCalls, shopifyCalls atomic.Int32
	cash := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		casheaCalls.Add(1)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"status":"PAID"}`)
	}))
	defer cash.Close()

	shop := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopifyCalls.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * requestTimeout):
		}
	}))
	defer shop.Close()

	svc := services.NewConfirmationService(
		cashea.NewClient(config.CasheaConfig{BaseURL: cash.URL, APIKey: "k", Timeout: outboundTimeout}),
		shopify.NewClient(config.ShopifyConfig{Store: "s", BaseURL: shop.URL, APIVersion: "2024-01", AccessToken: "t", Timeout: outboundTimeout}),
		outboundTimeout,
		logger,
	)
	mux := http.NewServeMux()
	handlers.NewHandlers(svc, logger, false).RegisterRoutes(mux)

	handler := middleware.Recovery(logger, false)(mux)
	handler = middleware.Timeout(requestTimeout)(handler)
	handler = middleware.Logging(logger)(handler)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, handlers.ConfirmPath, strings.NewReader(validBody)))

	require.Equal(t, http.StatusInternalServerError, rr.Code, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "TIMEOUT", body["error"])
	assert.Equal(t, "CSH-1001", body["idNumber"])
	assert.Equal(t, int32(1), casheaCalls.Load())
	assert.Equal(t, int32(1), shopifyCalls.Load())
}
