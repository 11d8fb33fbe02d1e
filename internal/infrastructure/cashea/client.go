package cashea

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/config"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/infrastructure/upstream"
)

type downPaymentRequest struct {
	Amount json.Number `json:"amount"`
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient builds the Cashea client with its own transport. Certificate
// verification is only relaxed here, and only when configured.
func NewClient(cfg config.CasheaConfig) *HTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for Cashea's broken chain
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

var _ application.PaymentProvider = (*HTTPClient)(nil)

// ConfirmDownPayment posts the down payment for a Cashea order. Any status
// comes back as a confirmation; the caller decides what it means.
func (c *HTTPClient) ConfirmDownPayment(ctx context.Context, id domain.ProviderOrderID, amount domain.Amount) (*domain.ProviderConfirmation, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := fmt.Sprintf("%s/orders/%s/down-payment", c.baseURL, url.PathEscape(id.String()))
	headers := http.Header{"Authorization": {"ApiKey " + c.apiKey}}

	resp, err := upstream.Send(ctx, c.httpClient, http.MethodPost, endpoint, &downPaymentRequest{Amount: amount.Number()}, headers)
	if err != nil {
		return nil, fmt.Errorf("cashea down-payment %s: %w", id, err)
	}

	return &domain.ProviderConfirmation{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Raw:        string(resp.Raw),
	}, nil
}
