package shopify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/config"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/infrastructure/upstream"
)

const accessTokenHeader = "X-Shopify-Access-Token"

type orderEnvelope struct {
	Order domain.CommerceOrder `json:"order"`
}

type createdOrderEnvelope struct {
	Order *domain.PlatformOrder `json:"order"`
}

type HTTPClient struct {
	ordersURL   string
	accessToken string
	timeout     time.Duration
	httpClient  *http.Client
}

func NewClient(cfg config.ShopifyConfig) *HTTPClient {
	return &HTTPClient{
		ordersURL:   fmt.Sprintf("%s/admin/api/%s/orders.json", cfg.StoreURL(), cfg.APIVersion),
		accessToken: cfg.AccessToken,
		timeout:     cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ application.CommercePlatform = (*HTTPClient)(nil)

func (c *HTTPClient) CreateOrder(ctx context.Context, order domain.CommerceOrder) (*domain.PlatformOrder, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	headers := http.Header{accessTokenHeader: {c.accessToken}}

	resp, err := upstream.Send(ctx, c.httpClient, http.MethodPost, c.ordersURL, &orderEnvelope{Order: order}, headers)
	if err != nil {
		return nil, fmt.Errorf("shopify create order: %w", err)
	}

	if !resp.OK() {
		return nil, &application.PlatformRejectedError{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
		}
	}

	var created createdOrderEnvelope
	if err := resp.Decode(&created); err != nil || created.Order == nil || created.Order.ID == 0 {
		return nil, &application.PlatformRejectedError{
			StatusCode: resp.StatusCode,
			Body:       rawOrBody(resp),
			Reason:     "order missing from response",
		}
	}

	return created.Order, nil
}

func rawOrBody(resp *upstream.Response) any {
	if resp.Parsed {
		return resp.Body
	}
	return string(resp.Raw)
}
