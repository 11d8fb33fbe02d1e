package rest

import (
	"net/http"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application/services"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
)

const (
	successMessage = "Pago confirmado en Cashea y orden creada en Shopify"
	partialWarning = "Pago confirmado en Cashea pero error al crear orden en Shopify"
)

type ConfirmationResponse struct {
	Success          bool          `json:"success"`
	Warning          string        `json:"warning,omitempty"`
	IDNumber         string        `json:"idNumber"`
	Amount           domain.Amount `json:"amount"`
	Message          string        `json:"message,omitempty"`
	ProviderResponse any           `json:"providerResponse"`
	Order            *OrderSummary `json:"order,omitempty"`
	PlatformStatus   int           `json:"platformStatus,omitempty"`
	PlatformError    any           `json:"platformError,omitempty"`
}

type OrderSummary struct {
	ID          int64  `json:"id"`
	OrderNumber int64  `json:"order_number"`
	Name        string `json:"name,omitempty"`
	TotalPrice  string `json:"total_price,omitempty"`
	AdminURL    string `json:"admin_url,omitempty"`
}

// ToConfirmationResponse shapes a workflow result and picks its status:
// 200 for success, 207 when the order still has to be created by hand.
func ToConfirmationResponse(result *services.ConfirmationResult) (int, ConfirmationResponse) {
	resp := ConfirmationResponse{
		Success:          true,
		IDNumber:         result.IDNumber.String(),
		Amount:           result.Amount,
		ProviderResponse: result.ProviderResponse,
	}

	if result.Outcome == services.OutcomePartialSuccess {
		resp.Warning = partialWarning
		resp.PlatformStatus = result.PlatformStatus
		resp.PlatformError = result.PlatformError
		if resp.PlatformError == nil {
			resp.PlatformError = map[string]any{}
		}
		return http.StatusMultiStatus, resp
	}

	resp.Message = successMessage
	if o := result.Order; o != nil {
		resp.Order = &OrderSummary{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Name:        o.Name,
			TotalPrice:  o.TotalPrice,
			AdminURL:    o.AdminGraphQLAPIID,
		}
	}
	return http.StatusOK, resp
}
