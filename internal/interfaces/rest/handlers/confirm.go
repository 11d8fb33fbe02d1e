package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/logging"
)

const maxBodyBytes = 1 << 20

// ConfirmPayment processes a Cashea down-payment notification
// @Summary      Confirm a Cashea down payment and create the Shopify order
// @Tags         cashea
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ConfirmationRequest  true  "Down payment notification"
// @Success      200      {object}  rest.ConfirmationResponse   "Payment confirmed and order created"
// @Success      207      {object}  rest.ConfirmationResponse   "Payment confirmed, order creation failed"
// @Failure      400      {object}  rest.ErrorResponse          "Invalid request"
// @Failure      405      {object}  rest.ErrorResponse          "Method not allowed"
// @Failure      500      {object}  rest.ErrorResponse          "Internal server error"
// @Router       /api/confirmar-cashea [post]
func (h *Handlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		rest.WriteError(w, application.NewMethodNotAllowedError(), false)
		return
	}

	logger := logging.FromCtx(r.Context(), h.logger)

	var req domain.ConfirmationRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("malformed confirmation body", "error", err)
		rest.WriteError(w, application.NewInvalidInputError(domain.NewMalformedBodyError(err)), false)
		return
	}

	result, err := h.confirmService.Confirm(r.Context(), &req)
	if err != nil {
		rest.WriteError(w, err, h.exposeErrors)
		return
	}

	status, body := rest.ToConfirmationResponse(result)
	rest.WriteJSON(w, status, body)
}
