package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application/services"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest/middleware"
)

const (
	ConfirmPath      = "/api/confirmar-cashea"
	ConfirmAliasPath = "/confirm"
)

type ConfirmationService interface {
	Confirm(ctx context.Context, req *domain.ConfirmationRequest) (*services.ConfirmationResult, error)
}

type Handlers struct {
	confirmService ConfirmationService
	logger         *slog.Logger
	exposeErrors   bool
}

func NewHandlers(
	confirmService ConfirmationService,
	logger *slog.Logger,
	exposeErrors bool,
) *Handlers {
	return &Handlers{
		confirmService: confirmService,
		logger:         logger,
		exposeErrors:   exposeErrors,
	}
}

// RegisterRoutes mounts the webhook without a method in the pattern so
// non-POST requests get the JSON 405 and OPTIONS gets the CORS preflight.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	confirm := middleware.CORS(http.HandlerFunc(h.ConfirmPayment))
	mux.Handle(ConfirmPath, confirm)
	mux.Handle(ConfirmAliasPath, confirm)
	mux.HandleFunc("GET /healthz", h.Health)
}
