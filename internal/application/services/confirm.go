package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/infrastructure/upstream"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/logging"
)

type Outcome string

const (
	OutcomeSuccess        Outcome = "SUCCESS"
	OutcomePartialSuccess Outcome = "PARTIAL_SUCCESS"
)

// ConfirmationResult is what the caller gets once Cashea has confirmed the
// down payment. PartialSuccess means Shopify did not take the order and an
// operator has to create it by hand from PlatformError.
type ConfirmationResult struct {
	Outcome          Outcome
	IDNumber         domain.ProviderOrderID
	Amount           domain.Amount
	ProviderResponse any
	Order            *domain.PlatformOrder
	PlatformStatus   int
	PlatformError    any
}

type ConfirmationService struct {
	provider     application.PaymentProvider
	platform     application.CommercePlatform
	orderTimeout time.Duration
	logger       *slog.Logger
}

func NewConfirmationService(
	provider application.PaymentProvider,
	platform application.CommercePlatform,
	orderTimeout time.Duration,
	logger *slog.Logger,
) *ConfirmationService {
	return &ConfirmationService{
		provider:     provider,
		platform:     platform,
		orderTimeout: orderTimeout,
		logger:       logger,
	}
}

// Confirm runs validation, the Cashea down-payment confirmation and the
// Shopify order creation, in that order and at most once each.
//
// A Cashea status other than 200/201 stops the workflow before Shopify is
// called. Nothing is deduplicated: the same request sent twice creates two
// Shopify orders.
func (s *ConfirmationService) Confirm(ctx context.Context, req *domain.ConfirmationRequest) (*ConfirmationResult, error) {
	logger := logging.FromCtx(ctx, s.logger)
	wf := domain.NewWorkflow(req.IDNumber)
	defer func() {
		logger.Info("confirmation finished",
			"state", wf.State,
			"payment_confirmed", wf.PaymentConfirmed(),
			"duration_ms", wf.Duration().Milliseconds(),
		)
	}()

	if err := req.Validate(); err != nil {
		advance(logger, wf.RejectInput)
		logger.Warn("confirmation rejected by validation", "error", err)
		return nil, application.NewInvalidInputError(err)
	}

	logger = logger.With("id_number", req.IDNumber.String())
	logger.Info("validation ok",
		"amount", req.Amount.String(),
		"customer", req.CustomerName(),
		"items", len(req.LineItems),
	)

	advance(logger, wf.StartPaymentConfirmation)
	confirmation, err := s.provider.ConfirmDownPayment(ctx, req.IDNumber, req.Amount)
	if err != nil {
		advance(logger, wf.Fail)
		svcErr := serverError(req.IDNumber, err)
		logger.Error("cashea call failed",
			"error", err,
			"category", application.CategorizeError(svcErr),
		)
		return nil, svcErr
	}

	logger.Info("cashea responded", "status", confirmation.StatusCode)

	if !confirmation.Confirmed() {
		advance(logger, wf.Abort)
		logger.Error("cashea did not confirm the down payment",
			"status", confirmation.StatusCode,
			"body", confirmation.Raw,
		)
		return nil, application.NewProviderRejectedError(req.IDNumber, confirmation)
	}

	advance(logger, wf.StartOrderCreation)
	order := domain.BuildCommerceOrder(req)

	// The payment is confirmed at this point, so the order is created even
	// if the caller has gone away.
	orderCtx := context.WithoutCancel(ctx)
	if s.orderTimeout > 0 {
		var cancel context.CancelFunc
		orderCtx, cancel = context.WithTimeout(orderCtx, s.orderTimeout)
		defer cancel()
	}

	created, err := s.platform.CreateOrder(orderCtx, order)

	if ctx.Err() != nil {
		logger.Warn("caller cancelled after payment confirmation; order step ran to completion",
			"cause", ctx.Err(),
			"order_created", err == nil,
		)
	}

	if err != nil {
		if rejErr, ok := application.IsPlatformRejected(err); ok {
			advance(logger, wf.CompletePartially)
			logger.Error("shopify rejected order after cashea confirmation",
				"status", rejErr.StatusCode,
				"reason", rejErr.Reason,
				"category", application.CategorizeError(err),
			)
			return &ConfirmationResult{
				Outcome:          OutcomePartialSuccess,
				IDNumber:         req.IDNumber,
				Amount:           req.Amount,
				ProviderResponse: confirmation.Body,
				PlatformStatus:   rejErr.StatusCode,
				PlatformError:    rejErr.Body,
			}, nil
		}

		advance(logger, wf.Fail)
		svcErr := serverError(req.IDNumber, err)
		logger.Error("shopify call failed after cashea confirmation",
			"error", err,
			"category", application.CategorizeError(svcErr),
		)
		return nil, svcErr
	}

	advance(logger, wf.Complete)
	logger.Info("order created", "order_id", created.ID, "order_number", created.OrderNumber)

	return &ConfirmationResult{
		Outcome:          OutcomeSuccess,
		IDNumber:         req.IDNumber,
		Amount:           req.Amount,
		ProviderResponse: confirmation.Body,
		Order:            created,
	}, nil
}

// advance applies a workflow step. A rejected transition is logged and
// otherwise ignored.
func advance(logger *slog.Logger, step func() error) {
	if err := step(); err != nil {
		logger.Error("workflow transition rejected", "error", err)
	}
}

func serverError(id domain.ProviderOrderID, err error) *application.ServiceError {
	if upstream.IsTimeout(err) {
		return application.NewTimeoutError(id, err)
	}
	return application.NewInternalError(id, err)
}
