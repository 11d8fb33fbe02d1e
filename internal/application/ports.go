package application

import (
	"context"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
)

// PaymentProvider is the port for Cashea. A non-confirming status is a
// result, not an error; errors mean the call itself failed.
type PaymentProvider interface {
	ConfirmDownPayment(ctx context.Context, id domain.ProviderOrderID, amount domain.Amount) (*domain.ProviderConfirmation, error)
}

// CommercePlatform is the port for Shopify. A rejected order is reported as
// *PlatformRejectedError.
type CommercePlatform interface {
	CreateOrder(ctx context.Context, order domain.CommerceOrder) (*domain.PlatformOrder, error)
}
