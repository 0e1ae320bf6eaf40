package interfaces

import (
	"context"
	"payflux/internal/domain/entities"
)

// IPaymentGateway abstracts the simulated payment providers.
//
// Authorize is the only place that "decides" whether a payment works; it has
// no knowledge of actual funds, cards, or bank connectivity.
type IPaymentGateway interface {
	Authorize(ctx context.Context, gateway entities.Gateway) (transactionID string, status entities.PaymentStatus, err error)
}
