package interfaces

import (
	"context"
	"payflux/internal/domain/entities"
)

// IPaymentRepository abstracts the append-only ledger persistence for
// PaymentRecord. The store owns the persisted collection; callers always
// receive copies. No update or delete operation exists.

type IPaymentRepository interface {
	Append(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	Recent(ctx context.Context, limit int) ([]entities.PaymentRecord, error)
}
