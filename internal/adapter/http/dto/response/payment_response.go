package response

import (
	"time"

	"payflux/internal/domain/entities"
)

type PaymentResponse struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Recipient     string    `json:"recipient"`
	Description   string    `json:"description"`
	Gateway       string    `json:"gateway"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		Method:        p.Method,
		Recipient:     p.Recipient,
		Description:   p.Description,
		Gateway:       string(p.Gateway),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(records))
	for _, p := range records {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}
