package entities

import "time"

// Gateway identifies one of the simulated payment providers. No provider is
// ever contacted; the identifier only drives routing and transaction-id
// synthesis.

type Gateway string

const (
	GatewayRazorpay Gateway = "razorpay"
	GatewayStripe   Gateway = "stripe"
	GatewayCashfree Gateway = "cashfree"
)

// Known reports whether g is one of the supported gateway identifiers.
func (g Gateway) Known() bool {
	switch g {
	case GatewayRazorpay, GatewayStripe, GatewayCashfree:
		return true
	}
	return false
}

// PaymentStatus is the terminal outcome of a simulated payment. There is no
// intermediate state: a record is persisted exactly once with its final status.

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "Success"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// PaymentRecord is the payment entity persisted in the ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_at-index): record_type / created_at
//
// Method is the display form combining the normalized payment method and its
// resolved subtype, e.g. "CARD (VISA)". TransactionID follows the
// "<3-letter gateway prefix>-<millis>" shape produced by the mock gateway.

type PaymentRecord struct {
	ID            string        `json:"id"`
	Amount        float64       `json:"amount"`
	Method        string        `json:"method"`
	Recipient     string        `json:"recipient"`
	Description   string        `json:"description"`
	Gateway       Gateway       `json:"gateway"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId"`
	CreatedAt     time.Time     `json:"createdAt"`
}
