package repository

import (
	"testing"
	"time"

	"payflux/internal/domain/entities"
)

func TestPaymentItemConversion(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 123456789, time.UTC)
	p := entities.PaymentRecord{
		ID:            "rec-1",
		Amount:        500,
		Method:        "UPI (PAYTM)",
		Recipient:     "Bob",
		Description:   "rent",
		Gateway:       entities.GatewayRazorpay,
		Status:        entities.PaymentStatusFailed,
		TransactionID: "RAZ-1717243200000",
		CreatedAt:     created,
	}

	it := toPaymentItem(p)
	if it.RecordType != recordTypePayment {
		t.Fatalf("expected record_type %q, got %q", recordTypePayment, it.RecordType)
	}
	if it.CreatedAt != created.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected created_at encoding: %q", it.CreatedAt)
	}

	back := fromPaymentItem(it)
	if back != p {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, p)
	}
}
