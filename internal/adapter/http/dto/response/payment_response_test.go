package response

import (
	"testing"
	"time"

	"payflux/internal/domain/entities"
)

func TestFromPaymentRecord(t *testing.T) {
	now := time.Now().UTC()
	p := entities.PaymentRecord{
		ID:            "rec-1",
		Amount:        123.45,
		Method:        "CARD (VISA)",
		Recipient:     "Bob",
		Description:   "lunch",
		Gateway:       entities.GatewayStripe,
		Status:        entities.PaymentStatusSuccess,
		TransactionID: "STR-1700000000000",
		CreatedAt:     now,
	}

	got := FromPaymentRecord(p)
	if got.ID != "rec-1" || got.Amount != 123.45 || got.Method != "CARD (VISA)" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Gateway != "stripe" || got.Status != "Success" || got.TransactionID != "STR-1700000000000" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected createdAt: %v", got.CreatedAt)
	}
}

func TestFromPaymentRecords(t *testing.T) {
	got := FromPaymentRecords(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}

	got = FromPaymentRecords([]entities.PaymentRecord{{ID: "a"}, {ID: "b"}})
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected slice: %+v", got)
	}
}
