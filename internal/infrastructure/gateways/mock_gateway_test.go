package gateways

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"payflux/internal/domain/entities"
)

// fixedRand always returns the same draw, pinning the simulated outcome.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }
func (r fixedRand) Intn(n int) int   { return 0 }

func TestMockGateway_TransactionID(t *testing.T) {
	txnPattern := regexp.MustCompile(`^[A-Z]{3}-\d+$`)

	cases := []struct {
		gateway entities.Gateway
		prefix  string
	}{
		{entities.GatewayRazorpay, "RAZ"},
		{entities.GatewayStripe, "STR"},
		{entities.GatewayCashfree, "CAS"},
	}

	for _, tc := range cases {
		t.Run(string(tc.gateway), func(t *testing.T) {
			g := NewMockGateway(fixedRand{v: 0.5})
			at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
			g.now = func() time.Time { return at }

			txnID, _, err := g.Authorize(context.Background(), tc.gateway)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !txnPattern.MatchString(txnID) {
				t.Fatalf("transaction id %q does not match pattern", txnID)
			}
			want := fmt.Sprintf("%s-%d", tc.prefix, at.UnixMilli())
			if txnID != want {
				t.Fatalf("expected %q, got %q", want, txnID)
			}
		})
	}
}

func TestMockGateway_Status(t *testing.T) {
	t.Run("draw at threshold fails", func(t *testing.T) {
		g := NewMockGateway(fixedRand{v: 0.1})
		_, status, err := g.Authorize(context.Background(), entities.GatewayRazorpay)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.PaymentStatusFailed {
			t.Fatalf("expected Failed, got %s", status)
		}
	})

	t.Run("draw above threshold succeeds", func(t *testing.T) {
		g := NewMockGateway(fixedRand{v: 0.11})
		_, status, err := g.Authorize(context.Background(), entities.GatewayRazorpay)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.PaymentStatusSuccess {
			t.Fatalf("expected Success, got %s", status)
		}
	})
}

func TestMockGateway_FailureRate(t *testing.T) {
	g := NewMockGateway(rand.New(rand.NewSource(42)))

	const n = 10000
	failed := 0
	for i := 0; i < n; i++ {
		_, status, err := g.Authorize(context.Background(), entities.GatewayStripe)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status == entities.PaymentStatusFailed {
			failed++
		}
	}

	rate := float64(failed) / float64(n)
	if math.Abs(rate-0.1) > 0.02 {
		t.Fatalf("empirical failure rate %.4f outside tolerance of 0.1", rate)
	}
}
