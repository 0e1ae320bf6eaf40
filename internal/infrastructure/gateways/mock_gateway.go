package gateways

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"payflux/internal/domain/entities"
	"payflux/internal/usecase/interfaces"
)

// failureThreshold is the probability mass assigned to a failed outcome:
// a uniform draw in [0,1) at or below it fails, everything else succeeds.
const failureThreshold = 0.1

// MockGateway synthesizes gateway outcomes without contacting any provider.
//
// Transaction ids follow "<3-letter gateway prefix>-<millis>"; uniqueness is
// best effort, a same-millisecond collision is an accepted non-goal.

type MockGateway struct {
	rng interfaces.Rand
	now func() time.Time
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway(rng interfaces.Rand) *MockGateway {
	if rng == nil {
		rng = interfaces.SystemRand()
	}
	return &MockGateway{rng: rng, now: time.Now}
}

func (g *MockGateway) Authorize(_ context.Context, gateway entities.Gateway) (string, entities.PaymentStatus, error) {
	txnID := fmt.Sprintf("%s-%d", gatewayPrefix(gateway), g.now().UnixMilli())

	status := entities.PaymentStatusSuccess
	if g.rng.Float64() <= failureThreshold {
		status = entities.PaymentStatusFailed
	}

	log.Printf("[payment][gateway] simulated authorization gateway=%s txn_id=%s status=%s", gateway, txnID, status)
	return txnID, status, nil
}

func gatewayPrefix(gateway entities.Gateway) string {
	id := string(gateway)
	if len(id) > 3 {
		id = id[:3]
	}
	return strings.ToUpper(id)
}
