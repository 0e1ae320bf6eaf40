package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"payflux/internal/config"
	"payflux/internal/domain/entities"
	"payflux/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrMissingMethod = errors.New("missing method")
)

// maxHistoryRecords caps history reads to protect against unbounded scans.
const maxHistoryRecords = 50

const defaultRecipient = "Unknown"

// subtypePool holds the fallback instrument subtypes drawn when the caller
// omits one. Methods outside this table carry no subtype.
var subtypePool = map[string][]string{
	"card":       {"Visa", "MasterCard", "RuPay"},
	"netbanking": {"HDFC", "ICICI", "SBI", "Axis"},
	"upi":        {"Paytm", "GooglePay"},
}

// PayCommand is the raw payment request handed to the use case before
// normalization.
type PayCommand struct {
	Amount      float64
	Method      string
	Recipient   string
	Description string
	Subtype     string
}

// IPaymentUseCase exposes the payment-simulation operations.
//
//   - Pay runs the full pipeline: validate -> route -> resolve subtype ->
//     simulate -> append to the ledger.
//   - History returns the most recent ledger records, newest first.

type IPaymentUseCase interface {
	Pay(ctx context.Context, cmd PayCommand) (entities.PaymentRecord, error)
	History(ctx context.Context) ([]entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
	routing config.RoutingTable
	rng     interfaces.Rand
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, routing config.RoutingTable, rng interfaces.Rand) *PaymentUseCase {
	if rng == nil {
		rng = interfaces.SystemRand()
	}
	return &PaymentUseCase{repo: repo, gateway: gateway, routing: routing, rng: rng}
}

func (u *PaymentUseCase) Pay(ctx context.Context, cmd PayCommand) (entities.PaymentRecord, error) {
	norm, err := normalizePayCommand(cmd)
	if err != nil {
		log.Printf("[payment][usecase] rejected request method=%q amount=%v err=%v", cmd.Method, cmd.Amount, err)
		return entities.PaymentRecord{}, err
	}

	gw := u.routing.Route(norm.Method)
	subtype := u.resolveSubtype(norm.Method, norm.Subtype)
	display := displayMethod(norm.Method, subtype)

	txnID, status, err := u.gateway.Authorize(ctx, gw)
	if err != nil {
		log.Printf("[payment][usecase] gateway authorize failed gateway=%s err=%v", gw, err)
		return entities.PaymentRecord{}, err
	}

	rec := entities.PaymentRecord{
		ID:            uuid.NewString(),
		Amount:        norm.Amount,
		Method:        display,
		Recipient:     norm.Recipient,
		Description:   norm.Description,
		Gateway:       gw,
		Status:        status,
		TransactionID: txnID,
		CreatedAt:     time.Now().UTC(),
	}
	if rec.Recipient == "" {
		rec.Recipient = defaultRecipient
	}
	if rec.Description == "" {
		rec.Description = fmt.Sprintf("Payment via %s", display)
	}

	persisted, err := u.repo.Append(ctx, rec)
	if err != nil {
		log.Printf("[payment][usecase] ledger append failed txn_id=%s err=%v", rec.TransactionID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][usecase] payment recorded id=%s gateway=%s txn_id=%s status=%s", persisted.ID, persisted.Gateway, persisted.TransactionID, persisted.Status)
	return persisted, nil
}

func (u *PaymentUseCase) History(ctx context.Context) ([]entities.PaymentRecord, error) {
	return u.repo.Recent(ctx, maxHistoryRecords)
}

// resolveSubtype keeps a caller-provided subtype verbatim and otherwise draws
// one uniformly from the pool for the method. Methods without a pool entry
// carry no subtype.
func (u *PaymentUseCase) resolveSubtype(method, provided string) string {
	if provided != "" {
		return provided
	}
	pool, ok := subtypePool[method]
	if !ok {
		return ""
	}
	return pool[u.rng.Intn(len(pool))]
}

// displayMethod builds the persisted display string, e.g. "CARD (VISA)".
func displayMethod(method, subtype string) string {
	if subtype == "" {
		return strings.ToUpper(method)
	}
	return fmt.Sprintf("%s (%s)", strings.ToUpper(method), strings.ToUpper(subtype))
}

type normalizedPay struct {
	Amount      float64
	Method      string
	Recipient   string
	Description string
	Subtype     string
}

// normalizePayCommand validates and normalizes the raw request. It is a pure
// transform: the method is lower-cased for routing and all free-text fields
// pass through sanitizeText.
func normalizePayCommand(cmd PayCommand) (normalizedPay, error) {
	if cmd.Amount <= 0 {
		return normalizedPay{}, ErrInvalidAmount
	}
	method := strings.ToLower(strings.TrimSpace(cmd.Method))
	if method == "" {
		return normalizedPay{}, ErrMissingMethod
	}
	return normalizedPay{
		Amount:      cmd.Amount,
		Method:      method,
		Recipient:   sanitizeText(cmd.Recipient),
		Description: sanitizeText(cmd.Description),
		Subtype:     sanitizeText(cmd.Subtype),
	}, nil
}

var (
	markupChars = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "`", "")
	scriptWord  = regexp.MustCompile(`(?i)script`)
)

// sanitizeText strips angle brackets, quote characters and the literal
// substring "script" before trimming. This is a minimal defense against
// markup injection when values are later rendered, not a general sanitizer.
func sanitizeText(s string) string {
	s = markupChars.Replace(s)
	s = scriptWord.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
