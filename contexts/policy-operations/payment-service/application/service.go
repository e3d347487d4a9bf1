package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pawsure/contexts/policy-operations/payment-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/payment-service/domain/errors"
	"pawsure/contexts/policy-operations/payment-service/ports"
)

const roleAdmin = "admin"

type Service struct {
	Repository ports.Repository
	Policies   ports.PolicyDirectory
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

type RecordPaymentInput struct {
	ApplicationID string
	Amount        float64
	Method        string
	Reference     string
	PaidAt        *time.Time
}

// RecordPayment writes an immutable payment record. Customers may only
// pay against their own applications; the paid-at timestamp defaults
// to now when omitted.
func (s Service) RecordPayment(ctx context.Context, actorID string, actorRole string, input RecordPaymentInput) (entities.Payment, error) {
	logger := ResolveLogger(s.Logger)

	payment := entities.Payment{
		ApplicationID: strings.TrimSpace(input.ApplicationID),
		Amount:        input.Amount,
		Method:        strings.TrimSpace(input.Method),
		Reference:     strings.TrimSpace(input.Reference),
	}
	if !payment.ValidateCreate() {
		return entities.Payment{}, domainerrors.ErrInvalidPaymentInput
	}

	policy, err := s.Policies.GetPolicy(ctx, payment.ApplicationID)
	if err != nil {
		return entities.Payment{}, err
	}
	if actorRole != roleAdmin && policy.CustomerID != strings.TrimSpace(actorID) {
		return entities.Payment{}, domainerrors.ErrForbidden
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Payment{}, err
	}
	now := s.now()
	payment.PaymentID = id
	payment.CreatedAt = now
	if input.PaidAt != nil {
		payment.PaidAt = input.PaidAt.UTC()
	} else {
		payment.PaidAt = now
	}

	if err := s.Repository.CreatePayment(ctx, payment); err != nil {
		return entities.Payment{}, err
	}

	logger.Info("payment recorded",
		"event", "payment_recorded",
		"module", "policy-operations/payment-service",
		"layer", "application",
		"payment_id", payment.PaymentID,
		"application_id", payment.ApplicationID,
	)
	return payment, nil
}

// GetPayment resolves ownership through the underlying policy.
func (s Service) GetPayment(ctx context.Context, actorID string, actorRole string, paymentID string) (entities.Payment, error) {
	payment, err := s.Repository.GetPayment(ctx, strings.TrimSpace(paymentID))
	if err != nil {
		return entities.Payment{}, err
	}
	if actorRole != roleAdmin {
		policy, err := s.Policies.GetPolicy(ctx, payment.ApplicationID)
		if err != nil {
			return entities.Payment{}, err
		}
		if policy.CustomerID != strings.TrimSpace(actorID) {
			return entities.Payment{}, domainerrors.ErrForbidden
		}
	}
	return payment, nil
}

// ListPayments constrains the query to the actor's own records for
// non-admins.
func (s Service) ListPayments(ctx context.Context, actorID string, actorRole string, applicationID string, page int, limit int) ([]entities.Payment, int64, error) {
	filter := ports.PaymentFilter{
		ApplicationID: strings.TrimSpace(applicationID),
		Page:          page,
		Limit:         limit,
	}
	if actorRole != roleAdmin {
		filter.CustomerID = strings.TrimSpace(actorID)
	}
	return s.Repository.ListPayments(ctx, filter)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
