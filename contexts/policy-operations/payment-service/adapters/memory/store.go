package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pawsure/contexts/policy-operations/payment-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/payment-service/domain/errors"
	"pawsure/contexts/policy-operations/payment-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	payments map[string]entities.Payment
	policies map[string]ports.PolicySummary
}

func NewStore(seed []entities.Payment) *Store {
	payments := make(map[string]entities.Payment, len(seed))
	for _, item := range seed {
		payments[item.PaymentID] = item
	}
	return &Store{
		payments: payments,
		policies: make(map[string]ports.PolicySummary),
	}
}

func (s *Store) CreatePayment(_ context.Context, payment entities.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.PaymentID] = payment
	return nil
}

func (s *Store) GetPayment(_ context.Context, paymentID string) (entities.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.payments[strings.TrimSpace(paymentID)]
	if !exists {
		return entities.Payment{}, domainerrors.ErrPaymentNotFound
	}
	return item, nil
}

func (s *Store) ListPayments(_ context.Context, filter ports.PaymentFilter) ([]entities.Payment, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Payment, 0, len(s.payments))
	for _, item := range s.payments {
		if filter.ApplicationID != "" && item.ApplicationID != filter.ApplicationID {
			continue
		}
		if filter.CustomerID != "" {
			policy, exists := s.policies[item.ApplicationID]
			if !exists || policy.CustomerID != filter.CustomerID {
				continue
			}
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	total := int64(len(items))
	page, limit := normalizePage(filter.Page, filter.Limit)
	start := (page - 1) * limit
	if start >= len(items) {
		return []entities.Payment{}, total, nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}

// SeedPolicy seeds the policy directory view.
func (s *Store) SeedPolicy(policy ports.PolicySummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[policy.ApplicationID] = policy
}

func (s *Store) GetPolicy(_ context.Context, applicationID string) (ports.PolicySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	policy, exists := s.policies[strings.TrimSpace(applicationID)]
	if !exists {
		return ports.PolicySummary{}, domainerrors.ErrApplicationNotFound
	}
	return policy, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func normalizePage(page int, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
