package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pawsure/contexts/policy-operations/claim-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/claim-service/domain/errors"
	"pawsure/contexts/policy-operations/claim-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	claims   map[string]entities.Claim
	policies map[string]ports.PolicySummary
}

func NewStore(seed []entities.Claim) *Store {
	claims := make(map[string]entities.Claim, len(seed))
	for _, item := range seed {
		claims[item.ClaimID] = item
	}
	return &Store{
		claims:   claims,
		policies: make(map[string]ports.PolicySummary),
	}
}

func (s *Store) CreateClaim(_ context.Context, claim entities.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims[claim.ClaimID] = claim
	return nil
}

func (s *Store) GetClaim(_ context.Context, claimID string) (entities.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.claims[strings.TrimSpace(claimID)]
	if !exists {
		return entities.Claim{}, domainerrors.ErrClaimNotFound
	}
	return item, nil
}

func (s *Store) UpdateClaim(_ context.Context, claim entities.Claim, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.claims[claim.ClaimID]
	if !exists {
		return domainerrors.ErrClaimNotFound
	}
	if existing.Version != expectedVersion {
		return domainerrors.ErrVersionConflict
	}
	s.claims[claim.ClaimID] = claim
	return nil
}

func (s *Store) ListClaims(_ context.Context, filter ports.ClaimFilter) ([]entities.Claim, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Claim, 0, len(s.claims))
	for _, item := range s.claims {
		if filter.ApplicationID != "" && item.ApplicationID != filter.ApplicationID {
			continue
		}
		if filter.CustomerID != "" {
			policy, exists := s.policies[item.ApplicationID]
			if !exists || policy.CustomerID != filter.CustomerID {
				continue
			}
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, item.Status) {
			continue
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
		return []entities.Claim{}, total, nil
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

func containsStatus(statuses []entities.ClaimStatus, status entities.ClaimStatus) bool {
	for _, candidate := range statuses {
		if candidate == status {
			return true
		}
	}
	return false
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
