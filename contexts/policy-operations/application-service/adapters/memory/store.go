package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pawsure/contexts/policy-operations/application-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/application-service/domain/errors"
	"pawsure/contexts/policy-operations/application-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	applications map[string]entities.Application
	petOwners    map[string]string
	customers    map[string]bool
}

func NewStore(seed []entities.Application) *Store {
	applications := make(map[string]entities.Application, len(seed))
	for _, item := range seed {
		applications[item.ApplicationID] = item
	}
	return &Store{
		applications: applications,
		petOwners:    make(map[string]string),
		customers:    make(map[string]bool),
	}
}

func (s *Store) CreateApplication(_ context.Context, app entities.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[app.ApplicationID] = app
	return nil
}

func (s *Store) GetApplication(_ context.Context, applicationID string) (entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.applications[strings.TrimSpace(applicationID)]
	if !exists {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return item, nil
}

func (s *Store) UpdateApplication(_ context.Context, app entities.Application, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.applications[app.ApplicationID]
	if !exists {
		return domainerrors.ErrApplicationNotFound
	}
	if existing.Version != expectedVersion {
		return domainerrors.ErrVersionConflict
	}
	s.applications[app.ApplicationID] = app
	return nil
}

func (s *Store) ListApplications(_ context.Context, filter ports.ApplicationFilter) ([]entities.Application, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Application, 0, len(s.applications))
	for _, item := range s.applications {
		if filter.CustomerID != "" && item.CustomerID != filter.CustomerID {
			continue
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
		return []entities.Application{}, total, nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}

// SetPetOwner seeds the pet directory view.
func (s *Store) SetPetOwner(petID string, ownerUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.petOwners[petID] = ownerUserID
}

// SetCustomer seeds the customer directory view.
func (s *Store) SetCustomer(userID string, isCustomer bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[userID] = isCustomer
}

func (s *Store) GetPetOwner(_ context.Context, petID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, exists := s.petOwners[strings.TrimSpace(petID)]
	if !exists {
		return "", domainerrors.ErrPetNotFound
	}
	return owner, nil
}

func (s *Store) IsCustomer(_ context.Context, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers[strings.TrimSpace(userID)], nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func containsStatus(statuses []entities.ApplicationStatus, status entities.ApplicationStatus) bool {
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
