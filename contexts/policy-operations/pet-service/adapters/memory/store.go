package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pawsure/contexts/policy-operations/pet-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/pet-service/domain/errors"
	"pawsure/contexts/policy-operations/pet-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	pets              map[string]entities.Pet
	applicationCounts map[string]int64
}

func NewStore(seed []entities.Pet) *Store {
	pets := make(map[string]entities.Pet, len(seed))
	for _, item := range seed {
		pets[item.PetID] = item
	}
	return &Store{
		pets:              pets,
		applicationCounts: make(map[string]int64),
	}
}

func (s *Store) CreatePet(_ context.Context, pet entities.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets[pet.PetID] = pet
	return nil
}

func (s *Store) GetPet(_ context.Context, petID string) (entities.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.pets[strings.TrimSpace(petID)]
	if !exists {
		return entities.Pet{}, domainerrors.ErrPetNotFound
	}
	return item, nil
}

func (s *Store) UpdatePet(_ context.Context, pet entities.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pets[pet.PetID]; !exists {
		return domainerrors.ErrPetNotFound
	}
	s.pets[pet.PetID] = pet
	return nil
}

func (s *Store) DeletePet(_ context.Context, petID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pets[strings.TrimSpace(petID)]; !exists {
		return domainerrors.ErrPetNotFound
	}
	delete(s.pets, strings.TrimSpace(petID))
	return nil
}

func (s *Store) ListPets(_ context.Context, filter ports.PetFilter) ([]entities.Pet, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Pet, 0, len(s.pets))
	for _, item := range s.pets {
		if filter.OwnerUserID != "" && item.OwnerUserID != filter.OwnerUserID {
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
		return []entities.Pet{}, total, nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}

// SetApplicationCount seeds the application directory view.
func (s *Store) SetApplicationCount(petID string, count int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicationCounts[petID] = count
}

func (s *Store) CountApplicationsByPet(_ context.Context, petID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applicationCounts[strings.TrimSpace(petID)], nil
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
