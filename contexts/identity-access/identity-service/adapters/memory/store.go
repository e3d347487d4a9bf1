package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pawsure/contexts/identity-access/identity-service/domain/entities"
	domainerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	"pawsure/contexts/identity-access/identity-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	users              map[string]entities.User
	details            map[string]entities.ClientDetails
	verificationTokens map[string]entities.VerificationToken
	registrationTokens map[string]entities.RegistrationToken

	submittedEmails  map[string]bool
	applicationCount map[string]int64
}

func NewStore(seed []entities.User) *Store {
	users := make(map[string]entities.User, len(seed))
	for _, item := range seed {
		users[item.UserID] = item
	}
	return &Store{
		users:              users,
		details:            make(map[string]entities.ClientDetails),
		verificationTokens: make(map[string]entities.VerificationToken),
		registrationTokens: make(map[string]entities.RegistrationToken),
		submittedEmails:    make(map[string]bool),
		applicationCount:   make(map[string]int64),
	}
}

func (s *Store) CreateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domainerrors.ErrEmailAlreadyRegistered
		}
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) GetUser(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.users[strings.TrimSpace(userID)]
	if !exists {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return item, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.users {
		if strings.EqualFold(item.Email, strings.TrimSpace(email)) {
			return item, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) UpdateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.UserID]; !exists {
		return domainerrors.ErrUserNotFound
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) DeleteUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[userID]; !exists {
		return domainerrors.ErrUserNotFound
	}
	delete(s.users, userID)
	delete(s.details, userID)
	return nil
}

func (s *Store) ListUsers(_ context.Context, filter ports.UserFilter) ([]entities.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.User, 0, len(s.users))
	for _, item := range s.users {
		if filter.Role != "" && item.Role != filter.Role {
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
		return []entities.User{}, total, nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}

func (s *Store) GetClientDetails(_ context.Context, userID string) (entities.ClientDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.details[strings.TrimSpace(userID)], nil
}

func (s *Store) UpsertClientDetails(_ context.Context, details entities.ClientDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[details.UserID] = details
	return nil
}

func (s *Store) CreateVerificationToken(_ context.Context, token entities.VerificationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verificationTokens[token.Token] = token
	return nil
}

func (s *Store) ConsumeVerificationToken(_ context.Context, token string) (entities.VerificationToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.verificationTokens[strings.TrimSpace(token)]
	if !exists {
		return entities.VerificationToken{}, domainerrors.ErrVerificationTokenInvalid
	}
	delete(s.verificationTokens, item.Token)
	return item, nil
}

func (s *Store) CreateRegistrationToken(_ context.Context, token entities.RegistrationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrationTokens[token.Token] = token
	return nil
}

func (s *Store) GetRegistrationToken(_ context.Context, token string) (entities.RegistrationToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.registrationTokens[strings.TrimSpace(token)]
	if !exists {
		return entities.RegistrationToken{}, domainerrors.ErrRegistrationTokenInvalid
	}
	return item, nil
}

func (s *Store) MarkRegistrationTokenUsed(_ context.Context, token string, usedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.registrationTokens[strings.TrimSpace(token)]
	if !exists {
		return domainerrors.ErrRegistrationTokenInvalid
	}
	item.UsedAt = &usedAt
	s.registrationTokens[item.Token] = item
	return nil
}

// SetSubmittedApplicationEmail seeds the application directory view.
func (s *Store) SetSubmittedApplicationEmail(email string, submitted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submittedEmails[strings.ToLower(strings.TrimSpace(email))] = submitted
}

func (s *Store) SetApplicationCount(customerID string, count int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicationCount[customerID] = count
}

func (s *Store) HasSubmittedApplicationForEmail(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submittedEmails[strings.ToLower(strings.TrimSpace(email))], nil
}

func (s *Store) CountApplicationsByCustomer(_ context.Context, customerID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applicationCount[strings.TrimSpace(customerID)], nil
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
