package memory

import (
	"context"
	"strings"
	"sync"

	"pawsure/contexts/internal-ops/search-service/ports"
)

type claimRecord struct {
	Match      ports.ClaimMatch
	CustomerID string
}

type Store struct {
	mu sync.RWMutex

	users        []ports.UserMatch
	pets         []ports.PetMatch
	applications []ports.ApplicationMatch
	claims       []claimRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SeedUser(match ports.UserMatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, match)
}

func (s *Store) SeedPet(match ports.PetMatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets = append(s.pets, match)
}

func (s *Store) SeedApplication(match ports.ApplicationMatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = append(s.applications, match)
}

func (s *Store) SeedClaim(match ports.ClaimMatch, customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = append(s.claims, claimRecord{Match: match, CustomerID: customerID})
}

func (s *Store) Search(_ context.Context, query string, scope ports.SearchScope, limitPerType int) (ports.SearchResults, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	results := ports.SearchResults{
		Users:        []ports.UserMatch{},
		Pets:         []ports.PetMatch{},
		Applications: []ports.ApplicationMatch{},
		Claims:       []ports.ClaimMatch{},
	}

	if scope.IncludeUsers {
		for _, match := range s.users {
			if len(results.Users) >= limitPerType {
				break
			}
			if contains(needle, match.FullName, match.Email) {
				results.Users = append(results.Users, match)
			}
		}
	}
	for _, match := range s.pets {
		if len(results.Pets) >= limitPerType {
			break
		}
		if scope.CustomerID != "" && match.OwnerUserID != scope.CustomerID {
			continue
		}
		if contains(needle, match.Name, match.Species) {
			results.Pets = append(results.Pets, match)
		}
	}
	for _, match := range s.applications {
		if len(results.Applications) >= limitPerType {
			break
		}
		if scope.CustomerID != "" && match.CustomerID != scope.CustomerID {
			continue
		}
		if contains(needle, match.PolicyNumber, match.Notes) {
			results.Applications = append(results.Applications, match)
		}
	}
	for _, record := range s.claims {
		if len(results.Claims) >= limitPerType {
			break
		}
		if scope.CustomerID != "" && record.CustomerID != scope.CustomerID {
			continue
		}
		match := record.Match
		if contains(needle, match.ClaimNumber, match.Description, match.VeterinarianName) {
			results.Claims = append(results.Claims, match)
		}
	}
	return results, nil
}

func contains(needle string, haystacks ...string) bool {
	for _, haystack := range haystacks {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}
