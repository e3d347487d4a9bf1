package memory

import (
	"context"
	"sync"

	"pawsure/contexts/internal-ops/dashboard-service/ports"
)

type applicationRow struct {
	CustomerID string
	Status     string
}

type claimRow struct {
	CustomerID string
	Status     string
}

type paymentRow struct {
	CustomerID string
	Amount     float64
}

type Store struct {
	mu sync.RWMutex

	applications []applicationRow
	claims       []claimRow
	petOwners    []string
	payments     []paymentRow
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SeedApplication(customerID string, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = append(s.applications, applicationRow{CustomerID: customerID, Status: status})
}

func (s *Store) SeedClaim(customerID string, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = append(s.claims, claimRow{CustomerID: customerID, Status: status})
}

func (s *Store) SeedPet(ownerUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.petOwners = append(s.petOwners, ownerUserID)
}

func (s *Store) SeedPayment(customerID string, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, paymentRow{CustomerID: customerID, Amount: amount})
}

func (s *Store) GetStats(_ context.Context, scope ports.StatsScope) (ports.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ports.DashboardStats{
		ApplicationsByStatus: map[string]int64{},
		ClaimsByStatus:       map[string]int64{},
	}
	for _, row := range s.applications {
		if scope.CustomerID != "" && row.CustomerID != scope.CustomerID {
			continue
		}
		stats.ApplicationsByStatus[row.Status]++
	}
	for _, row := range s.claims {
		if scope.CustomerID != "" && row.CustomerID != scope.CustomerID {
			continue
		}
		stats.ClaimsByStatus[row.Status]++
	}
	for _, owner := range s.petOwners {
		if scope.CustomerID != "" && owner != scope.CustomerID {
			continue
		}
		stats.PetCount++
	}
	for _, row := range s.payments {
		if scope.CustomerID != "" && row.CustomerID != scope.CustomerID {
			continue
		}
		stats.PaymentCount++
		stats.PaymentTotalAmount += row.Amount
	}
	return stats, nil
}
