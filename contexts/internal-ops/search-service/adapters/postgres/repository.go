package postgresadapter

import (
	"context"
	"log/slog"
	"strings"

	"pawsure/contexts/internal-ops/search-service/ports"

	"gorm.io/gorm"
)

// Repository runs ILIKE substring matches over the projection tables
// owned by the other contexts. Ownership restrictions are part of the
// queries themselves, never post-filtered.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Search(ctx context.Context, query string, scope ports.SearchScope, limitPerType int) (ports.SearchResults, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	customerID := strings.TrimSpace(scope.CustomerID)
	results := ports.SearchResults{
		Users:        []ports.UserMatch{},
		Pets:         []ports.PetMatch{},
		Applications: []ports.ApplicationMatch{},
		Claims:       []ports.ClaimMatch{},
	}

	if scope.IncludeUsers {
		var rows []struct {
			UserID   string `gorm:"column:user_id"`
			Email    string `gorm:"column:email"`
			FullName string `gorm:"column:full_name"`
			Role     string `gorm:"column:role"`
		}
		err := r.db.WithContext(ctx).
			Table("users").
			Select("user_id, email, full_name, role").
			Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern).
			Limit(limitPerType).
			Scan(&rows).
			Error
		if err != nil {
			return ports.SearchResults{}, err
		}
		for _, row := range rows {
			results.Users = append(results.Users, ports.UserMatch(row))
		}
	}

	{
		var rows []struct {
			PetID       string `gorm:"column:pet_id"`
			OwnerUserID string `gorm:"column:owner_user_id"`
			Name        string `gorm:"column:name"`
			Species     string `gorm:"column:species"`
		}
		tx := r.db.WithContext(ctx).
			Table("pets").
			Select("pet_id, owner_user_id, name, species").
			Where("name ILIKE ? OR species ILIKE ?", pattern, pattern)
		if customerID != "" {
			tx = tx.Where("owner_user_id = ?", customerID)
		}
		if err := tx.Limit(limitPerType).Scan(&rows).Error; err != nil {
			return ports.SearchResults{}, err
		}
		for _, row := range rows {
			results.Pets = append(results.Pets, ports.PetMatch(row))
		}
	}

	{
		var rows []struct {
			ApplicationID string `gorm:"column:application_id"`
			PolicyNumber  string `gorm:"column:policy_number"`
			CustomerID    string `gorm:"column:customer_id"`
			Status        string `gorm:"column:status"`
			Notes         string `gorm:"column:notes"`
		}
		tx := r.db.WithContext(ctx).
			Table("applications").
			Select("application_id, policy_number, customer_id, status, notes").
			Where("policy_number ILIKE ? OR notes ILIKE ?", pattern, pattern)
		if customerID != "" {
			tx = tx.Where("customer_id = ?", customerID)
		}
		if err := tx.Limit(limitPerType).Scan(&rows).Error; err != nil {
			return ports.SearchResults{}, err
		}
		for _, row := range rows {
			results.Applications = append(results.Applications, ports.ApplicationMatch(row))
		}
	}

	{
		var rows []struct {
			ClaimID          string `gorm:"column:claim_id"`
			ClaimNumber      string `gorm:"column:claim_number"`
			ApplicationID    string `gorm:"column:application_id"`
			Status           string `gorm:"column:status"`
			Description      string `gorm:"column:description"`
			VeterinarianName string `gorm:"column:veterinarian_name"`
		}
		tx := r.db.WithContext(ctx).
			Table("claims").
			Select("claims.claim_id, claims.claim_number, claims.application_id, claims.status, claims.description, claims.veterinarian_name").
			Where("claims.claim_number ILIKE ? OR claims.description ILIKE ? OR claims.veterinarian_name ILIKE ?", pattern, pattern, pattern)
		if customerID != "" {
			tx = tx.Joins("JOIN applications ON applications.application_id = claims.application_id").
				Where("applications.customer_id = ?", customerID)
		}
		if err := tx.Limit(limitPerType).Scan(&rows).Error; err != nil {
			return ports.SearchResults{}, err
		}
		for _, row := range rows {
			results.Claims = append(results.Claims, ports.ClaimMatch(row))
		}
	}

	return results, nil
}
