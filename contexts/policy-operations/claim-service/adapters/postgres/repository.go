package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pawsure/contexts/policy-operations/claim-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/claim-service/domain/errors"
	"pawsure/contexts/policy-operations/claim-service/ports"

	"gorm.io/gorm"
)

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

func (r *Repository) CreateClaim(ctx context.Context, claim entities.Claim) error {
	row := claimModelFromEntity(claim)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetClaim(ctx context.Context, claimID string) (entities.Claim, error) {
	var row claimModel
	err := r.db.WithContext(ctx).
		Where("claim_id = ?", strings.TrimSpace(claimID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Claim{}, domainerrors.ErrClaimNotFound
		}
		return entities.Claim{}, err
	}
	return row.toEntity(), nil
}

// UpdateClaim writes the full row guarded by the version check.
// RowsAffected 0 with the row still present means a concurrent writer
// won the race.
func (r *Repository) UpdateClaim(ctx context.Context, claim entities.Claim, expectedVersion int) error {
	row := claimModelFromEntity(claim)
	result := r.db.WithContext(ctx).
		Model(&claimModel{}).
		Where("claim_id = ?", row.ClaimID).
		Where("version = ?", expectedVersion).
		Updates(claimUpdatesFromModel(row))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&claimModel{}).
			Where("claim_id = ?", row.ClaimID).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrClaimNotFound
		}
		return domainerrors.ErrVersionConflict
	}
	return nil
}

// ListClaims joins the applications projection when the filter carries
// a customer scope, since claims only know their application.
func (r *Repository) ListClaims(ctx context.Context, filter ports.ClaimFilter) ([]entities.Claim, int64, error) {
	tx := r.db.WithContext(ctx).Model(&claimModel{})
	if strings.TrimSpace(filter.CustomerID) != "" {
		tx = tx.Joins("JOIN applications ON applications.application_id = claims.application_id").
			Where("applications.customer_id = ?", strings.TrimSpace(filter.CustomerID))
	}
	if strings.TrimSpace(filter.ApplicationID) != "" {
		tx = tx.Where("claims.application_id = ?", strings.TrimSpace(filter.ApplicationID))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		tx = tx.Where("claims.status IN ?", statuses)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	var rows []claimModel
	err := tx.Order("claims.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Claim, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

// GetPolicy reads the applications table owned by the application
// context as a projection.
func (r *Repository) GetPolicy(ctx context.Context, applicationID string) (ports.PolicySummary, error) {
	var row applicationProjectionModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", strings.TrimSpace(applicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PolicySummary{}, domainerrors.ErrApplicationNotFound
		}
		return ports.PolicySummary{}, err
	}
	return ports.PolicySummary{
		ApplicationID: row.ApplicationID,
		CustomerID:    row.CustomerID,
		Status:        row.Status,
		CoverageLimit: row.CoverageLimit,
	}, nil
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

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}
