package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pawsure/contexts/policy-operations/application-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/application-service/domain/errors"
	"pawsure/contexts/policy-operations/application-service/ports"

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

func (r *Repository) CreateApplication(ctx context.Context, app entities.Application) error {
	row := applicationModelFromEntity(app)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetApplication(ctx context.Context, applicationID string) (entities.Application, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", strings.TrimSpace(applicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, domainerrors.ErrApplicationNotFound
		}
		return entities.Application{}, err
	}
	return row.toEntity(), nil
}

// UpdateApplication writes the full row guarded by the version check.
// RowsAffected 0 with the row still present means a concurrent writer
// won the race.
func (r *Repository) UpdateApplication(ctx context.Context, app entities.Application, expectedVersion int) error {
	row := applicationModelFromEntity(app)
	result := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("application_id = ?", row.ApplicationID).
		Where("version = ?", expectedVersion).
		Updates(applicationUpdatesFromModel(row))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&applicationModel{}).
			Where("application_id = ?", row.ApplicationID).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrApplicationNotFound
		}
		return domainerrors.ErrVersionConflict
	}
	return nil
}

func (r *Repository) ListApplications(ctx context.Context, filter ports.ApplicationFilter) ([]entities.Application, int64, error) {
	tx := r.db.WithContext(ctx).Model(&applicationModel{})
	if strings.TrimSpace(filter.CustomerID) != "" {
		tx = tx.Where("customer_id = ?", strings.TrimSpace(filter.CustomerID))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		tx = tx.Where("status IN ?", statuses)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	var rows []applicationModel
	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Application, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

// GetPetOwner reads the pets table owned by the pet context as a
// projection.
func (r *Repository) GetPetOwner(ctx context.Context, petID string) (string, error) {
	var row petProjectionModel
	err := r.db.WithContext(ctx).
		Where("pet_id = ?", strings.TrimSpace(petID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrPetNotFound
		}
		return "", err
	}
	return row.OwnerUserID, nil
}

// IsCustomer reads the users table owned by the identity context as a
// projection.
func (r *Repository) IsCustomer(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userProjectionModel{}).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("role = ?", "customer").
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
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
