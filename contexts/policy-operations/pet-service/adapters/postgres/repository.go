package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pawsure/contexts/policy-operations/pet-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/pet-service/domain/errors"
	"pawsure/contexts/policy-operations/pet-service/ports"

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

func (r *Repository) CreatePet(ctx context.Context, pet entities.Pet) error {
	row := petModelFromEntity(pet)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetPet(ctx context.Context, petID string) (entities.Pet, error) {
	var row petModel
	err := r.db.WithContext(ctx).
		Where("pet_id = ?", strings.TrimSpace(petID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Pet{}, domainerrors.ErrPetNotFound
		}
		return entities.Pet{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdatePet(ctx context.Context, pet entities.Pet) error {
	row := petModelFromEntity(pet)
	result := r.db.WithContext(ctx).
		Model(&petModel{}).
		Where("pet_id = ?", row.PetID).
		Updates(petUpdatesFromModel(row))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPetNotFound
	}
	return nil
}

func (r *Repository) DeletePet(ctx context.Context, petID string) error {
	result := r.db.WithContext(ctx).
		Where("pet_id = ?", strings.TrimSpace(petID)).
		Delete(&petModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPetNotFound
	}
	return nil
}

func (r *Repository) ListPets(ctx context.Context, filter ports.PetFilter) ([]entities.Pet, int64, error) {
	tx := r.db.WithContext(ctx).Model(&petModel{})
	if strings.TrimSpace(filter.OwnerUserID) != "" {
		tx = tx.Where("owner_user_id = ?", strings.TrimSpace(filter.OwnerUserID))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	var rows []petModel
	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Pet, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

// CountApplicationsByPet reads the applications table owned by the
// application context as a projection.
func (r *Repository) CountApplicationsByPet(ctx context.Context, petID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&applicationProjectionModel{}).
		Where("pet_id = ?", strings.TrimSpace(petID)).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
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
