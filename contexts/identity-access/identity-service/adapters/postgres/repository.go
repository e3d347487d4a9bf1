package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pawsure/contexts/identity-access/identity-service/domain/entities"
	domainerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	"pawsure/contexts/identity-access/identity-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

func (r *Repository) CreateUser(ctx context.Context, user entities.User) error {
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("lower(email) = lower(?)", strings.TrimSpace(email)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateUser(ctx context.Context, user entities.User) error {
	row := userModelFromEntity(user)
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", row.UserID).
		Updates(map[string]any{
			"email":             row.Email,
			"full_name":         row.FullName,
			"role":              row.Role,
			"password_hash":     row.PasswordHash,
			"email_verified_at": row.EmailVerifiedAt,
			"updated_at":        row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Delete(&userModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Delete(&clientDetailsModel{}).
		Error
}

func (r *Repository) ListUsers(ctx context.Context, filter ports.UserFilter) ([]entities.User, int64, error) {
	tx := r.db.WithContext(ctx).Model(&userModel{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", string(filter.Role))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	var rows []userModel
	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, total, nil
}

func (r *Repository) GetClientDetails(ctx context.Context, userID string) (entities.ClientDetails, error) {
	var row clientDetailsModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ClientDetails{}, nil
		}
		return entities.ClientDetails{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpsertClientDetails(ctx context.Context, details entities.ClientDetails) error {
	row := clientDetailsModel{
		UserID:     strings.TrimSpace(details.UserID),
		Phone:      strings.TrimSpace(details.Phone),
		Address:    strings.TrimSpace(details.Address),
		City:       strings.TrimSpace(details.City),
		PostalCode: strings.TrimSpace(details.PostalCode),
		UpdatedAt:  details.UpdatedAt.UTC(),
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"phone", "address", "city", "postal_code", "updated_at"}),
		}).
		Create(&row).
		Error
}

func (r *Repository) CreateVerificationToken(ctx context.Context, token entities.VerificationToken) error {
	row := verificationTokenModel{
		Token:      token.Token,
		Identifier: token.Identifier,
		ExpiresAt:  token.ExpiresAt.UTC(),
		CreatedAt:  token.CreatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ConsumeVerificationToken(ctx context.Context, token string) (entities.VerificationToken, error) {
	var row verificationTokenModel
	err := r.db.WithContext(ctx).
		Where("token = ?", strings.TrimSpace(token)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VerificationToken{}, domainerrors.ErrVerificationTokenInvalid
		}
		return entities.VerificationToken{}, err
	}
	if err := r.db.WithContext(ctx).
		Where("token = ?", row.Token).
		Delete(&verificationTokenModel{}).
		Error; err != nil {
		return entities.VerificationToken{}, err
	}
	return entities.VerificationToken{
		Token:      row.Token,
		Identifier: row.Identifier,
		ExpiresAt:  row.ExpiresAt.UTC(),
		CreatedAt:  row.CreatedAt.UTC(),
	}, nil
}

func (r *Repository) CreateRegistrationToken(ctx context.Context, token entities.RegistrationToken) error {
	row := registrationTokenModel{
		Token:          token.Token,
		Email:          token.Email,
		IssuedByUserID: token.IssuedByUserID,
		ExpiresAt:      token.ExpiresAt.UTC(),
		CreatedAt:      token.CreatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetRegistrationToken(ctx context.Context, token string) (entities.RegistrationToken, error) {
	var row registrationTokenModel
	err := r.db.WithContext(ctx).
		Where("token = ?", strings.TrimSpace(token)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.RegistrationToken{}, domainerrors.ErrRegistrationTokenInvalid
		}
		return entities.RegistrationToken{}, err
	}
	return entities.RegistrationToken{
		Token:          row.Token,
		Email:          row.Email,
		IssuedByUserID: row.IssuedByUserID,
		ExpiresAt:      row.ExpiresAt.UTC(),
		UsedAt:         normalizeOptionalTime(row.UsedAt),
		CreatedAt:      row.CreatedAt.UTC(),
	}, nil
}

func (r *Repository) MarkRegistrationTokenUsed(ctx context.Context, token string, usedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&registrationTokenModel{}).
		Where("token = ?", strings.TrimSpace(token)).
		Where("used_at IS NULL").
		Update("used_at", usedAt.UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRegistrationTokenInvalid
	}
	return nil
}

// HasSubmittedApplicationForEmail reads the applications table owned by
// the policy-operations context as a projection, joined on the owning
// customer's email.
func (r *Repository) HasSubmittedApplicationForEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&applicationProjectionModel{}).
		Joins("JOIN users ON users.user_id = applications.customer_id").
		Where("lower(users.email) = lower(?)", strings.TrimSpace(email)).
		Where("applications.status = ?", "submitted").
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CountApplicationsByCustomer(ctx context.Context, customerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&applicationProjectionModel{}).
		Where("customer_id = ?", strings.TrimSpace(customerID)).
		Count(&count).
		Error
	return count, err
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
