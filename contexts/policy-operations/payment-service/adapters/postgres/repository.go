package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"pawsure/contexts/policy-operations/payment-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/payment-service/domain/errors"
	"pawsure/contexts/policy-operations/payment-service/ports"

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

func (r *Repository) CreatePayment(ctx context.Context, payment entities.Payment) error {
	row := paymentModelFromEntity(payment)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetPayment(ctx context.Context, paymentID string) (entities.Payment, error) {
	var row paymentModel
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", strings.TrimSpace(paymentID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Payment{}, domainerrors.ErrPaymentNotFound
		}
		return entities.Payment{}, err
	}
	return row.toEntity(), nil
}

// ListPayments joins the applications projection when the filter
// carries a customer scope, since payments only know their application.
func (r *Repository) ListPayments(ctx context.Context, filter ports.PaymentFilter) ([]entities.Payment, int64, error) {
	tx := r.db.WithContext(ctx).Model(&paymentModel{})
	if strings.TrimSpace(filter.CustomerID) != "" {
		tx = tx.Joins("JOIN applications ON applications.application_id = payments.application_id").
			Where("applications.customer_id = ?", strings.TrimSpace(filter.CustomerID))
	}
	if strings.TrimSpace(filter.ApplicationID) != "" {
		tx = tx.Where("payments.application_id = ?", strings.TrimSpace(filter.ApplicationID))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	var rows []paymentModel
	err := tx.Order("payments.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Payment, 0, len(rows))
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
