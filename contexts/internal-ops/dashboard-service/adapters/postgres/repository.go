package postgresadapter

import (
	"context"
	"log/slog"
	"strings"

	"pawsure/contexts/internal-ops/dashboard-service/ports"

	"gorm.io/gorm"
)

// Repository computes the dashboard aggregates straight from the
// projection tables owned by the other contexts.
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

type statusCountRow struct {
	Status string `gorm:"column:status"`
	Total  int64  `gorm:"column:total"`
}

func (r *Repository) GetStats(ctx context.Context, scope ports.StatsScope) (ports.DashboardStats, error) {
	stats := ports.DashboardStats{
		ApplicationsByStatus: map[string]int64{},
		ClaimsByStatus:       map[string]int64{},
	}
	customerID := strings.TrimSpace(scope.CustomerID)

	applicationTx := r.db.WithContext(ctx).
		Table("applications").
		Select("status, COUNT(*) AS total").
		Group("status")
	if customerID != "" {
		applicationTx = applicationTx.Where("customer_id = ?", customerID)
	}
	var applicationRows []statusCountRow
	if err := applicationTx.Scan(&applicationRows).Error; err != nil {
		return ports.DashboardStats{}, err
	}
	for _, row := range applicationRows {
		stats.ApplicationsByStatus[row.Status] = row.Total
	}

	claimTx := r.db.WithContext(ctx).
		Table("claims").
		Select("claims.status, COUNT(*) AS total").
		Group("claims.status")
	if customerID != "" {
		claimTx = claimTx.
			Joins("JOIN applications ON applications.application_id = claims.application_id").
			Where("applications.customer_id = ?", customerID)
	}
	var claimRows []statusCountRow
	if err := claimTx.Scan(&claimRows).Error; err != nil {
		return ports.DashboardStats{}, err
	}
	for _, row := range claimRows {
		stats.ClaimsByStatus[row.Status] = row.Total
	}

	petTx := r.db.WithContext(ctx).Table("pets")
	if customerID != "" {
		petTx = petTx.Where("owner_user_id = ?", customerID)
	}
	if err := petTx.Count(&stats.PetCount).Error; err != nil {
		return ports.DashboardStats{}, err
	}

	paymentTx := r.db.WithContext(ctx).
		Table("payments").
		Select("COUNT(*) AS total, COALESCE(SUM(payments.amount), 0) AS amount")
	if customerID != "" {
		paymentTx = paymentTx.
			Joins("JOIN applications ON applications.application_id = payments.application_id").
			Where("applications.customer_id = ?", customerID)
	}
	var paymentRow struct {
		Total  int64   `gorm:"column:total"`
		Amount float64 `gorm:"column:amount"`
	}
	if err := paymentTx.Scan(&paymentRow).Error; err != nil {
		return ports.DashboardStats{}, err
	}
	stats.PaymentCount = paymentRow.Total
	stats.PaymentTotalAmount = paymentRow.Amount

	return stats, nil
}
