package postgresadapter

import (
	"strings"
	"time"

	"pawsure/contexts/policy-operations/application-service/domain/entities"
)

type applicationModel struct {
	ApplicationID   string     `gorm:"column:application_id;primaryKey"`
	PolicyNumber    string     `gorm:"column:policy_number"`
	CustomerID      string     `gorm:"column:customer_id"`
	PetID           string     `gorm:"column:pet_id"`
	Status          string     `gorm:"column:status"`
	CoverageLimit   float64    `gorm:"column:coverage_limit"`
	Premium         float64    `gorm:"column:premium"`
	StartDate       *time.Time `gorm:"column:start_date"`
	Notes           string     `gorm:"column:notes"`
	Version         int        `gorm:"column:version"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	DecidedAt       *time.Time `gorm:"column:decided_at"`
	DecidedByUserID string     `gorm:"column:decided_by_user_id"`
	DeclineReason   string     `gorm:"column:decline_reason"`
}

func (applicationModel) TableName() string {
	return "applications"
}

func applicationModelFromEntity(app entities.Application) applicationModel {
	return applicationModel{
		ApplicationID:   strings.TrimSpace(app.ApplicationID),
		PolicyNumber:    strings.TrimSpace(app.PolicyNumber),
		CustomerID:      strings.TrimSpace(app.CustomerID),
		PetID:           strings.TrimSpace(app.PetID),
		Status:          string(app.Status),
		CoverageLimit:   app.CoverageLimit,
		Premium:         app.Premium,
		StartDate:       normalizeOptionalTime(app.StartDate),
		Notes:           strings.TrimSpace(app.Notes),
		Version:         app.Version,
		CreatedAt:       app.CreatedAt.UTC(),
		UpdatedAt:       app.UpdatedAt.UTC(),
		DecidedAt:       normalizeOptionalTime(app.DecidedAt),
		DecidedByUserID: strings.TrimSpace(app.DecidedByUserID),
		DeclineReason:   strings.TrimSpace(app.DeclineReason),
	}
}

func applicationUpdatesFromModel(row applicationModel) map[string]any {
	return map[string]any{
		"status":             row.Status,
		"coverage_limit":     row.CoverageLimit,
		"premium":            row.Premium,
		"start_date":         row.StartDate,
		"notes":              row.Notes,
		"version":            row.Version,
		"updated_at":         row.UpdatedAt,
		"decided_at":         row.DecidedAt,
		"decided_by_user_id": row.DecidedByUserID,
		"decline_reason":     row.DeclineReason,
	}
}

func (m applicationModel) toEntity() entities.Application {
	return entities.Application{
		ApplicationID:   m.ApplicationID,
		PolicyNumber:    m.PolicyNumber,
		CustomerID:      m.CustomerID,
		PetID:           m.PetID,
		Status:          entities.ApplicationStatus(m.Status),
		CoverageLimit:   m.CoverageLimit,
		Premium:         m.Premium,
		StartDate:       normalizeOptionalTime(m.StartDate),
		Notes:           m.Notes,
		Version:         m.Version,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
		DecidedAt:       normalizeOptionalTime(m.DecidedAt),
		DecidedByUserID: m.DecidedByUserID,
		DeclineReason:   m.DeclineReason,
	}
}

type petProjectionModel struct {
	PetID       string `gorm:"column:pet_id;primaryKey"`
	OwnerUserID string `gorm:"column:owner_user_id"`
}

func (petProjectionModel) TableName() string {
	return "pets"
}

type userProjectionModel struct {
	UserID string `gorm:"column:user_id;primaryKey"`
	Role   string `gorm:"column:role"`
}

func (userProjectionModel) TableName() string {
	return "users"
}
