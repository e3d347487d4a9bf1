package postgresadapter

import (
	"strings"
	"time"

	"pawsure/contexts/policy-operations/claim-service/domain/entities"
)

type claimModel struct {
	ClaimID          string     `gorm:"column:claim_id;primaryKey"`
	ClaimNumber      string     `gorm:"column:claim_number"`
	ApplicationID    string     `gorm:"column:application_id"`
	Status           string     `gorm:"column:status"`
	ClaimedAmount    float64    `gorm:"column:claimed_amount"`
	ApprovedAmount   *float64   `gorm:"column:approved_amount"`
	Description      string     `gorm:"column:description"`
	VeterinarianName string     `gorm:"column:veterinarian_name"`
	TreatmentDate    *time.Time `gorm:"column:treatment_date"`
	AdjusterNotes    string     `gorm:"column:adjuster_notes"`
	Version          int        `gorm:"column:version"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
	DecidedAt        *time.Time `gorm:"column:decided_at"`
	DecidedByUserID  string     `gorm:"column:decided_by_user_id"`
}

func (claimModel) TableName() string {
	return "claims"
}

func claimModelFromEntity(claim entities.Claim) claimModel {
	return claimModel{
		ClaimID:          strings.TrimSpace(claim.ClaimID),
		ClaimNumber:      strings.TrimSpace(claim.ClaimNumber),
		ApplicationID:    strings.TrimSpace(claim.ApplicationID),
		Status:           string(claim.Status),
		ClaimedAmount:    claim.ClaimedAmount,
		ApprovedAmount:   claim.ApprovedAmount,
		Description:      strings.TrimSpace(claim.Description),
		VeterinarianName: strings.TrimSpace(claim.VeterinarianName),
		TreatmentDate:    normalizeOptionalTime(claim.TreatmentDate),
		AdjusterNotes:    strings.TrimSpace(claim.AdjusterNotes),
		Version:          claim.Version,
		CreatedAt:        claim.CreatedAt.UTC(),
		UpdatedAt:        claim.UpdatedAt.UTC(),
		DecidedAt:        normalizeOptionalTime(claim.DecidedAt),
		DecidedByUserID:  strings.TrimSpace(claim.DecidedByUserID),
	}
}

func claimUpdatesFromModel(row claimModel) map[string]any {
	return map[string]any{
		"status":             row.Status,
		"approved_amount":    row.ApprovedAmount,
		"adjuster_notes":     row.AdjusterNotes,
		"version":            row.Version,
		"updated_at":         row.UpdatedAt,
		"decided_at":         row.DecidedAt,
		"decided_by_user_id": row.DecidedByUserID,
	}
}

func (m claimModel) toEntity() entities.Claim {
	return entities.Claim{
		ClaimID:          m.ClaimID,
		ClaimNumber:      m.ClaimNumber,
		ApplicationID:    m.ApplicationID,
		Status:           entities.ClaimStatus(m.Status),
		ClaimedAmount:    m.ClaimedAmount,
		ApprovedAmount:   m.ApprovedAmount,
		Description:      m.Description,
		VeterinarianName: m.VeterinarianName,
		TreatmentDate:    normalizeOptionalTime(m.TreatmentDate),
		AdjusterNotes:    m.AdjusterNotes,
		Version:          m.Version,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
		DecidedAt:        normalizeOptionalTime(m.DecidedAt),
		DecidedByUserID:  m.DecidedByUserID,
	}
}

type applicationProjectionModel struct {
	ApplicationID string  `gorm:"column:application_id;primaryKey"`
	CustomerID    string  `gorm:"column:customer_id"`
	Status        string  `gorm:"column:status"`
	CoverageLimit float64 `gorm:"column:coverage_limit"`
}

func (applicationProjectionModel) TableName() string {
	return "applications"
}
