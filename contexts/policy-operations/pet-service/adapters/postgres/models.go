package postgresadapter

import (
	"strings"
	"time"

	"pawsure/contexts/policy-operations/pet-service/domain/entities"
)

type petModel struct {
	PetID       string     `gorm:"column:pet_id;primaryKey"`
	OwnerUserID string     `gorm:"column:owner_user_id"`
	Name        string     `gorm:"column:name"`
	Species     string     `gorm:"column:species"`
	Breed       string     `gorm:"column:breed"`
	BirthDate   *time.Time `gorm:"column:birth_date"`
	MicrochipID string     `gorm:"column:microchip_id"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (petModel) TableName() string {
	return "pets"
}

func petModelFromEntity(pet entities.Pet) petModel {
	return petModel{
		PetID:       strings.TrimSpace(pet.PetID),
		OwnerUserID: strings.TrimSpace(pet.OwnerUserID),
		Name:        strings.TrimSpace(pet.Name),
		Species:     strings.TrimSpace(pet.Species),
		Breed:       strings.TrimSpace(pet.Breed),
		BirthDate:   normalizeOptionalTime(pet.BirthDate),
		MicrochipID: strings.TrimSpace(pet.MicrochipID),
		CreatedAt:   pet.CreatedAt.UTC(),
		UpdatedAt:   pet.UpdatedAt.UTC(),
	}
}

func petUpdatesFromModel(row petModel) map[string]any {
	return map[string]any{
		"name":         row.Name,
		"species":      row.Species,
		"breed":        row.Breed,
		"birth_date":   row.BirthDate,
		"microchip_id": row.MicrochipID,
		"updated_at":   row.UpdatedAt,
	}
}

func (m petModel) toEntity() entities.Pet {
	return entities.Pet{
		PetID:       m.PetID,
		OwnerUserID: m.OwnerUserID,
		Name:        m.Name,
		Species:     m.Species,
		Breed:       m.Breed,
		BirthDate:   normalizeOptionalTime(m.BirthDate),
		MicrochipID: m.MicrochipID,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type applicationProjectionModel struct {
	ApplicationID string `gorm:"column:application_id;primaryKey"`
	PetID         string `gorm:"column:pet_id"`
}

func (applicationProjectionModel) TableName() string {
	return "applications"
}
