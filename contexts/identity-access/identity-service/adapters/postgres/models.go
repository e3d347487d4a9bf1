package postgresadapter

import (
	"strings"
	"time"

	"pawsure/contexts/identity-access/identity-service/domain/entities"
)

type userModel struct {
	UserID          string     `gorm:"column:user_id;primaryKey"`
	Email           string     `gorm:"column:email"`
	FullName        string     `gorm:"column:full_name"`
	Role            string     `gorm:"column:role"`
	PasswordHash    string     `gorm:"column:password_hash"`
	EmailVerifiedAt *time.Time `gorm:"column:email_verified_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromEntity(user entities.User) userModel {
	return userModel{
		UserID:          strings.TrimSpace(user.UserID),
		Email:           strings.ToLower(strings.TrimSpace(user.Email)),
		FullName:        strings.TrimSpace(user.FullName),
		Role:            string(user.Role),
		PasswordHash:    user.PasswordHash,
		EmailVerifiedAt: user.EmailVerifiedAt,
		CreatedAt:       user.CreatedAt.UTC(),
		UpdatedAt:       user.UpdatedAt.UTC(),
	}
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:          m.UserID,
		Email:           m.Email,
		FullName:        m.FullName,
		Role:            entities.Role(m.Role),
		PasswordHash:    m.PasswordHash,
		EmailVerifiedAt: normalizeOptionalTime(m.EmailVerifiedAt),
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

type clientDetailsModel struct {
	UserID     string    `gorm:"column:user_id;primaryKey"`
	Phone      string    `gorm:"column:phone"`
	Address    string    `gorm:"column:address"`
	City       string    `gorm:"column:city"`
	PostalCode string    `gorm:"column:postal_code"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (clientDetailsModel) TableName() string {
	return "client_details"
}

func (m clientDetailsModel) toEntity() entities.ClientDetails {
	return entities.ClientDetails{
		UserID:     m.UserID,
		Phone:      m.Phone,
		Address:    m.Address,
		City:       m.City,
		PostalCode: m.PostalCode,
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

type verificationTokenModel struct {
	Token      string    `gorm:"column:token;primaryKey"`
	Identifier string    `gorm:"column:identifier"`
	ExpiresAt  time.Time `gorm:"column:expires_at"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (verificationTokenModel) TableName() string {
	return "verification_tokens"
}

type registrationTokenModel struct {
	Token          string     `gorm:"column:token;primaryKey"`
	Email          string     `gorm:"column:email"`
	IssuedByUserID string     `gorm:"column:issued_by_user_id"`
	ExpiresAt      time.Time  `gorm:"column:expires_at"`
	UsedAt         *time.Time `gorm:"column:used_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (registrationTokenModel) TableName() string {
	return "registration_tokens"
}

type applicationProjectionModel struct {
	ApplicationID string `gorm:"column:application_id;primaryKey"`
	CustomerID    string `gorm:"column:customer_id"`
	Status        string `gorm:"column:status"`
}

func (applicationProjectionModel) TableName() string {
	return "applications"
}
