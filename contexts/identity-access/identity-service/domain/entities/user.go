package entities

import (
	"strings"
	"time"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

type User struct {
	UserID          string
	Email           string
	FullName        string
	Role            Role
	PasswordHash    string
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u User) ValidateCreate() bool {
	return strings.TrimSpace(u.Email) != "" &&
		strings.Contains(u.Email, "@") &&
		strings.TrimSpace(u.FullName) != "" &&
		u.Role.Valid()
}

// HasCredentials reports whether the account is usable for login.
// Intake-created customers carry an empty hash until provisioning.
func (u User) HasCredentials() bool {
	return strings.TrimSpace(u.PasswordHash) != ""
}

type ClientDetails struct {
	UserID     string
	Phone      string
	Address    string
	City       string
	PostalCode string
	UpdatedAt  time.Time
}

// VerificationToken is a time-limited email verification record.
// Identifier is the user id the token was issued for.
type VerificationToken struct {
	Token      string
	Identifier string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

func (t VerificationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// RegistrationToken is an admin-issued, single-use invitation bound to
// an email address.
type RegistrationToken struct {
	Token          string
	Email          string
	IssuedByUserID string
	ExpiresAt      time.Time
	UsedAt         *time.Time
	CreatedAt      time.Time
}

func (t RegistrationToken) Usable(email string, now time.Time) bool {
	return t.UsedAt == nil &&
		!now.After(t.ExpiresAt) &&
		strings.EqualFold(strings.TrimSpace(t.Email), strings.TrimSpace(email))
}
