package ports

import (
	"context"
	"time"

	"pawsure/contexts/identity-access/identity-service/domain/entities"
)

type UserFilter struct {
	Role  entities.Role
	Page  int
	Limit int
}

type Repository interface {
	CreateUser(ctx context.Context, user entities.User) error
	GetUser(ctx context.Context, userID string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) error
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context, filter UserFilter) ([]entities.User, int64, error)

	GetClientDetails(ctx context.Context, userID string) (entities.ClientDetails, error)
	UpsertClientDetails(ctx context.Context, details entities.ClientDetails) error

	CreateVerificationToken(ctx context.Context, token entities.VerificationToken) error
	ConsumeVerificationToken(ctx context.Context, token string) (entities.VerificationToken, error)

	CreateRegistrationToken(ctx context.Context, token entities.RegistrationToken) error
	GetRegistrationToken(ctx context.Context, token string) (entities.RegistrationToken, error)
	MarkRegistrationTokenUsed(ctx context.Context, token string, usedAt time.Time) error
}

// ApplicationDirectory is a read-only view into the policy-operations
// context used by registration eligibility and delete guards.
type ApplicationDirectory interface {
	HasSubmittedApplicationForEmail(ctx context.Context, email string) (bool, error)
	CountApplicationsByCustomer(ctx context.Context, customerID string) (int64, error)
}

// Notifier sends transactional email. Send failures are logged by the
// caller and never fail the enclosing request.
type Notifier interface {
	SendWelcome(ctx context.Context, email string, fullName string) error
	SendTemporaryCredentials(ctx context.Context, email string, tempPassword string, verifyURL string) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash string, plain string) error
}

// SessionIssuer mints signed session tokens for authenticated users.
type SessionIssuer interface {
	Issue(userID string, role entities.Role, ttl time.Duration) (string, time.Time, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
