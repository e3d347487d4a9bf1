package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pawsure/contexts/identity-access/identity-service/domain/entities"
)

// SessionClaims is the JWT payload carried by session tokens.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTSessionIssuer implements ports.SessionIssuer with HS256 tokens.
type JWTSessionIssuer struct {
	Secret []byte
}

func (i JWTSessionIssuer) Issue(userID string, role entities.Role, ttl time.Duration) (string, time.Time, error) {
	if len(i.Secret) == 0 {
		return "", time.Time{}, errors.New("session signing secret is required")
	}
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	claims := SessionClaims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
