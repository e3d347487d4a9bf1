package httpserver

import (
	"net/http"
	"strings"

	identitycrypto "pawsure/contexts/identity-access/identity-service/adapters/crypto"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "session"

type principal struct {
	UserID string
	Role   string
}

type authedHandler func(w http.ResponseWriter, r *http.Request, p principal)

// resolvePrincipal reads the session token from the session cookie,
// falling back to the Authorization bearer header, and verifies it.
func (s *Server) resolvePrincipal(r *http.Request) (principal, bool) {
	raw := ""
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		raw = cookie.Value
	}
	if raw == "" {
		header := r.Header.Get("Authorization")
		if after, found := strings.CutPrefix(header, "Bearer "); found {
			raw = strings.TrimSpace(after)
		}
	}
	if raw == "" {
		return principal{}, false
	}

	claims := &identitycrypto.SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return principal{}, false
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return principal{}, false
	}
	return principal{UserID: claims.UserID, Role: claims.Role}, true
}

func (s *Server) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := s.resolvePrincipal(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r, p)
	}
}

func (s *Server) requireAdmin(next authedHandler) http.HandlerFunc {
	return s.requireAuth(func(w http.ResponseWriter, r *http.Request, p principal) {
		if p.Role != "admin" {
			respondError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next(w, r, p)
	})
}
