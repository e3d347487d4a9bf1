package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	identityerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	identityhttp "pawsure/contexts/identity-access/identity-service/transport/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.identity.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeIdentityError(w, err)
		return
	}
	respondData(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.identity.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeIdentityError(w, err)
		return
	}

	expiresAt, _ := time.Parse(time.RFC3339, resp.ExpiresAt)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	if err := s.identity.Handler.VerifyEmailHandler(r.Context(), req); err != nil {
		writeIdentityError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "Email verified.")
}

func (s *Server) handleIssueRegistrationToken(w http.ResponseWriter, r *http.Request, p principal) {
	var req identityhttp.IssueRegistrationTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.identity.Handler.IssueRegistrationTokenHandler(r.Context(), p.UserID, p.Role, req)
	if err != nil {
		writeIdentityError(w, err)
		return
	}
	respondData(w, http.StatusCreated, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.identity.Handler.GetUserHandler(r.Context(), p.UserID, p.Role, r.PathValue("user_id"))
	if err != nil {
		writeIdentityError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request, p principal) {
	var req identityhttp.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.identity.Handler.UpdateUserHandler(r.Context(), p.UserID, p.Role, r.PathValue("user_id"), req)
	if err != nil {
		writeIdentityError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request, p principal) {
	if err := s.identity.Handler.DeleteUserHandler(r.Context(), p.Role, r.PathValue("user_id")); err != nil {
		writeIdentityError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "User deleted.")
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request, p principal) {
	page, limit := parsePageQuery(r)
	resp, total, err := s.identity.Handler.ListUsersHandler(r.Context(), p.Role, r.URL.Query().Get("role"), page, limit)
	if err != nil {
		writeIdentityError(w, err)
		return
	}
	respondPage(w, http.StatusOK, resp.Items, page, limit, total)
}

func writeIdentityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identityerrors.ErrNoSubmittedApplication):
		respondError(w, http.StatusForbidden, "No submitted application found for this email.")
	case errors.Is(err, identityerrors.ErrRegistrationTokenInvalid):
		respondError(w, http.StatusForbidden, "Registration token is invalid or expired.")
	case errors.Is(err, identityerrors.ErrForbidden):
		respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, identityerrors.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, identityerrors.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "NotFound")
	case errors.Is(err, identityerrors.ErrInvalidUserInput):
		respondError(w, http.StatusBadRequest, "ValidationError")
	case errors.Is(err, identityerrors.ErrVerificationTokenInvalid):
		respondError(w, http.StatusUnprocessableEntity, "Verification token is invalid or expired.")
	case errors.Is(err, identityerrors.ErrEmailAlreadyRegistered):
		respondError(w, http.StatusConflict, "Email already registered.")
	case errors.Is(err, identityerrors.ErrUserOwnsApplications):
		respondError(w, http.StatusConflict, "User still owns applications.")
	default:
		respondError(w, http.StatusInternalServerError, "InternalError")
	}
}
