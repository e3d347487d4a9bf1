package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	claimentities "pawsure/contexts/policy-operations/claim-service/domain/entities"
	claimerrors "pawsure/contexts/policy-operations/claim-service/domain/errors"
	claimhttp "pawsure/contexts/policy-operations/claim-service/transport/http"
)

func (s *Server) handleFileClaim(w http.ResponseWriter, r *http.Request, p principal) {
	var req claimhttp.FileClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.claims.Handler.FileClaimHandler(r.Context(), p.UserID, p.Role, req)
	if err != nil {
		writeClaimError(w, err)
		return
	}
	respondData(w, http.StatusCreated, resp)
}

func (s *Server) handleGetClaim(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.claims.Handler.GetClaimHandler(r.Context(), p.UserID, p.Role, r.PathValue("claim_id"))
	if err != nil {
		writeClaimError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleListClaims(w http.ResponseWriter, r *http.Request, p principal) {
	s.listClaims(w, r, p, nil)
}

// The queue is the adjuster work list: everything not yet decided.
func (s *Server) handleClaimQueue(w http.ResponseWriter, r *http.Request, p principal) {
	s.listClaims(w, r, p, []claimentities.ClaimStatus{
		claimentities.ClaimStatusPending,
		claimentities.ClaimStatusProcessing,
	})
}

func (s *Server) handleClaimHistory(w http.ResponseWriter, r *http.Request, p principal) {
	s.listClaims(w, r, p, []claimentities.ClaimStatus{
		claimentities.ClaimStatusApproved,
		claimentities.ClaimStatusRejected,
	})
}

func (s *Server) listClaims(
	w http.ResponseWriter,
	r *http.Request,
	p principal,
	statuses []claimentities.ClaimStatus,
) {
	page, limit := parsePageQuery(r)
	applicationID := r.URL.Query().Get("applicationId")
	resp, total, err := s.claims.Handler.ListClaimsHandler(r.Context(), p.UserID, p.Role, applicationID, statuses, page, limit)
	if err != nil {
		writeClaimError(w, err)
		return
	}
	respondPage(w, http.StatusOK, resp.Items, page, limit, total)
}

func (s *Server) handleApproveClaim(w http.ResponseWriter, r *http.Request, p principal) {
	var req claimhttp.ReviewClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.claims.Handler.ApproveClaimHandler(r.Context(), p.UserID, p.Role, r.PathValue("claim_id"), req)
	if err != nil {
		writeClaimError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleRejectClaim(w http.ResponseWriter, r *http.Request, p principal) {
	var req claimhttp.ReviewClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.claims.Handler.RejectClaimHandler(r.Context(), p.UserID, p.Role, r.PathValue("claim_id"), req)
	if err != nil {
		writeClaimError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleProcessClaim(w http.ResponseWriter, r *http.Request, p principal) {
	var req claimhttp.ReviewClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.claims.Handler.StartProcessingClaimHandler(r.Context(), p.UserID, p.Role, r.PathValue("claim_id"), req)
	if err != nil {
		writeClaimError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleReturnClaimToPending(w http.ResponseWriter, r *http.Request, p principal) {
	var req claimhttp.ReviewClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.claims.Handler.ReturnClaimToPendingHandler(r.Context(), p.UserID, p.Role, r.PathValue("claim_id"), req)
	if err != nil {
		writeClaimError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func writeClaimError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, claimerrors.ErrForbidden):
		respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, claimerrors.ErrClaimNotFound),
		errors.Is(err, claimerrors.ErrApplicationNotFound):
		respondError(w, http.StatusNotFound, "NotFound")
	case errors.Is(err, claimerrors.ErrInvalidClaimInput),
		errors.Is(err, claimerrors.ErrApprovedAmountRequired):
		respondError(w, http.StatusBadRequest, "ValidationError")
	case errors.Is(err, claimerrors.ErrInvalidStatusTransition),
		errors.Is(err, claimerrors.ErrPolicyNotActive),
		errors.Is(err, claimerrors.ErrApprovedAmountTooHigh):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, claimerrors.ErrVersionConflict):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "InternalError")
	}
}
