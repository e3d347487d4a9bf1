package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	applicationentities "pawsure/contexts/policy-operations/application-service/domain/entities"
	applicationerrors "pawsure/contexts/policy-operations/application-service/domain/errors"
	applicationhttp "pawsure/contexts/policy-operations/application-service/transport/http"
)

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request, p principal) {
	var req applicationhttp.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.applications.Handler.CreateApplicationHandler(r.Context(), p.UserID, p.Role, req)
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondData(w, http.StatusCreated, resp)
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.applications.Handler.GetApplicationHandler(r.Context(), p.UserID, p.Role, r.PathValue("application_id"))
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request, p principal) {
	var req applicationhttp.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.applications.Handler.UpdateApplicationHandler(r.Context(), p.UserID, p.Role, r.PathValue("application_id"), req)
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request, p principal) {
	s.listApplications(w, r, p, nil)
}

func (s *Server) handleListSubmittedApplications(w http.ResponseWriter, r *http.Request, p principal) {
	s.listApplications(w, r, p, []applicationentities.ApplicationStatus{
		applicationentities.ApplicationStatusSubmitted,
	})
}

// In-progress covers approved applications awaiting activation.
func (s *Server) handleListInProgressApplications(w http.ResponseWriter, r *http.Request, p principal) {
	s.listApplications(w, r, p, []applicationentities.ApplicationStatus{
		applicationentities.ApplicationStatusApproved,
	})
}

func (s *Server) handleListActiveApplications(w http.ResponseWriter, r *http.Request, p principal) {
	s.listApplications(w, r, p, []applicationentities.ApplicationStatus{
		applicationentities.ApplicationStatusActive,
	})
}

func (s *Server) listApplications(
	w http.ResponseWriter,
	r *http.Request,
	p principal,
	statuses []applicationentities.ApplicationStatus,
) {
	page, limit := parsePageQuery(r)
	resp, total, err := s.applications.Handler.ListApplicationsHandler(r.Context(), p.UserID, p.Role, statuses, page, limit)
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondPage(w, http.StatusOK, resp.Items, page, limit, total)
}

func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.applications.Handler.SubmitApplicationHandler(r.Context(), p.UserID, p.Role, r.PathValue("application_id"))
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, resp, "Application submitted; temporary password sent via email.")
}

func (s *Server) handleApproveApplication(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.applications.Handler.ApproveApplicationHandler(r.Context(), p.UserID, p.Role, r.PathValue("application_id"))
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleDeclineApplication(w http.ResponseWriter, r *http.Request, p principal) {
	var req applicationhttp.DeclineApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.applications.Handler.DeclineApplicationHandler(r.Context(), p.UserID, p.Role, r.PathValue("application_id"), req)
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleActivateApplication(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.applications.Handler.ActivateApplicationHandler(r.Context(), p.UserID, p.Role, r.PathValue("application_id"))
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleDeactivateApplication(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.applications.Handler.DeactivateApplicationHandler(r.Context(), p.UserID, p.Role, r.PathValue("application_id"))
	if err != nil {
		writeApplicationError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func writeApplicationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, applicationerrors.ErrForbidden):
		respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, applicationerrors.ErrApplicationNotFound),
		errors.Is(err, applicationerrors.ErrPetNotFound):
		respondError(w, http.StatusNotFound, "NotFound")
	case errors.Is(err, applicationerrors.ErrInvalidApplicationInput),
		errors.Is(err, applicationerrors.ErrDeclineReasonRequired):
		respondError(w, http.StatusBadRequest, "ValidationError")
	case errors.Is(err, applicationerrors.ErrInvalidStatusTransition),
		errors.Is(err, applicationerrors.ErrPetNotOwnedByCustomer),
		errors.Is(err, applicationerrors.ErrCustomerRoleRequired):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, applicationerrors.ErrVersionConflict):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "InternalError")
	}
}
