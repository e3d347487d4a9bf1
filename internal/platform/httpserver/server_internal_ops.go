package httpserver

import (
	"errors"
	"net/http"

	dashboarderrors "pawsure/contexts/internal-ops/dashboard-service/domain/errors"
	searcherrors "pawsure/contexts/internal-ops/search-service/domain/errors"
)

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.dashboard.Handler.GetStatsHandler(r.Context(), p.UserID, p.Role)
	if err != nil {
		if errors.Is(err, dashboarderrors.ErrUnauthorized) {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		respondError(w, http.StatusInternalServerError, "InternalError")
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.search.Handler.SearchHandler(r.Context(), p.UserID, p.Role, r.URL.Query().Get("q"))
	if err != nil {
		switch {
		case errors.Is(err, searcherrors.ErrQueryRequired):
			respondError(w, http.StatusBadRequest, "ValidationError")
		case errors.Is(err, searcherrors.ErrUnauthorized):
			respondError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			respondError(w, http.StatusInternalServerError, "InternalError")
		}
		return
	}
	respondData(w, http.StatusOK, resp)
}
