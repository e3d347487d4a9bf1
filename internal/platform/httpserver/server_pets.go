package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	peterrors "pawsure/contexts/policy-operations/pet-service/domain/errors"
	pethttp "pawsure/contexts/policy-operations/pet-service/transport/http"
)

func (s *Server) handleCreatePet(w http.ResponseWriter, r *http.Request, p principal) {
	var req pethttp.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.pets.Handler.CreatePetHandler(r.Context(), p.UserID, p.Role, req)
	if err != nil {
		writePetError(w, err)
		return
	}
	respondData(w, http.StatusCreated, resp)
}

func (s *Server) handleGetPet(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.pets.Handler.GetPetHandler(r.Context(), p.UserID, p.Role, r.PathValue("pet_id"))
	if err != nil {
		writePetError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePet(w http.ResponseWriter, r *http.Request, p principal) {
	var req pethttp.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.pets.Handler.UpdatePetHandler(r.Context(), p.UserID, p.Role, r.PathValue("pet_id"), req)
	if err != nil {
		writePetError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePet(w http.ResponseWriter, r *http.Request, p principal) {
	if err := s.pets.Handler.DeletePetHandler(r.Context(), p.UserID, p.Role, r.PathValue("pet_id")); err != nil {
		writePetError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, nil, "Pet deleted.")
}

func (s *Server) handleListPets(w http.ResponseWriter, r *http.Request, p principal) {
	page, limit := parsePageQuery(r)
	resp, total, err := s.pets.Handler.ListPetsHandler(r.Context(), p.UserID, p.Role, page, limit)
	if err != nil {
		writePetError(w, err)
		return
	}
	respondPage(w, http.StatusOK, resp.Items, page, limit, total)
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, peterrors.ErrForbidden):
		respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, peterrors.ErrPetNotFound):
		respondError(w, http.StatusNotFound, "NotFound")
	case errors.Is(err, peterrors.ErrInvalidPetInput):
		respondError(w, http.StatusBadRequest, "ValidationError")
	case errors.Is(err, peterrors.ErrPetHasApplications):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "InternalError")
	}
}
