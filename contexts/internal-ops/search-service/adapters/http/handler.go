package httpadapter

import (
	"context"
	"log/slog"

	"pawsure/contexts/internal-ops/search-service/application"
	"pawsure/contexts/internal-ops/search-service/ports"
	httptransport "pawsure/contexts/internal-ops/search-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SearchHandler(ctx context.Context, actorID string, actorRole string, query string) (httptransport.SearchResponse, error) {
	results, err := h.Service.Search(ctx, actorID, actorRole, query)
	if err != nil {
		return httptransport.SearchResponse{}, err
	}
	return mapResults(results), nil
}

func mapResults(results ports.SearchResults) httptransport.SearchResponse {
	response := httptransport.SearchResponse{
		Users:        make([]httptransport.UserMatchDTO, 0, len(results.Users)),
		Pets:         make([]httptransport.PetMatchDTO, 0, len(results.Pets)),
		Applications: make([]httptransport.ApplicationMatchDTO, 0, len(results.Applications)),
		Claims:       make([]httptransport.ClaimMatchDTO, 0, len(results.Claims)),
	}
	for _, match := range results.Users {
		response.Users = append(response.Users, httptransport.UserMatchDTO{
			UserID:   match.UserID,
			Email:    match.Email,
			FullName: match.FullName,
			Role:     match.Role,
		})
	}
	for _, match := range results.Pets {
		response.Pets = append(response.Pets, httptransport.PetMatchDTO{
			PetID:       match.PetID,
			OwnerUserID: match.OwnerUserID,
			Name:        match.Name,
			Species:     match.Species,
		})
	}
	for _, match := range results.Applications {
		response.Applications = append(response.Applications, httptransport.ApplicationMatchDTO{
			ApplicationID: match.ApplicationID,
			PolicyNumber:  match.PolicyNumber,
			CustomerID:    match.CustomerID,
			Status:        match.Status,
			Notes:         match.Notes,
		})
	}
	for _, match := range results.Claims {
		response.Claims = append(response.Claims, httptransport.ClaimMatchDTO{
			ClaimID:          match.ClaimID,
			ClaimNumber:      match.ClaimNumber,
			ApplicationID:    match.ApplicationID,
			Status:           match.Status,
			Description:      match.Description,
			VeterinarianName: match.VeterinarianName,
		})
	}
	return response
}
