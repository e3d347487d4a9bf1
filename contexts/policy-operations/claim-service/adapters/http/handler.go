package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pawsure/contexts/policy-operations/claim-service/application/commands"
	"pawsure/contexts/policy-operations/claim-service/application/queries"
	"pawsure/contexts/policy-operations/claim-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/claim-service/domain/errors"
	httptransport "pawsure/contexts/policy-operations/claim-service/transport/http"
)

type Handler struct {
	File    commands.FileClaimUseCase
	Review  commands.ReviewClaimUseCase
	Queries queries.QueryUseCase
	Logger  *slog.Logger
}

func (h Handler) FileClaimHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	req httptransport.FileClaimRequest,
) (httptransport.ClaimResponse, error) {
	treatmentDate, err := parseOptionalDate(req.TreatmentDate)
	if err != nil {
		return httptransport.ClaimResponse{}, domainerrors.ErrInvalidClaimInput
	}
	claim, err := h.File.Execute(ctx, commands.FileClaimCommand{
		ActorID:          actorID,
		ActorRole:        actorRole,
		ApplicationID:    req.ApplicationID,
		ClaimedAmount:    req.ClaimedAmount,
		Description:      req.Description,
		VeterinarianName: req.VeterinarianName,
		TreatmentDate:    treatmentDate,
	})
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}
	return httptransport.ClaimResponse{Claim: mapClaim(claim)}, nil
}

func (h Handler) GetClaimHandler(ctx context.Context, actorID string, actorRole string, claimID string) (httptransport.ClaimResponse, error) {
	claim, err := h.Queries.GetClaim(ctx, actorID, actorRole, claimID)
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}
	return httptransport.ClaimResponse{Claim: mapClaim(claim)}, nil
}

func (h Handler) ListClaimsHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	applicationID string,
	statuses []entities.ClaimStatus,
	page int,
	limit int,
) (httptransport.ListClaimsResponse, int64, error) {
	items, total, err := h.Queries.ListClaims(ctx, queries.ListClaimsQuery{
		ActorID:       actorID,
		ActorRole:     actorRole,
		ApplicationID: applicationID,
		Statuses:      statuses,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return httptransport.ListClaimsResponse{}, 0, err
	}
	result := make([]httptransport.ClaimDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapClaim(item))
	}
	return httptransport.ListClaimsResponse{Items: result, Total: total}, total, nil
}

func (h Handler) ApproveClaimHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	claimID string,
	req httptransport.ReviewClaimRequest,
) (httptransport.ClaimResponse, error) {
	claim, err := h.Review.Approve(ctx, commands.ReviewClaimCommand{
		ClaimID:        claimID,
		ActorID:        actorID,
		ActorRole:      actorRole,
		ApprovedAmount: req.ApprovedAmount,
		AdjusterNotes:  req.AdjusterNotes,
	})
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}
	return httptransport.ClaimResponse{Claim: mapClaim(claim)}, nil
}

func (h Handler) RejectClaimHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	claimID string,
	req httptransport.ReviewClaimRequest,
) (httptransport.ClaimResponse, error) {
	claim, err := h.Review.Reject(ctx, commands.ReviewClaimCommand{
		ClaimID:       claimID,
		ActorID:       actorID,
		ActorRole:     actorRole,
		AdjusterNotes: req.AdjusterNotes,
	})
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}
	return httptransport.ClaimResponse{Claim: mapClaim(claim)}, nil
}

func (h Handler) StartProcessingClaimHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	claimID string,
	req httptransport.ReviewClaimRequest,
) (httptransport.ClaimResponse, error) {
	claim, err := h.Review.StartProcessing(ctx, commands.ReviewClaimCommand{
		ClaimID:       claimID,
		ActorID:       actorID,
		ActorRole:     actorRole,
		AdjusterNotes: req.AdjusterNotes,
	})
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}
	return httptransport.ClaimResponse{Claim: mapClaim(claim)}, nil
}

func (h Handler) ReturnClaimToPendingHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	claimID string,
	req httptransport.ReviewClaimRequest,
) (httptransport.ClaimResponse, error) {
	claim, err := h.Review.ReturnToPending(ctx, commands.ReviewClaimCommand{
		ClaimID:       claimID,
		ActorID:       actorID,
		ActorRole:     actorRole,
		AdjusterNotes: req.AdjusterNotes,
	})
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}
	return httptransport.ClaimResponse{Claim: mapClaim(claim)}, nil
}

func mapClaim(claim entities.Claim) httptransport.ClaimDTO {
	dto := httptransport.ClaimDTO{
		ClaimID:          claim.ClaimID,
		ClaimNumber:      claim.ClaimNumber,
		ApplicationID:    claim.ApplicationID,
		Status:           string(claim.Status),
		ClaimedAmount:    claim.ClaimedAmount,
		ApprovedAmount:   claim.ApprovedAmount,
		Description:      claim.Description,
		VeterinarianName: claim.VeterinarianName,
		AdjusterNotes:    claim.AdjusterNotes,
		Version:          claim.Version,
		CreatedAt:        claim.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        claim.UpdatedAt.Format(time.RFC3339),
		DecidedByUserID:  claim.DecidedByUserID,
	}
	if claim.TreatmentDate != nil {
		dto.TreatmentDate = claim.TreatmentDate.Format("2006-01-02")
	}
	if claim.DecidedAt != nil {
		dto.DecidedAt = claim.DecidedAt.Format(time.RFC3339)
	}
	return dto
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	parsed = parsed.UTC()
	return &parsed, nil
}
