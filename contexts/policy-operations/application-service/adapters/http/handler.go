package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pawsure/contexts/policy-operations/application-service/application/commands"
	"pawsure/contexts/policy-operations/application-service/application/queries"
	"pawsure/contexts/policy-operations/application-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/application-service/domain/errors"
	httptransport "pawsure/contexts/policy-operations/application-service/transport/http"
)

type Handler struct {
	Create     commands.CreateApplicationUseCase
	Update     commands.UpdateApplicationUseCase
	Transition commands.TransitionApplicationUseCase
	Submit     commands.SubmitApplicationUseCase
	Queries    queries.QueryUseCase
	Logger     *slog.Logger
}

func (h Handler) CreateApplicationHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	req httptransport.CreateApplicationRequest,
) (httptransport.ApplicationResponse, error) {
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return httptransport.ApplicationResponse{}, domainerrors.ErrInvalidApplicationInput
	}
	app, err := h.Create.Execute(ctx, commands.CreateApplicationCommand{
		ActorID:       actorID,
		ActorRole:     actorRole,
		CustomerID:    req.CustomerID,
		PetID:         req.PetID,
		CoverageLimit: req.CoverageLimit,
		Premium:       req.Premium,
		StartDate:     startDate,
		Notes:         req.Notes,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(app)}, nil
}

func (h Handler) GetApplicationHandler(ctx context.Context, actorID string, actorRole string, applicationID string) (httptransport.ApplicationResponse, error) {
	app, err := h.Queries.GetApplication(ctx, actorID, actorRole, applicationID)
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(app)}, nil
}

func (h Handler) UpdateApplicationHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	applicationID string,
	req httptransport.UpdateApplicationRequest,
) (httptransport.ApplicationResponse, error) {
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return httptransport.ApplicationResponse{}, domainerrors.ErrInvalidApplicationInput
	}
	app, err := h.Update.Execute(ctx, commands.UpdateApplicationCommand{
		ApplicationID: applicationID,
		ActorID:       actorID,
		ActorRole:     actorRole,
		CoverageLimit: req.CoverageLimit,
		Premium:       req.Premium,
		StartDate:     startDate,
		Notes:         req.Notes,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(app)}, nil
}

func (h Handler) ListApplicationsHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	statuses []entities.ApplicationStatus,
	page int,
	limit int,
) (httptransport.ListApplicationsResponse, int64, error) {
	items, total, err := h.Queries.ListApplications(ctx, queries.ListApplicationsQuery{
		ActorID:   actorID,
		ActorRole: actorRole,
		Statuses:  statuses,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return httptransport.ListApplicationsResponse{}, 0, err
	}
	result := make([]httptransport.ApplicationDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapApplication(item))
	}
	return httptransport.ListApplicationsResponse{Items: result, Total: total}, total, nil
}

func (h Handler) SubmitApplicationHandler(ctx context.Context, actorID string, actorRole string, applicationID string) (httptransport.ApplicationResponse, error) {
	app, err := h.Submit.Execute(ctx, commands.SubmitApplicationCommand{
		ApplicationID: applicationID,
		ActorID:       actorID,
		ActorRole:     actorRole,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(app)}, nil
}

func (h Handler) ApproveApplicationHandler(ctx context.Context, actorID string, actorRole string, applicationID string) (httptransport.ApplicationResponse, error) {
	app, err := h.Transition.Approve(ctx, commands.TransitionApplicationCommand{
		ApplicationID: applicationID,
		ActorID:       actorID,
		ActorRole:     actorRole,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(app)}, nil
}

func (h Handler) DeclineApplicationHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	applicationID string,
	req httptransport.DeclineApplicationRequest,
) (httptransport.ApplicationResponse, error) {
	app, err := h.Transition.Decline(ctx, commands.TransitionApplicationCommand{
		ApplicationID: applicationID,
		ActorID:       actorID,
		ActorRole:     actorRole,
		Reason:        req.Reason,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(app)}, nil
}

func (h Handler) ActivateApplicationHandler(ctx context.Context, actorID string, actorRole string, applicationID string) (httptransport.ApplicationResponse, error) {
	app, err := h.Transition.Activate(ctx, commands.TransitionApplicationCommand{
		ApplicationID: applicationID,
		ActorID:       actorID,
		ActorRole:     actorRole,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(app)}, nil
}

func (h Handler) DeactivateApplicationHandler(ctx context.Context, actorID string, actorRole string, applicationID string) (httptransport.ApplicationResponse, error) {
	app, err := h.Transition.Deactivate(ctx, commands.TransitionApplicationCommand{
		ApplicationID: applicationID,
		ActorID:       actorID,
		ActorRole:     actorRole,
	})
	if err != nil {
		return httptransport.ApplicationResponse{}, err
	}
	return httptransport.ApplicationResponse{Application: mapApplication(app)}, nil
}

func mapApplication(app entities.Application) httptransport.ApplicationDTO {
	dto := httptransport.ApplicationDTO{
		ApplicationID:   app.ApplicationID,
		PolicyNumber:    app.PolicyNumber,
		CustomerID:      app.CustomerID,
		PetID:           app.PetID,
		Status:          string(app.Status),
		CoverageLimit:   app.CoverageLimit,
		Premium:         app.Premium,
		Notes:           app.Notes,
		Version:         app.Version,
		CreatedAt:       app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       app.UpdatedAt.Format(time.RFC3339),
		DecidedByUserID: app.DecidedByUserID,
		DeclineReason:   app.DeclineReason,
	}
	if app.StartDate != nil {
		dto.StartDate = app.StartDate.Format("2006-01-02")
	}
	if app.DecidedAt != nil {
		dto.DecidedAt = app.DecidedAt.Format(time.RFC3339)
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
