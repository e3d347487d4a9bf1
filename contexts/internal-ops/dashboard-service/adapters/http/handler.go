package httpadapter

import (
	"context"
	"log/slog"

	"pawsure/contexts/internal-ops/dashboard-service/application"
	httptransport "pawsure/contexts/internal-ops/dashboard-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetStatsHandler(ctx context.Context, actorID string, actorRole string) (httptransport.StatsResponse, error) {
	stats, err := h.Service.GetStats(ctx, actorID, actorRole)
	if err != nil {
		return httptransport.StatsResponse{}, err
	}
	applications := stats.ApplicationsByStatus
	if applications == nil {
		applications = map[string]int64{}
	}
	claims := stats.ClaimsByStatus
	if claims == nil {
		claims = map[string]int64{}
	}
	return httptransport.StatsResponse{
		Applications: applications,
		Claims:       claims,
		Pets:         stats.PetCount,
		Payments: httptransport.PaymentStatsDTO{
			Count:       stats.PaymentCount,
			TotalAmount: stats.PaymentTotalAmount,
		},
	}, nil
}
