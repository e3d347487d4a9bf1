package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pawsure/contexts/policy-operations/payment-service/application"
	"pawsure/contexts/policy-operations/payment-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/payment-service/domain/errors"
	httptransport "pawsure/contexts/policy-operations/payment-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RecordPaymentHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	req httptransport.RecordPaymentRequest,
) (httptransport.PaymentResponse, error) {
	paidAt, err := parseOptionalTimestamp(req.PaidAt)
	if err != nil {
		return httptransport.PaymentResponse{}, domainerrors.ErrInvalidPaymentInput
	}
	payment, err := h.Service.RecordPayment(ctx, actorID, actorRole, application.RecordPaymentInput{
		ApplicationID: req.ApplicationID,
		Amount:        req.Amount,
		Method:        req.Method,
		Reference:     req.Reference,
		PaidAt:        paidAt,
	})
	if err != nil {
		return httptransport.PaymentResponse{}, err
	}
	return httptransport.PaymentResponse{Payment: mapPayment(payment)}, nil
}

func (h Handler) GetPaymentHandler(ctx context.Context, actorID string, actorRole string, paymentID string) (httptransport.PaymentResponse, error) {
	payment, err := h.Service.GetPayment(ctx, actorID, actorRole, paymentID)
	if err != nil {
		return httptransport.PaymentResponse{}, err
	}
	return httptransport.PaymentResponse{Payment: mapPayment(payment)}, nil
}

func (h Handler) ListPaymentsHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	applicationID string,
	page int,
	limit int,
) (httptransport.ListPaymentsResponse, int64, error) {
	items, total, err := h.Service.ListPayments(ctx, actorID, actorRole, applicationID, page, limit)
	if err != nil {
		return httptransport.ListPaymentsResponse{}, 0, err
	}
	result := make([]httptransport.PaymentDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapPayment(item))
	}
	return httptransport.ListPaymentsResponse{Items: result, Total: total}, total, nil
}

func mapPayment(payment entities.Payment) httptransport.PaymentDTO {
	return httptransport.PaymentDTO{
		PaymentID:     payment.PaymentID,
		ApplicationID: payment.ApplicationID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Reference:     payment.Reference,
		PaidAt:        payment.PaidAt.Format(time.RFC3339),
		CreatedAt:     payment.CreatedAt.Format(time.RFC3339),
	}
}

func parseOptionalTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	parsed = parsed.UTC()
	return &parsed, nil
}
