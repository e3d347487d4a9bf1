package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	paymenterrors "pawsure/contexts/policy-operations/payment-service/domain/errors"
	paymenthttp "pawsure/contexts/policy-operations/payment-service/transport/http"
)

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request, p principal) {
	var req paymenthttp.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	resp, err := s.payments.Handler.RecordPaymentHandler(r.Context(), p.UserID, p.Role, req)
	if err != nil {
		writePaymentError(w, err)
		return
	}
	respondData(w, http.StatusCreated, resp)
}

func (s *Server) handleGetPayment(w http.ResponseWriter, r *http.Request, p principal) {
	resp, err := s.payments.Handler.GetPaymentHandler(r.Context(), p.UserID, p.Role, r.PathValue("payment_id"))
	if err != nil {
		writePaymentError(w, err)
		return
	}
	respondData(w, http.StatusOK, resp)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request, p principal) {
	page, limit := parsePageQuery(r)
	applicationID := r.URL.Query().Get("applicationId")
	resp, total, err := s.payments.Handler.ListPaymentsHandler(r.Context(), p.UserID, p.Role, applicationID, page, limit)
	if err != nil {
		writePaymentError(w, err)
		return
	}
	respondPage(w, http.StatusOK, resp.Items, page, limit, total)
}

func writePaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymenterrors.ErrForbidden):
		respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, paymenterrors.ErrPaymentNotFound),
		errors.Is(err, paymenterrors.ErrApplicationNotFound):
		respondError(w, http.StatusNotFound, "NotFound")
	case errors.Is(err, paymenterrors.ErrInvalidPaymentInput):
		respondError(w, http.StatusBadRequest, "ValidationError")
	default:
		respondError(w, http.StatusInternalServerError, "InternalError")
	}
}
