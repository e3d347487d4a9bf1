package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RecordPaymentRequest struct {
	ApplicationID string  `json:"applicationId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Reference     string  `json:"reference,omitempty"`
	PaidAt        string  `json:"paidAt,omitempty"`
}

type PaymentDTO struct {
	PaymentID     string  `json:"paymentId"`
	ApplicationID string  `json:"applicationId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Reference     string  `json:"reference,omitempty"`
	PaidAt        string  `json:"paidAt"`
	CreatedAt     string  `json:"createdAt"`
}

type PaymentResponse struct {
	Payment PaymentDTO `json:"payment"`
}

type ListPaymentsResponse struct {
	Items []PaymentDTO `json:"items"`
	Total int64        `json:"total"`
}
