package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateApplicationRequest struct {
	CustomerID    string   `json:"customerId,omitempty"`
	PetID         string   `json:"petId"`
	CoverageLimit float64  `json:"coverageLimit"`
	Premium       float64  `json:"premium"`
	StartDate     string   `json:"startDate,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type UpdateApplicationRequest struct {
	CoverageLimit *float64 `json:"coverageLimit,omitempty"`
	Premium       *float64 `json:"premium,omitempty"`
	StartDate     string   `json:"startDate,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

type DeclineApplicationRequest struct {
	Reason string `json:"reason"`
}

type ApplicationDTO struct {
	ApplicationID   string  `json:"applicationId"`
	PolicyNumber    string  `json:"policyNumber"`
	CustomerID      string  `json:"customerId"`
	PetID           string  `json:"petId"`
	Status          string  `json:"status"`
	CoverageLimit   float64 `json:"coverageLimit"`
	Premium         float64 `json:"premium"`
	StartDate       string  `json:"startDate,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	Version         int     `json:"version"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
	DecidedAt       string  `json:"decidedAt,omitempty"`
	DecidedByUserID string  `json:"decidedByUserId,omitempty"`
	DeclineReason   string  `json:"declineReason,omitempty"`
}

type ApplicationResponse struct {
	Application ApplicationDTO `json:"application"`
}

type ListApplicationsResponse struct {
	Items []ApplicationDTO `json:"items"`
	Total int64            `json:"total"`
}
