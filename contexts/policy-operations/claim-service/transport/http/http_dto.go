package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FileClaimRequest struct {
	ApplicationID    string  `json:"applicationId"`
	ClaimedAmount    float64 `json:"claimedAmount"`
	Description      string  `json:"description"`
	VeterinarianName string  `json:"veterinarianName,omitempty"`
	TreatmentDate    string  `json:"treatmentDate,omitempty"`
}

type ReviewClaimRequest struct {
	ApprovedAmount *float64 `json:"approvedAmount,omitempty"`
	AdjusterNotes  string   `json:"adjusterNotes,omitempty"`
}

type ClaimDTO struct {
	ClaimID          string   `json:"claimId"`
	ClaimNumber      string   `json:"claimNumber"`
	ApplicationID    string   `json:"applicationId"`
	Status           string   `json:"status"`
	ClaimedAmount    float64  `json:"claimedAmount"`
	ApprovedAmount   *float64 `json:"approvedAmount,omitempty"`
	Description      string   `json:"description"`
	VeterinarianName string   `json:"veterinarianName,omitempty"`
	TreatmentDate    string   `json:"treatmentDate,omitempty"`
	AdjusterNotes    string   `json:"adjusterNotes,omitempty"`
	Version          int      `json:"version"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
	DecidedAt        string   `json:"decidedAt,omitempty"`
	DecidedByUserID  string   `json:"decidedByUserId,omitempty"`
}

type ClaimResponse struct {
	Claim ClaimDTO `json:"claim"`
}

type ListClaimsResponse struct {
	Items []ClaimDTO `json:"items"`
	Total int64      `json:"total"`
}
