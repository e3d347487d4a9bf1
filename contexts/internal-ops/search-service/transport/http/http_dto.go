package http

type UserMatchDTO struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type PetMatchDTO struct {
	PetID       string `json:"petId"`
	OwnerUserID string `json:"ownerUserId"`
	Name        string `json:"name"`
	Species     string `json:"species"`
}

type ApplicationMatchDTO struct {
	ApplicationID string `json:"applicationId"`
	PolicyNumber  string `json:"policyNumber"`
	CustomerID    string `json:"customerId"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

type ClaimMatchDTO struct {
	ClaimID          string `json:"claimId"`
	ClaimNumber      string `json:"claimNumber"`
	ApplicationID    string `json:"applicationId"`
	Status           string `json:"status"`
	Description      string `json:"description,omitempty"`
	VeterinarianName string `json:"veterinarianName,omitempty"`
}

type SearchResponse struct {
	Users        []UserMatchDTO        `json:"users"`
	Pets         []PetMatchDTO         `json:"pets"`
	Applications []ApplicationMatchDTO `json:"applications"`
	Claims       []ClaimMatchDTO       `json:"claims"`
}
