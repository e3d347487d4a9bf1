package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreatePetRequest struct {
	OwnerUserID string `json:"ownerUserId,omitempty"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	MicrochipID string `json:"microchipId,omitempty"`
}

type UpdatePetRequest struct {
	Name        *string `json:"name,omitempty"`
	Species     *string `json:"species,omitempty"`
	Breed       *string `json:"breed,omitempty"`
	BirthDate   string  `json:"birthDate,omitempty"`
	MicrochipID *string `json:"microchipId,omitempty"`
}

type PetDTO struct {
	PetID       string `json:"petId"`
	OwnerUserID string `json:"ownerUserId"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	MicrochipID string `json:"microchipId,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type PetResponse struct {
	Pet PetDTO `json:"pet"`
}

type ListPetsResponse struct {
	Items []PetDTO `json:"items"`
	Total int64    `json:"total"`
}
