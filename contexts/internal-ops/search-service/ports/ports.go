package ports

import "context"

// SearchScope restricts matches to records the customer transitively
// owns. Empty CustomerID means unrestricted. IncludeUsers is only set
// for admins.
type SearchScope struct {
	CustomerID   string
	IncludeUsers bool
}

type UserMatch struct {
	UserID   string
	Email    string
	FullName string
	Role     string
}

type PetMatch struct {
	PetID       string
	OwnerUserID string
	Name        string
	Species     string
}

type ApplicationMatch struct {
	ApplicationID string
	PolicyNumber  string
	CustomerID    string
	Status        string
	Notes         string
}

type ClaimMatch struct {
	ClaimID          string
	ClaimNumber      string
	ApplicationID    string
	Status           string
	Description      string
	VeterinarianName string
}

type SearchResults struct {
	Users        []UserMatch
	Pets         []PetMatch
	Applications []ApplicationMatch
	Claims       []ClaimMatch
}

type Repository interface {
	Search(ctx context.Context, query string, scope SearchScope, limitPerType int) (SearchResults, error)
}
