package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email             string `json:"email"`
	FullName          string `json:"fullName"`
	Password          string `json:"password"`
	Role              string `json:"role"`
	RegistrationToken string `json:"registrationToken,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	City              string `json:"city,omitempty"`
	PostalCode        string `json:"postalCode,omitempty"`
}

type RegisterResponse struct {
	User UserDTO `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User      UserDTO `json:"user"`
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expiresAt"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type IssueRegistrationTokenRequest struct {
	Email string `json:"email"`
}

type IssueRegistrationTokenResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expiresAt"`
}

type UpdateUserRequest struct {
	FullName   string `json:"fullName,omitempty"`
	Role       string `json:"role,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type UserDTO struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Role            string `json:"role"`
	EmailVerifiedAt string `json:"emailVerifiedAt,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

type ClientDetailsDTO struct {
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type UserProfileResponse struct {
	User    UserDTO           `json:"user"`
	Details *ClientDetailsDTO `json:"details,omitempty"`
}

type ListUsersResponse struct {
	Items []UserDTO `json:"items"`
	Total int64     `json:"total"`
}
