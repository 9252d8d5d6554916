package dto

// RegisterRequestDTO is the payload for account registration
type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
}

// LoginRequestDTO is the payload for credential login
type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponseDTO is returned by both register and login
type AuthResponseDTO struct {
	Token   string             `json:"token"`
	Account AccountResponseDTO `json:"account"`
}
