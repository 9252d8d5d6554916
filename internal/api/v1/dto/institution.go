package dto

// InstitutionResponseDTO is returned in API responses for institutions
type InstitutionResponseDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	LogoURL     string  `json:"logo_url"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}
