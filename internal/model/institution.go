package model

// Institution is a course provider. Seeded/imported, read-only at runtime.
type Institution struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	LogoURL     string  `db:"logo_url" json:"logo_url"`
	Description string  `db:"description" json:"description"`
	Rating      float64 `db:"rating" json:"rating"`
}
