package model

import "time"

// Account represents a registered user of the marketplace.
type Account struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	AvatarURL    string    `db:"avatar_url" json:"avatar_url"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Roles an account may carry. Only students self-register today.
const (
	RoleStudent = "student"
)
