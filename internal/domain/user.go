package domain

import "time"

// User owns projects. Identity and sessions are handled upstream; the
// planning core only needs the row to exist.
type User struct {
	ID           int64     `json:"_id"       db:"id"`
	Name         string    `json:"name"      db:"name"`
	Email        string    `json:"email"     db:"email"`
	Role         string    `json:"role"      db:"role"`
	Provider     string    `json:"provider"  db:"provider"`
	PasswordHash string    `json:"-"         db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
