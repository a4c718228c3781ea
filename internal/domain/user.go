package domain

import "time"

// Role is the closed set of user roles. Role checks go through the HTTP
// role gate, never ad-hoc string comparisons in handlers.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           int64
	Email        string // unique, the login key
	Name         string
	PasswordHash string // argon2id PHC encoded, never leaves the store layer's consumers
	Role         Role
	MFASecret    *string // base32 TOTP secret (nullable)
	MFAEnabled   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
