package entity

import "time"

// Valid staff roles.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleStylist      = "stylist"
)

// User is a staff member who can sign in and issue bills.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string // admin, receptionist, stylist
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
