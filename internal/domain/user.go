package domain

import "time"

// UserRole represents the permission level of a user
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a registered user
// Authentication is handled upstream; the service receives the caller
// identity via the X-User-ID header and checks roles against this record
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin returns true if the user has administrative permissions
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
