package user

import "time"

type Role string

const (
	RoleHR       Role = "hr"       // HR staff - manages employees, attendance, leave
	RoleEmployee Role = "employee" // Regular employee - self service only
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleHR || r == RoleEmployee
}

type User struct {
	ID              string
	Username        string
	Email           string
	FirstName       string
	LastName        string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsHR checks if user belongs to HR
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID     string
	EmployeeID string
	Role       Role
}

// Can reports whether the principal holds permission.
func (p Principal) Can(permission Permission) bool {
	return HasPermission(p.Role, permission)
}
