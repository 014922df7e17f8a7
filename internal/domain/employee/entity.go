package employee

import (
	"strings"
	"time"
)

const (
	DefaultPosition   = "Employee"
	DefaultDepartment = "General"
)

type Employee struct {
	ID         string
	UserID     *string
	FirstName  string
	LastName   string
	Email      string
	Position   string
	Department string
	DateHired  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName returns "first last" with surrounding whitespace removed.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
