package leave

import (
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName  string
	EmployeeEmail string
}

// IsPending reports whether the request still awaits a decision.
func (l LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

// Dates returns every calendar day from StartDate to EndDate inclusive.
func (l LeaveRequest) Dates() []time.Time {
	return workday.Days(l.StartDate, l.EndDate)
}

// TotalDays is the number of calendar days covered by the request.
func (l LeaveRequest) TotalDays() int {
	return len(l.Dates())
}
