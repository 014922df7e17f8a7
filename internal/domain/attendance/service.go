package attendance

import (
	"context"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
)

type AttendanceService interface {
	// ListSummaries returns every employee with their attendance percentage.
	ListSummaries(ctx context.Context, filter employee.EmployeeFilter) ([]EmployeeSummaryResponse, error)

	// GetEmployeeAttendance reconciles one employee's days over the requested window.
	GetEmployeeAttendance(ctx context.Context, req EmployeeAttendanceRequest) (EmployeeAttendanceResponse, error)

	// GetDay returns the record for an employee and date, creating it as Absent if missing.
	GetDay(ctx context.Context, employeeID, date string) (DayRecordResponse, error)

	// UpdateDay sets the status of a day. Holiday registers a manual holiday and removes the record.
	UpdateDay(ctx context.Context, req UpdateDayRequest) (DayRecordResponse, error)

	DeleteRecord(ctx context.Context, id string) error

	GetMyAttendance(ctx context.Context, principal user.Principal) (MyAttendanceResponse, error)

	Summarizer
}

// Summarizer computes an employee's summary from hire date through today.
type Summarizer interface {
	SummarizeEmployee(ctx context.Context, emp employee.Employee) (Summary, error)
}
