package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Dates are calendar days; time-of-day is ignored.
type AttendanceRepository interface {
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the record for (employeeID, date) or pgx.ErrNoRows.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// GetOrCreate returns the record for (employeeID, date), inserting one with status when absent.
	GetOrCreate(ctx context.Context, employeeID string, date time.Time, status Status) (Attendance, error)

	// Upsert sets the status for (employeeID, date), creating the record if needed.
	Upsert(ctx context.Context, employeeID string, date time.Time, status Status) (Attendance, error)

	// UpsertMany sets status on every date and returns the number of rows written.
	UpsertMany(ctx context.Context, employeeID string, dates []time.Time, status Status) (int, error)

	// ListByEmployee returns records between start and end inclusive, oldest first.
	ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// ListByEmployees returns records of all given employees between start and end inclusive.
	ListByEmployees(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Attendance, error)

	// ListRecentByEmployee returns every record of the employee, newest first.
	ListRecentByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	DeleteByID(ctx context.Context, id string) error
	DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error
	CountByEmployee(ctx context.Context, employeeID string) (int64, error)
}
