package dashboard

import "context"

// DashboardRepository counts rows for dashboards. An empty employeeID or
// status counts across all employees or statuses.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountAttendanceRecords(ctx context.Context, employeeID string) (int64, error)
	CountLeaveRequests(ctx context.Context, employeeID string, status string) (int64, error)
}
