package postgresql

import (
	"context"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}

// CountAttendanceRecords implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendanceRecords(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM attendance_records WHERE ($1 = '' OR employee_id::text = $1)`

	var count int64
	err := q.QueryRow(ctx, query, employeeID).Scan(&count)
	return count, err
}

// CountLeaveRequests implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountLeaveRequests(ctx context.Context, employeeID string, status string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM leave_requests
		WHERE ($1 = '' OR employee_id::text = $1)
			AND ($2 = '' OR status = $2)
	`

	var count int64
	err := q.QueryRow(ctx, query, employeeID, status).Scan(&count)
	return count, err
}
