package dashboard

import (
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
)

// HRDashboardResponse holds organisation-wide counts.
type HRDashboardResponse struct {
	TotalEmployees         int64  `json:"total_employees"`
	TotalAttendanceRecords int64  `json:"total_attendance_records"`
	TotalLeaveRequests     int64  `json:"total_leave_requests"`
	PendingLeaveRequests   int64  `json:"pending_leave_requests"`
	UpdatedAt              string `json:"updated_at"`
}

// EmployeeDashboardResponse holds the caller's own counts and attendance percentage.
type EmployeeDashboardResponse struct {
	Employee             employee.EmployeeResponse `json:"employee"`
	AttendanceRecords    int64                     `json:"attendance_records"`
	LeaveRequests        int64                     `json:"leave_requests"`
	PendingLeaveRequests int64                     `json:"pending_leave_requests"`
	AttendancePercentage float64                   `json:"attendance_percentage"`
	Summary              attendance.Summary        `json:"summary"`
}
