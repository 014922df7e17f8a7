package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("status must be Present, Absent, Leave or Holiday")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
)
