package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"

	// Derived day classifications, never stored.
	StatusHoliday Status = "Holiday"
	StatusWeekend Status = "Weekend"
)

// IsRecordable reports whether s may be stored on an attendance record.
func (s Status) IsRecordable() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// Attendance is the stored status of one employee on one calendar day.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Day is one reconciled calendar day.
type Day struct {
	Date     time.Time
	Status   Status
	RecordID *string
}

// Summary aggregates reconciled days. Percentage is present / (present + absent) * 100.
type Summary struct {
	Present     int     `json:"present"`
	Absent      int     `json:"absent"`
	Leave       int     `json:"leave"`
	Holidays    int     `json:"holidays"`
	Weekends    int     `json:"weekends"`
	WorkingDays int     `json:"working_days"`
	Percentage  float64 `json:"percentage"`
}
