package attendance

import (
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (a Attendance) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
	}
}

type DayResponse struct {
	Date     string  `json:"date"`
	Weekday  string  `json:"weekday"`
	Status   string  `json:"status"`
	RecordID *string `json:"record_id,omitempty"`
}

func (d Day) ToResponse() DayResponse {
	return DayResponse{
		Date:     d.Date.Format("2006-01-02"),
		Weekday:  d.Date.Weekday().String(),
		Status:   string(d.Status),
		RecordID: d.RecordID,
	}
}

type EmployeeSummaryResponse struct {
	Employee employee.EmployeeResponse `json:"employee"`
	Summary  Summary                   `json:"summary"`
}

type EmployeeAttendanceRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (r *EmployeeAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeAttendanceResponse struct {
	Employee  employee.EmployeeResponse `json:"employee"`
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
	Days      []DayResponse             `json:"days"`
	Summary   Summary                   `json:"summary"`
}

// DayRecordResponse describes a single (employee, date) cell for editing.
type DayRecordResponse struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	RecordID    *string `json:"record_id,omitempty"`
	Status      string  `json:"status"`
	IsHoliday   bool    `json:"is_holiday"`
	HolidayName *string `json:"holiday_name,omitempty"`
}

type UpdateDayRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"-"`
	Status     string `json:"status"`
}

func (r *UpdateDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	validStatuses := []string{string(StatusPresent), string(StatusAbsent), string(StatusLeave), string(StatusHoliday)}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MyAttendanceResponse struct {
	Employee employee.EmployeeResponse `json:"employee"`
	Records  []AttendanceResponse      `json:"records"`
	Summary  Summary                   `json:"summary"`
}
