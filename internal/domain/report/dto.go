package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// MaxExportDays bounds the number of day columns in one export.
const MaxExportDays = 366

// HeaderDateLayout formats day columns, e.g. "05 Mar 2024".
const HeaderDateLayout = "02 Jan 2006"

// Cell values besides stored attendance statuses.
const (
	CellHoliday = "Holiday"
	CellWeekend = "-"
	CellAbsent  = "Absent"
	CellBlank   = ""
)

// ExportFilter selects employees and the date window of an attendance export.
type ExportFilter struct {
	StartDate    string
	EndDate      string
	Department   string
	EmployeeName string
	Month        string
	Format       string
}

func (f *ExportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if (f.StartDate == "") != (f.EndDate == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "date_range",
			Message: "start_date and end_date must be provided together",
		})
	}
	if f.Month != "" {
		if _, ok := validator.IsValidMonth(f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
	}
	if f.Format != "" && !validator.IsInSlice(strings.ToLower(f.Format), []string{string(FormatCSV), string(FormatXLSX)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: ErrUnsupportedFormat.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window resolves the export dates. Explicit dates win over month; with neither
// the current month is used. Month refers to the year of today. Call after Validate.
func (f *ExportFilter) Window(today time.Time) (start, end time.Time, err error) {
	switch {
	case f.StartDate != "" && f.EndDate != "":
		start, _ = workday.Parse(f.StartDate)
		end, _ = workday.Parse(f.EndDate)
	case f.Month != "":
		month, _ := validator.IsValidMonth(f.Month)
		start, end = workday.MonthRange(today.Year(), month)
	default:
		start, end = workday.MonthRange(today.Year(), today.Month())
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if end.Sub(start) >= MaxExportDays*24*time.Hour {
		return time.Time{}, time.Time{}, validator.ValidationErrors{{
			Field:   "date_range",
			Message: fmt.Sprintf("date range must not exceed %d days", MaxExportDays),
		}}
	}
	return start, end, nil
}

// ExportFormat returns the requested format, defaulting to CSV.
func (f *ExportFilter) ExportFormat() Format {
	if f.Format == "" {
		return FormatCSV
	}
	return Format(strings.ToLower(f.Format))
}

// ExportTable is the per-employee, per-day attendance grid shared by every export format.
type ExportTable struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Header    []string    `json:"header"`
	Rows      []ExportRow `json:"rows"`
}

type ExportRow struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Cells        []string `json:"cells"`
}

// Records returns header and rows as plain string records.
func (t ExportTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	for _, row := range t.Rows {
		record := make([]string, 0, len(row.Cells)+1)
		record = append(record, row.EmployeeName)
		record = append(record, row.Cells...)
		records = append(records, record)
	}
	return records
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
