package report

import (
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
)

// TableInput is everything BuildTable needs; it does no I/O.
type TableInput struct {
	Employees []employee.Employee
	Records   []attendance.Attendance
	Holidays  workday.HolidaySet
	Start     time.Time
	End       time.Time
	Today     time.Time
}

// BuildTable lays out one row per employee and one column per day in
// [Start, End]. Rows keep the order of Employees.
func BuildTable(in TableInput) report.ExportTable {
	start, end, today := workday.Date(in.Start), workday.Date(in.End), workday.Date(in.Today)
	days := workday.Days(start, end)

	header := make([]string, 0, len(days)+1)
	header = append(header, "Employee Name")
	for _, d := range days {
		header = append(header, d.Format(report.HeaderDateLayout))
	}

	statuses := make(map[string]attendance.Status, len(in.Records))
	for _, r := range in.Records {
		statuses[r.EmployeeID+"|"+workday.Key(r.Date)] = r.Status
	}

	rows := make([]report.ExportRow, 0, len(in.Employees))
	for _, emp := range in.Employees {
		hired := workday.Date(emp.DateHired)
		cells := make([]string, 0, len(days))
		for _, d := range days {
			status, recorded := statuses[emp.ID+"|"+workday.Key(d)]
			cells = append(cells, cell(d, hired, today, in.Holidays, status, recorded))
		}
		rows = append(rows, report.ExportRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			Cells:        cells,
		})
	}

	return report.ExportTable{
		StartDate: workday.Key(start),
		EndDate:   workday.Key(end),
		Header:    header,
		Rows:      rows,
	}
}

func cell(day, hired, today time.Time, holidays workday.HolidaySet, status attendance.Status, recorded bool) string {
	switch {
	case day.Before(hired):
		return report.CellBlank
	case day.After(today):
		if holidays.Contains(day) {
			return report.CellHoliday
		}
		return report.CellBlank
	case holidays.Contains(day):
		return report.CellHoliday
	case workday.IsWeekend(day):
		return report.CellWeekend
	case recorded:
		return string(status)
	default:
		return report.CellAbsent
	}
}
