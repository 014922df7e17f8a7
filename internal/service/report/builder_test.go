package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestBuildTable_MonthWithoutRecords(t *testing.T) {
	holidays := workday.HolidaySet{}
	holidays.Add(d(2024, 1, 15), "Founders Day")

	table := BuildTable(TableInput{
		Employees: []employee.Employee{{ID: "e1", FirstName: "Ana", LastName: "Lim", DateHired: d(2023, 6, 1)}},
		Holidays:  holidays,
		Start:     d(2024, 1, 1),
		End:       d(2024, 1, 31),
		Today:     d(2024, 2, 10),
	})

	require.Len(t, table.Header, 32)
	assert.Equal(t, "Employee Name", table.Header[0])
	assert.Equal(t, "01 Jan 2024", table.Header[1])
	assert.Equal(t, "31 Jan 2024", table.Header[31])

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "Ana Lim", row.EmployeeName)
	require.Len(t, row.Cells, 31)

	for i, c := range row.Cells {
		day := d(2024, 1, i+1)
		switch {
		case day.Day() == 15:
			assert.Equal(t, report.CellHoliday, c, workday.Key(day))
		case workday.IsWeekend(day):
			assert.Equal(t, report.CellWeekend, c, workday.Key(day))
		default:
			assert.Equal(t, report.CellAbsent, c, workday.Key(day))
		}
	}
}

func TestBuildTable_CellPriority(t *testing.T) {
	holidays := workday.HolidaySet{}
	holidays.Add(d(2024, 3, 9), "Weekend Holiday") // Saturday
	holidays.Add(d(2024, 3, 15), "Future Holiday") // Friday, after today

	table := BuildTable(TableInput{
		Employees: []employee.Employee{{ID: "e1", FirstName: "Rudi", DateHired: d(2024, 3, 5)}},
		Records: []attendance.Attendance{
			{EmployeeID: "e1", Date: d(2024, 3, 4), Status: attendance.StatusPresent}, // before hire
			{EmployeeID: "e1", Date: d(2024, 3, 5), Status: attendance.StatusPresent},
			{EmployeeID: "e1", Date: d(2024, 3, 6), Status: attendance.StatusLeave},
			{EmployeeID: "e1", Date: d(2024, 3, 10), Status: attendance.StatusLeave}, // Sunday
			{EmployeeID: "e2", Date: d(2024, 3, 7), Status: attendance.StatusPresent},
		},
		Holidays: holidays,
		Start:    d(2024, 3, 4),
		End:      d(2024, 3, 16),
		Today:    d(2024, 3, 12),
	})

	want := []string{
		"",        // 04 before hire
		"Present", // 05
		"Leave",   // 06
		"Absent",  // 07 record belongs to another employee
		"Absent",  // 08
		"Holiday", // 09 holiday on a weekend
		"-",       // 10 weekend beats recorded leave
		"Absent",  // 11
		"Absent",  // 12 today
		"",        // 13 future
		"",        // 14 future
		"Holiday", // 15 future holiday
		"",        // 16 future weekend
	}
	assert.Equal(t, want, table.Rows[0].Cells)
	assert.Equal(t, "Rudi", table.Rows[0].EmployeeName)
	assert.Equal(t, "2024-03-04", table.StartDate)
	assert.Equal(t, "2024-03-16", table.EndDate)
}

func TestBuildTable_HiredAfterWindow(t *testing.T) {
	table := BuildTable(TableInput{
		Employees: []employee.Employee{{ID: "e1", FirstName: "New", DateHired: d(2024, 5, 1)}},
		Start:     d(2024, 4, 1),
		End:       d(2024, 4, 3),
		Today:     d(2024, 6, 1),
	})
	assert.Equal(t, []string{"", "", ""}, table.Rows[0].Cells)
}

func sampleTable() report.ExportTable {
	return BuildTable(TableInput{
		Employees: []employee.Employee{
			{ID: "e1", FirstName: "Ana", LastName: "Lim", DateHired: d(2024, 1, 1)},
			{ID: "e2", FirstName: "Budi", LastName: "Santoso", DateHired: d(2024, 1, 1)},
		},
		Records: []attendance.Attendance{
			{EmployeeID: "e1", Date: d(2024, 1, 2), Status: attendance.StatusPresent},
		},
		Start: d(2024, 1, 1),
		End:   d(2024, 1, 3),
		Today: d(2024, 1, 31),
	})
}

func TestRender_CSV(t *testing.T) {
	file, err := Render(sampleTable(), report.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "attendance_2024-01-01_2024-01-03.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Employee Name", "01 Jan 2024", "02 Jan 2024", "03 Jan 2024"},
		{"Ana Lim", "Absent", "Present", "Absent"},
		{"Budi Santoso", "Absent", "Absent", "Absent"},
	}, records)
}

func TestRender_XLSXMatchesCSV(t *testing.T) {
	table := sampleTable()
	file, err := Render(table, report.FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, "attendance_2024-01-01_2024-01-03.xlsx", file.Filename)
	assert.Equal(t, contentTypeXLSX, file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Equal(t, table.Records(), rows)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := Render(sampleTable(), report.Format("pdf"))
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}
