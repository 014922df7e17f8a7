package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	loc            *time.Location
	now            func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *ReportServiceImpl) buildTable(ctx context.Context, filter report.ExportFilter) (report.ExportTable, error) {
	if err := filter.Validate(); err != nil {
		return report.ExportTable{}, err
	}

	today := workday.Today(s.now(), s.loc)
	start, end, err := filter.Window(today)
	if err != nil {
		return report.ExportTable{}, err
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{
		Department: filter.Department,
		Name:       filter.EmployeeName,
	})
	if err != nil {
		return report.ExportTable{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var records []attendance.Attendance
	if len(employees) > 0 {
		ids := make([]string, 0, len(employees))
		for _, emp := range employees {
			ids = append(ids, emp.ID)
		}
		records, err = s.attendanceRepo.ListByEmployees(ctx, ids, start, end)
		if err != nil {
			return report.ExportTable{}, fmt.Errorf("failed to list attendance: %w", err)
		}
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, start, end)
	if err != nil {
		return report.ExportTable{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	return BuildTable(TableInput{
		Employees: employees,
		Records:   records,
		Holidays:  holiday.NewSet(holidays),
		Start:     start,
		End:       end,
		Today:     today,
	}), nil
}

// PreviewAttendance implements report.ReportService.
func (s *ReportServiceImpl) PreviewAttendance(ctx context.Context, filter report.ExportFilter) (report.ExportTable, error) {
	return s.buildTable(ctx, filter)
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, filter report.ExportFilter) (report.ExportFile, error) {
	table, err := s.buildTable(ctx, filter)
	if err != nil {
		return report.ExportFile{}, err
	}

	file, err := Render(table, filter.ExportFormat())
	if err != nil {
		return report.ExportFile{}, err
	}

	slog.Info("attendance exported", "filename", file.Filename, "employees", len(table.Rows), "bytes", len(file.Content))
	return file, nil
}
