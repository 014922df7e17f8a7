package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db             database.Transactor
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	selfResolver   employee.SelfResolver
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	db database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	selfResolver employee.SelfResolver,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		selfResolver:   selfResolver,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) today() time.Time {
	return workday.Today(s.now(), s.loc)
}

func (s *AttendanceServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return emp, nil
}

func (s *AttendanceServiceImpl) holidaySet(ctx context.Context, start, end time.Time) (workday.HolidaySet, error) {
	holidays, err := s.holidayRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holiday.NewSet(holidays), nil
}

// SummarizeEmployee implements attendance.Summarizer.
func (s *AttendanceServiceImpl) SummarizeEmployee(ctx context.Context, emp employee.Employee) (attendance.Summary, error) {
	start, end := workday.Date(emp.DateHired), s.today()
	if end.Before(start) {
		return attendance.Summary{}, nil
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID, start, end)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to list attendance of employee %s: %w", emp.ID, err)
	}
	holidays, err := s.holidaySet(ctx, start, end)
	if err != nil {
		return attendance.Summary{}, err
	}

	return Summarize(Reconcile(ReconcileInput{
		HireDate: emp.DateHired,
		End:      end,
		Records:  records,
		Holidays: holidays,
	})), nil
}

// ListSummaries implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListSummaries(ctx context.Context, filter employee.EmployeeFilter) ([]attendance.EmployeeSummaryResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	result := make([]attendance.EmployeeSummaryResponse, 0, len(employees))
	if len(employees) == 0 {
		return result, nil
	}

	today := s.today()
	earliest := today
	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
		if hired := workday.Date(emp.DateHired); hired.Before(earliest) {
			earliest = hired
		}
	}

	records, err := s.attendanceRepo.ListByEmployees(ctx, ids, earliest, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	byEmployee := make(map[string][]attendance.Attendance, len(employees))
	for _, r := range records {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	holidays, err := s.holidaySet(ctx, earliest, today)
	if err != nil {
		return nil, err
	}

	for _, emp := range employees {
		summary := Summarize(Reconcile(ReconcileInput{
			HireDate: emp.DateHired,
			End:      today,
			Records:  byEmployee[emp.ID],
			Holidays: holidays,
		}))
		result = append(result, attendance.EmployeeSummaryResponse{
			Employee: emp.ToResponse(),
			Summary:  summary,
		})
	}
	return result, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, req attendance.EmployeeAttendanceRequest) (attendance.EmployeeAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EmployeeAttendanceResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, err
	}

	start := workday.Date(emp.DateHired)
	if req.StartDate != "" {
		requested, _ := workday.Parse(req.StartDate)
		start = workday.Later(start, requested)
	}
	end := s.today()
	if req.EndDate != "" {
		end, _ = workday.Parse(req.EndDate)
	}
	if req.StartDate != "" && req.EndDate != "" && req.EndDate < req.StartDate {
		return attendance.EmployeeAttendanceResponse{}, attendance.ErrInvalidDateRange
	}
	end = workday.Earlier(end, s.today())

	var days []attendance.Day
	if !end.Before(start) {
		records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID, start, end)
		if err != nil {
			return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
		}
		holidays, err := s.holidaySet(ctx, start, end)
		if err != nil {
			return attendance.EmployeeAttendanceResponse{}, err
		}
		days = Reconcile(ReconcileInput{
			HireDate: emp.DateHired,
			Start:    start,
			End:      end,
			Records:  records,
			Holidays: holidays,
		})
	}

	dayResponses := make([]attendance.DayResponse, 0, len(days))
	for _, d := range days {
		dayResponses = append(dayResponses, d.ToResponse())
	}

	return attendance.EmployeeAttendanceResponse{
		Employee:  emp.ToResponse(),
		StartDate: workday.Key(start),
		EndDate:   workday.Key(end),
		Days:      dayResponses,
		Summary:   Summarize(days),
	}, nil
}

func (s *AttendanceServiceImpl) holidayOn(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	h, err := s.holidayRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday on %s: %w", workday.Key(date), err)
	}
	return &h, nil
}

func dayRecordResponse(employeeID string, date time.Time, rec *attendance.Attendance, h *holiday.Holiday) attendance.DayRecordResponse {
	resp := attendance.DayRecordResponse{
		EmployeeID: employeeID,
		Date:       workday.Key(date),
		Status:     string(attendance.StatusHoliday),
	}
	if rec != nil {
		id := rec.ID
		resp.RecordID = &id
		resp.Status = string(rec.Status)
	}
	if h != nil {
		name := h.Name
		resp.IsHoliday = true
		resp.HolidayName = &name
	}
	return resp
}

// GetDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDay(ctx context.Context, employeeID, date string) (attendance.DayRecordResponse, error) {
	d, ok := parseDay(date)
	if !ok {
		return attendance.DayRecordResponse{}, invalidDate()
	}
	if _, err := s.getEmployee(ctx, employeeID); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	rec, err := s.attendanceRepo.GetOrCreate(ctx, employeeID, d, attendance.StatusAbsent)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}
	h, err := s.holidayOn(ctx, d)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	return dayRecordResponse(employeeID, d, &rec, h), nil
}

// UpdateDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateDay(ctx context.Context, req attendance.UpdateDayRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}
	if _, err := s.getEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.DayRecordResponse{}, err
	}
	d, _ := parseDay(req.Date)

	var resp attendance.DayRecordResponse
	err := s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.attendanceRepo.GetByEmployeeAndDate(txCtx, req.EmployeeID, d); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrAttendanceNotFound
			}
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		if attendance.Status(req.Status) == attendance.StatusHoliday {
			h, err := s.holidayRepo.GetOrCreate(txCtx, d, holiday.ManualHolidayName)
			if err != nil {
				return err
			}
			if err := s.attendanceRepo.DeleteByEmployeeAndDate(txCtx, req.EmployeeID, d); err != nil {
				return fmt.Errorf("failed to delete attendance: %w", err)
			}
			resp = dayRecordResponse(req.EmployeeID, d, nil, &h)
			return nil
		}

		rec, err := s.attendanceRepo.Upsert(txCtx, req.EmployeeID, d, attendance.Status(req.Status))
		if err != nil {
			return err
		}
		h, err := s.holidayOn(txCtx, d)
		if err != nil {
			return err
		}
		resp = dayRecordResponse(req.EmployeeID, d, &rec, h)
		return nil
	})
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	slog.Info("attendance day updated", "employee_id", req.EmployeeID, "date", req.Date, "status", req.Status)
	return resp, nil
}

// DeleteRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.attendanceRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	return nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, principal user.Principal) (attendance.MyAttendanceResponse, error) {
	emp, err := s.selfResolver.ResolveSelf(ctx, principal)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListRecentByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	summary, err := s.SummarizeEmployee(ctx, emp)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}

	return attendance.MyAttendanceResponse{
		Employee: emp.ToResponse(),
		Records:  responses,
		Summary:  summary,
	}, nil
}

func parseDay(s string) (time.Time, bool) {
	d, err := workday.Parse(s)
	return d, err == nil
}

func invalidDate() error {
	return validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
}
