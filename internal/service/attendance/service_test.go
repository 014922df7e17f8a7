package attendance

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeTransactor struct{ calls int }

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
}

func key(employeeID string, d time.Time) string { return employeeID + "|" + workday.Key(d) }

func (f *fakeAttendanceRepo) put(employeeID string, d time.Time, status attendance.Status) attendance.Attendance {
	k := key(employeeID, d)
	rec, ok := f.records[k]
	if !ok {
		rec = attendance.Attendance{ID: "rec-" + workday.Key(d) + "-" + employeeID, EmployeeID: employeeID, Date: workday.Date(d)}
	}
	rec.Status = status
	f.records[k] = rec
	return rec
}

func (f *fakeAttendanceRepo) between(employeeID string, start, end time.Time) []attendance.Attendance {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Attendance{}, pgx.ErrNoRows
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, d time.Time) (attendance.Attendance, error) {
	if rec, ok := f.records[key(employeeID, d)]; ok {
		return rec, nil
	}
	return attendance.Attendance{}, pgx.ErrNoRows
}

func (f *fakeAttendanceRepo) GetOrCreate(_ context.Context, employeeID string, d time.Time, status attendance.Status) (attendance.Attendance, error) {
	if rec, ok := f.records[key(employeeID, d)]; ok {
		return rec, nil
	}
	return f.put(employeeID, d, status), nil
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, employeeID string, d time.Time, status attendance.Status) (attendance.Attendance, error) {
	return f.put(employeeID, d, status), nil
}

func (f *fakeAttendanceRepo) UpsertMany(_ context.Context, employeeID string, dates []time.Time, status attendance.Status) (int, error) {
	for _, d := range dates {
		f.put(employeeID, d, status)
	}
	return len(dates), nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	return f.between(employeeID, start, end), nil
}

func (f *fakeAttendanceRepo) ListByEmployees(_ context.Context, ids []string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, id := range ids {
		out = append(out, f.between(id, start, end)...)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListRecentByEmployee(_ context.Context, employeeID string) ([]attendance.Attendance, error) {
	out := f.between(employeeID, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeAttendanceRepo) DeleteByID(_ context.Context, id string) error {
	for k, r := range f.records {
		if r.ID == id {
			delete(f.records, k)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeAttendanceRepo) DeleteByEmployeeAndDate(_ context.Context, employeeID string, d time.Time) error {
	delete(f.records, key(employeeID, d))
	return nil
}

func (f *fakeAttendanceRepo) CountByEmployee(_ context.Context, employeeID string) (int64, error) {
	return int64(len(f.between(employeeID, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)))), nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	holidays map[string]holiday.Holiday
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, d time.Time) (holiday.Holiday, error) {
	if h, ok := f.holidays[workday.Key(d)]; ok {
		return h, nil
	}
	return holiday.Holiday{}, pgx.ErrNoRows
}

func (f *fakeHolidayRepo) ListBetween(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) GetOrCreate(_ context.Context, d time.Time, name string) (holiday.Holiday, error) {
	if h, ok := f.holidays[workday.Key(d)]; ok {
		return h, nil
	}
	h := holiday.Holiday{ID: "hol-" + workday.Key(d), Date: d, Name: name}
	f.holidays[workday.Key(d)] = h
	return h, nil
}

type fakeSelfResolver struct{ emp employee.Employee }

func (f fakeSelfResolver) ResolveSelf(context.Context, user.Principal) (employee.Employee, error) {
	return f.emp, nil
}

// ---- helpers ----

type fixture struct {
	svc        *AttendanceServiceImpl
	records    *fakeAttendanceRepo
	holidays   *fakeHolidayRepo
	transactor *fakeTransactor
	hired      employee.Employee
}

func newFixture(t *testing.T, today string) *fixture {
	t.Helper()
	emp := employee.Employee{ID: "emp-1", FirstName: "Siti", LastName: "Rahma", DateHired: day(t, "2024-01-01")}
	records := newFakeAttendanceRepo()
	holidays := &fakeHolidayRepo{holidays: map[string]holiday.Holiday{
		"2024-01-15": {ID: "hol-1", Date: day(t, "2024-01-15"), Name: "Founders Day"},
	}}
	tx := &fakeTransactor{}
	now := day(t, today).Add(10 * time.Hour)

	svc := NewAttendanceService(tx, records, &fakeEmployeeRepo{employees: []employee.Employee{emp}}, holidays, fakeSelfResolver{emp: emp}, time.UTC).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }

	return &fixture{svc: svc, records: records, holidays: holidays, transactor: tx, hired: emp}
}

// ---- tests ----

func TestSummarizeEmployee_ReferenceMonth(t *testing.T) {
	f := newFixture(t, "2024-01-31")
	workday.Each(day(t, "2024-01-01"), day(t, "2024-01-31"), func(d time.Time) {
		k := workday.Key(d)
		if workday.IsWeekend(d) || k == "2024-01-15" || k == "2024-01-10" || k == "2024-01-24" {
			return
		}
		f.records.put("emp-1", d, attendance.StatusPresent)
	})

	summary, err := f.svc.SummarizeEmployee(context.Background(), f.hired)

	require.NoError(t, err)
	assert.Equal(t, 22, summary.WorkingDays)
	assert.Equal(t, 90.91, summary.Percentage)
}

func TestSummarizeEmployee_FutureHire(t *testing.T) {
	f := newFixture(t, "2023-12-31")

	summary, err := f.svc.SummarizeEmployee(context.Background(), f.hired)

	require.NoError(t, err)
	assert.Equal(t, attendance.Summary{}, summary)
}

func TestListSummaries(t *testing.T) {
	f := newFixture(t, "2024-01-05")
	f.records.put("emp-1", day(t, "2024-01-02"), attendance.StatusPresent)

	list, err := f.svc.ListSummaries(context.Background(), employee.EmployeeFilter{})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Siti Rahma", list[0].Employee.FullName)
	assert.Equal(t, 1, list[0].Summary.Present)
	assert.Equal(t, 4, list[0].Summary.Absent)
	assert.Equal(t, 20.0, list[0].Summary.Percentage)
}

func TestGetEmployeeAttendance(t *testing.T) {
	f := newFixture(t, "2024-01-31")
	ctx := context.Background()

	t.Run("window clamped to hire date", func(t *testing.T) {
		resp, err := f.svc.GetEmployeeAttendance(ctx, attendance.EmployeeAttendanceRequest{
			EmployeeID: "emp-1", StartDate: "2023-12-25", EndDate: "2024-01-07",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", resp.StartDate)
		require.Len(t, resp.Days, 7)
		assert.Equal(t, "Weekend", resp.Days[6].Status)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := f.svc.GetEmployeeAttendance(ctx, attendance.EmployeeAttendanceRequest{
			EmployeeID: "emp-1", StartDate: "2024-01-10", EndDate: "2024-01-05",
		})
		assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := f.svc.GetEmployeeAttendance(ctx, attendance.EmployeeAttendanceRequest{EmployeeID: "nobody"})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestGetEmployeeAttendance_FutureEndClampedToToday(t *testing.T) {
	f := newFixture(t, "2024-01-05")
	ctx := context.Background()
	workday.Each(day(t, "2024-01-01"), day(t, "2024-01-05"), func(d time.Time) {
		f.records.put("emp-1", d, attendance.StatusPresent)
	})

	resp, err := f.svc.GetEmployeeAttendance(ctx, attendance.EmployeeAttendanceRequest{
		EmployeeID: "emp-1", StartDate: "2024-01-01", EndDate: "2024-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", resp.StartDate)
	assert.Equal(t, "2024-01-05", resp.EndDate)
	assert.Len(t, resp.Days, 5)
	assert.Equal(t, 5, resp.Summary.Present)
	assert.Equal(t, 0, resp.Summary.Absent)
	assert.Equal(t, 100.0, resp.Summary.Percentage)

	summary, err := f.svc.SummarizeEmployee(ctx, f.hired)
	require.NoError(t, err)
	assert.Equal(t, summary.Percentage, resp.Summary.Percentage)

	t.Run("window entirely in the future", func(t *testing.T) {
		resp, err := f.svc.GetEmployeeAttendance(ctx, attendance.EmployeeAttendanceRequest{
			EmployeeID: "emp-1", StartDate: "2024-02-01", EndDate: "2024-02-29",
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Days)
		assert.Equal(t, 0, resp.Summary.Absent)
	})
}

func TestGetDay_CreatesAbsentRecord(t *testing.T) {
	f := newFixture(t, "2024-01-31")
	ctx := context.Background()

	first, err := f.svc.GetDay(ctx, "emp-1", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "Absent", first.Status)
	assert.True(t, first.IsHoliday)
	require.NotNil(t, first.RecordID)

	again, err := f.svc.GetDay(ctx, "emp-1", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, *first.RecordID, *again.RecordID)
	assert.Len(t, f.records.records, 1)
}

func TestUpdateDay(t *testing.T) {
	ctx := context.Background()

	t.Run("sets status", func(t *testing.T) {
		f := newFixture(t, "2024-01-31")
		f.records.put("emp-1", day(t, "2024-01-03"), attendance.StatusAbsent)

		resp, err := f.svc.UpdateDay(ctx, attendance.UpdateDayRequest{EmployeeID: "emp-1", Date: "2024-01-03", Status: "Present"})
		require.NoError(t, err)
		assert.Equal(t, "Present", resp.Status)
		assert.False(t, resp.IsHoliday)
		assert.Equal(t, 1, f.transactor.calls)
	})

	t.Run("holiday registers manual holiday and drops the record", func(t *testing.T) {
		f := newFixture(t, "2024-01-31")
		f.records.put("emp-1", day(t, "2024-01-03"), attendance.StatusPresent)

		resp, err := f.svc.UpdateDay(ctx, attendance.UpdateDayRequest{EmployeeID: "emp-1", Date: "2024-01-03", Status: "Holiday"})
		require.NoError(t, err)

		assert.Equal(t, "Holiday", resp.Status)
		assert.Nil(t, resp.RecordID)
		require.NotNil(t, resp.HolidayName)
		assert.Equal(t, holiday.ManualHolidayName, *resp.HolidayName)
		assert.Empty(t, f.records.records)
		assert.Contains(t, f.holidays.holidays, "2024-01-03")
	})

	t.Run("missing record", func(t *testing.T) {
		for _, status := range []string{"Present", "Holiday"} {
			f := newFixture(t, "2024-01-31")
			_, err := f.svc.UpdateDay(ctx, attendance.UpdateDayRequest{EmployeeID: "emp-1", Date: "2024-01-03", Status: status})

			assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound, status)
			assert.Empty(t, f.records.records)
			assert.NotContains(t, f.holidays.holidays, "2024-01-03")
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		f := newFixture(t, "2024-01-31")
		_, err := f.svc.UpdateDay(ctx, attendance.UpdateDayRequest{EmployeeID: "emp-1", Date: "2024-01-03", Status: "Late"})

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "status")
		assert.Empty(t, f.records.records)
	})
}

func TestDeleteRecord(t *testing.T) {
	f := newFixture(t, "2024-01-31")
	rec := f.records.put("emp-1", day(t, "2024-01-03"), attendance.StatusPresent)

	require.NoError(t, f.svc.DeleteRecord(context.Background(), rec.ID))
	assert.ErrorIs(t, f.svc.DeleteRecord(context.Background(), rec.ID), attendance.ErrAttendanceNotFound)
}

func TestGetMyAttendance_NewestFirst(t *testing.T) {
	f := newFixture(t, "2024-01-05")
	f.records.put("emp-1", day(t, "2024-01-02"), attendance.StatusPresent)
	f.records.put("emp-1", day(t, "2024-01-04"), attendance.StatusLeave)

	resp, err := f.svc.GetMyAttendance(context.Background(), user.Principal{UserID: "u1", Role: user.RoleEmployee})

	require.NoError(t, err)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "2024-01-04", resp.Records[0].Date)
	assert.Equal(t, 1, resp.Summary.Leave)
	assert.Equal(t, 25.0, resp.Summary.Percentage)
}
