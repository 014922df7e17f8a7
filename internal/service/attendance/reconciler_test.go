package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := workday.Parse(s)
	require.NoError(t, err)
	return d
}

func record(t *testing.T, date string, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{ID: "rec-" + date, EmployeeID: "emp-1", Date: day(t, date), Status: status}
}

func TestReconcile_Priority(t *testing.T) {
	holidays := workday.HolidaySet{}
	holidays.Add(day(t, "2024-01-15"), "Founders Day")
	holidays.Add(day(t, "2024-01-13"), "Saturday Holiday")

	days := Reconcile(ReconcileInput{
		HireDate: day(t, "2024-01-12"),
		End:      day(t, "2024-01-17"),
		Records: []attendance.Attendance{
			record(t, "2024-01-12", attendance.StatusPresent),
			record(t, "2024-01-14", attendance.StatusPresent), // Sunday
			record(t, "2024-01-15", attendance.StatusPresent), // holiday
			record(t, "2024-01-16", attendance.StatusLeave),
		},
		Holidays: holidays,
	})

	want := []attendance.Status{
		attendance.StatusPresent, // Fri 12
		attendance.StatusWeekend, // Sat 13, holiday too but weekend wins
		attendance.StatusWeekend, // Sun 14, record ignored
		attendance.StatusHoliday, // Mon 15, record ignored
		attendance.StatusLeave,   // Tue 16
		attendance.StatusAbsent,  // Wed 17, no record
	}
	require.Len(t, days, len(want))
	for i, w := range want {
		assert.Equal(t, w, days[i].Status, days[i].Date.Format("2006-01-02"))
	}
	require.NotNil(t, days[0].RecordID)
	assert.Equal(t, "rec-2024-01-12", *days[0].RecordID)
	assert.Nil(t, days[5].RecordID)
}

func TestReconcile_StartClampedToHireDate(t *testing.T) {
	days := Reconcile(ReconcileInput{
		HireDate: day(t, "2024-02-05"),
		Start:    day(t, "2024-01-01"),
		End:      day(t, "2024-02-07"),
	})

	require.Len(t, days, 3)
	assert.Equal(t, "2024-02-05", workday.Key(days[0].Date))
}

func TestReconcile_EndBeforeStartIsEmpty(t *testing.T) {
	days := Reconcile(ReconcileInput{
		HireDate: day(t, "2024-02-05"),
		End:      day(t, "2024-02-01"),
	})

	assert.Empty(t, days)
}

func TestSummarize_ReferenceMonth(t *testing.T) {
	holidays := workday.HolidaySet{}
	holidays.Add(day(t, "2024-01-15"), "Founders Day")

	var records []attendance.Attendance
	absent := map[string]bool{"2024-01-10": true, "2024-01-24": true}
	workday.Each(day(t, "2024-01-01"), day(t, "2024-01-31"), func(d time.Time) {
		if workday.IsWeekend(d) || holidays.Contains(d) || absent[workday.Key(d)] {
			return
		}
		records = append(records, record(t, workday.Key(d), attendance.StatusPresent))
	})

	summary := Summarize(Reconcile(ReconcileInput{
		HireDate: day(t, "2024-01-01"),
		End:      day(t, "2024-01-31"),
		Records:  records,
		Holidays: holidays,
	}))

	assert.Equal(t, 22, summary.WorkingDays)
	assert.Equal(t, 20, summary.Present)
	assert.Equal(t, 2, summary.Absent)
	assert.Equal(t, 1, summary.Holidays)
	assert.Equal(t, 8, summary.Weekends)
	assert.Equal(t, 90.91, summary.Percentage)
}

func TestSummarize_HiredTodayWithoutRecords(t *testing.T) {
	weekday := Summarize(Reconcile(ReconcileInput{
		HireDate: day(t, "2024-03-11"),
		End:      day(t, "2024-03-11"),
	}))
	assert.Equal(t, 0.0, weekday.Percentage)
	assert.Equal(t, 1, weekday.Absent)

	saturday := Summarize(Reconcile(ReconcileInput{
		HireDate: day(t, "2024-03-09"),
		End:      day(t, "2024-03-09"),
	}))
	assert.Equal(t, 0.0, saturday.Percentage)
	assert.Equal(t, 0, saturday.WorkingDays)
}

func TestSummarize_LeaveExcludedFromDenominator(t *testing.T) {
	days := []attendance.Day{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusLeave},
		{Status: attendance.StatusLeave},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusHoliday},
		{Status: attendance.StatusWeekend},
	}

	summary := Summarize(days)

	assert.Equal(t, 50.0, summary.Percentage)
	assert.Equal(t, 4, summary.WorkingDays)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		present, absent int
		want            float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 0, 100},
		{1, 2, 33.33},
		{2, 1, 66.67},
		{1, 7, 12.5},
		{20, 2, 90.91},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.present, tt.absent), "%d/%d", tt.present, tt.absent)
	}
}
