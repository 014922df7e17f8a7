package attendance

import (
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
	"github.com/shopspring/decimal"
)

// ReconcileInput holds everything needed to classify an employee's days.
type ReconcileInput struct {
	HireDate time.Time
	// Start defaults to HireDate and is never earlier than it.
	Start    time.Time
	End      time.Time
	Records  []attendance.Attendance
	Holidays workday.HolidaySet
}

// Reconcile classifies each calendar day from Start to End, oldest first.
// Weekends win over holidays, holidays over stored records, and a working
// day without a record counts as Absent.
func Reconcile(in ReconcileInput) []attendance.Day {
	start := workday.Date(in.HireDate)
	if !in.Start.IsZero() {
		start = workday.Later(start, workday.Date(in.Start))
	}
	end := workday.Date(in.End)

	byDate := make(map[string]attendance.Attendance, len(in.Records))
	for _, r := range in.Records {
		byDate[workday.Key(r.Date)] = r
	}

	var days []attendance.Day
	workday.Each(start, end, func(d time.Time) {
		day := attendance.Day{Date: d}
		switch {
		case workday.IsWeekend(d):
			day.Status = attendance.StatusWeekend
		case in.Holidays.Contains(d):
			day.Status = attendance.StatusHoliday
		default:
			day.Status = attendance.StatusAbsent
			if r, ok := byDate[workday.Key(d)]; ok {
				id := r.ID
				day.Status = r.Status
				day.RecordID = &id
			}
		}
		days = append(days, day)
	})
	return days
}

// Summarize counts reconciled days by status and computes the attendance percentage.
func Summarize(days []attendance.Day) attendance.Summary {
	var s attendance.Summary
	for _, d := range days {
		switch d.Status {
		case attendance.StatusPresent:
			s.Present++
		case attendance.StatusAbsent:
			s.Absent++
		case attendance.StatusLeave:
			s.Leave++
		case attendance.StatusHoliday:
			s.Holidays++
		case attendance.StatusWeekend:
			s.Weekends++
		}
	}
	s.WorkingDays = s.Present + s.Absent + s.Leave
	s.Percentage = Percentage(s.Present, s.Absent)
	return s
}

// Percentage returns present / (present + absent) * 100 rounded half away from
// zero to two decimals, or 0 when there are no counted days. Leave is excluded.
func Percentage(present, absent int) float64 {
	denominator := present + absent
	if denominator == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(present)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(denominator))).
		Round(2).
		InexactFloat64()
}
