package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	byDate map[string]holiday.Holiday
}

func (r *fakeHolidayRepo) ListBetween(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.byDate {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	if _, ok := r.byDate[workday.Key(h.Date)]; ok {
		return holiday.Holiday{}, holiday.ErrHolidayExists
	}
	h.ID = "hol-" + workday.Key(h.Date)
	r.byDate[workday.Key(h.Date)] = h
	return h, nil
}

func (r *fakeHolidayRepo) Delete(_ context.Context, id string) error {
	for k, h := range r.byDate {
		if h.ID == id {
			delete(r.byDate, k)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func newService() (*HolidayServiceImpl, *fakeHolidayRepo) {
	repo := &fakeHolidayRepo{byDate: map[string]holiday.Holiday{}}
	svc := NewHolidayService(repo, time.UTC).(*HolidayServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestHolidayService(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	created, err := svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Date: "2024-08-17", Name: " Independence Day "})
	require.NoError(t, err)
	assert.Equal(t, "Independence Day", created.Name)
	assert.Equal(t, "Saturday", created.Weekday)

	_, err = svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Date: "2025-01-01", Name: "New Year"})
	require.NoError(t, err)

	_, err = svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Date: "2024-08-17", Name: "Again"})
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)

	thisYear, err := svc.ListHolidays(ctx, holiday.HolidayFilter{})
	require.NoError(t, err)
	require.Len(t, thisYear, 1)
	assert.Equal(t, "2024-08-17", thisYear[0].Date)

	nextYear, err := svc.ListHolidays(ctx, holiday.HolidayFilter{Year: "2025"})
	require.NoError(t, err)
	assert.Len(t, nextYear, 1)

	_, err = svc.ListHolidays(ctx, holiday.HolidayFilter{Year: "twenty"})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	require.NoError(t, svc.DeleteHoliday(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteHoliday(ctx, created.ID), holiday.ErrHolidayNotFound)
}
