package holiday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
	"github.com/jackc/pgx/v5"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
	loc         *time.Location
	now         func() time.Time
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, loc *time.Location) holiday.HolidayService {
	return &HolidayServiceImpl{
		holidayRepo: holidayRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, filter holiday.HolidayFilter) ([]holiday.HolidayResponse, error) {
	year, err := filter.ParsedYear(workday.Today(s.now(), s.loc).Year())
	if err != nil {
		return nil, err
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	holidays, err := s.holidayRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, h.ToResponse())
	}
	return responses, nil
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := workday.Parse(req.Date)
	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date: date,
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	slog.Info("holiday created", "date", req.Date, "name", created.Name)
	return created.ToResponse(), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday %s: %w", id, err)
	}
	return nil
}
