package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	GetByID(ctx context.Context, id string) (Holiday, error)
	GetByDate(ctx context.Context, date time.Time) (Holiday, error)
	// ListBetween returns holidays between start and end inclusive, ordered by date.
	ListBetween(ctx context.Context, start, end time.Time) ([]Holiday, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
	// GetOrCreate returns the holiday on date, inserting one named name when none exists.
	GetOrCreate(ctx context.Context, date time.Time, name string) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
