package holiday

import (
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
)

// ManualHolidayName names holidays registered from the attendance editor.
const ManualHolidayName = "Manual Holiday"

// Holiday is a company-wide non-working date.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}

// NewSet indexes holidays by date.
func NewSet(holidays []Holiday) workday.HolidaySet {
	set := make(workday.HolidaySet, len(holidays))
	for _, h := range holidays {
		set.Add(h.Date, h.Name)
	}
	return set
}
