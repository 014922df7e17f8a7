package holiday

import (
	"strconv"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type HolidayFilter struct {
	Year string
}

// ParsedYear returns the requested year, or fallback when none was given.
func (f HolidayFilter) ParsedYear(fallback int) (int, error) {
	if f.Year == "" {
		return fallback, nil
	}
	y, err := strconv.Atoi(f.Year)
	if err != nil || y < 1900 || y > 9999 {
		return 0, validator.ValidationErrors{{Field: "year", Message: "year must be a four digit number"}}
	}
	return y, nil
}

type HolidayResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Name    string `json:"name"`
}

func (h Holiday) ToResponse() HolidayResponse {
	return HolidayResponse{
		ID:      h.ID,
		Date:    h.Date.Format("2006-01-02"),
		Weekday: h.Date.Weekday().String(),
		Name:    h.Name,
	}
}

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
