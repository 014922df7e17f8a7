package employee

import (
	"strings"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type EmployeeFilter struct {
	Department string
	Name       string
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	UserID     *string `json:"user_id,omitempty"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	DateHired  string  `json:"date_hired"`
}

// ToResponse converts an Employee to its API representation.
func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		DateHired:  e.DateHired.Format("2006-01-02"),
	}
}

type CreateEmployeeRequest struct {
	UserID     *string `json:"user_id,omitempty"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	DateHired  string  `json:"date_hired"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateNames(r.FirstName, r.LastName)...)
	errs = append(errs, validateEmail(r.Email)...)

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.DateHired) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_hired",
			Message: "date_hired is required",
		})
	} else if _, ok := validator.IsValidDate(r.DateHired); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_hired",
			Message: "date_hired must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	DateHired  *string `json:"date_hired,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.Email != nil {
		errs = append(errs, validateEmail(*r.Email)...)
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not be empty",
		})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}
	if r.DateHired != nil {
		if _, ok := validator.IsValidDate(*r.DateHired); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_hired",
				Message: "date_hired must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply copies the set fields of r onto e.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.FirstName != nil {
		e.FirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		e.LastName = strings.TrimSpace(*r.LastName)
	}
	if r.Email != nil {
		e.Email = strings.TrimSpace(*r.Email)
	}
	if r.Position != nil {
		e.Position = strings.TrimSpace(*r.Position)
	}
	if r.Department != nil {
		e.Department = strings.TrimSpace(*r.Department)
	}
	if r.DateHired != nil {
		if d, ok := validator.IsValidDate(*r.DateHired); ok {
			e.DateHired = d
		}
	}
}

// UpdateProfileRequest is the self-service subset of employee fields.
type UpdateProfileRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateNames(r.FirstName, r.LastName)...)
	errs = append(errs, validateEmail(r.Email)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateNames(first, last string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(first) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	} else if len(first) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not exceed 100 characters",
		})
	}
	if len(last) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not exceed 100 characters",
		})
	}
	return errs
}

func validateEmail(email string) validator.ValidationErrors {
	if validator.IsEmpty(email) {
		return validator.ValidationErrors{{Field: "email", Message: "email is required"}}
	}
	if !validator.IsValidEmail(email) {
		return validator.ValidationErrors{{Field: "email", Message: "invalid email format"}}
	}
	return nil
}
