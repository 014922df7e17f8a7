package employee

import (
	"context"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error

	// GetMyProfile returns the caller's employee record, provisioning one if missing.
	GetMyProfile(ctx context.Context, principal user.Principal) (EmployeeResponse, error)
	// UpdateMyProfile edits the caller's record and syncs a changed email to the linked user.
	UpdateMyProfile(ctx context.Context, principal user.Principal, req UpdateProfileRequest) (EmployeeResponse, error)
}

// SelfResolver maps an authenticated principal to their employee record.
// Employee-role accounts without one get a record created on first access.
type SelfResolver interface {
	ResolveSelf(ctx context.Context, principal user.Principal) (Employee, error)
}
