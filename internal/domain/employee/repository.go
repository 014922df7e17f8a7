package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	// ExistsByEmail ignores the employee with excludeID when it is non-empty.
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	// List returns employees ordered by date_hired descending.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
}
