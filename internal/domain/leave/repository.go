package leave

import "context"

type LeaveRequestFilter struct {
	EmployeeID string
	Status     *Status
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	// List returns matching requests ordered by start_date descending.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	UpdateDecision(ctx context.Context, req LeaveRequest) error
	Delete(ctx context.Context, id string) error
}
