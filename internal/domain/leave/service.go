package leave

import (
	"context"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
)

type LeaveService interface {
	// Apply files a pending request for the caller's own employee record.
	Apply(ctx context.Context, principal user.Principal, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// CreateForEmployee files a pending request on behalf of an employee.
	CreateForEmployee(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)

	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	ListMyLeaveRequests(ctx context.Context, principal user.Principal) ([]LeaveRequestResponse, error)

	// Approve marks a pending request approved and records Leave on every day it covers.
	Approve(ctx context.Context, principal user.Principal, id string) (DecisionResponse, error)

	// Reject marks a pending request rejected. Attendance is untouched.
	Reject(ctx context.Context, principal user.Principal, id string) (DecisionResponse, error)

	DeleteLeaveRequest(ctx context.Context, id string) error
}
