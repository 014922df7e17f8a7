package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/email"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db               database.Transactor
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendance.AttendanceRepository
	employeeRepo     employee.EmployeeRepository
	selfResolver     employee.SelfResolver
	emailService     email.EmailService
	now              func() time.Time
}

func NewLeaveService(
	db database.Transactor,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	selfResolver employee.SelfResolver,
	emailService email.EmailService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:               db,
		leaveRequestRepo: leaveRequestRepo,
		attendanceRepo:   attendanceRepo,
		employeeRepo:     employeeRepo,
		selfResolver:     selfResolver,
		emailService:     emailService,
		now:              time.Now,
	}
}

func (l *LeaveServiceImpl) file(ctx context.Context, employeeID string, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	start, end := req.Period()
	created, err := l.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request filed", "leave_request_id", created.ID, "employee_id", employeeID, "total_days", created.TotalDays())
	return created.ToResponse(), nil
}

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, principal user.Principal, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := l.selfResolver.ResolveSelf(ctx, principal)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return l.file(ctx, emp.ID, req)
}

// CreateForEmployee implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateForEmployee(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !validator.IsValidUUID(req.EmployeeID) {
		return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
	}
	if _, err := l.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee %s: %w", req.EmployeeID, err)
	}
	return l.file(ctx, req.EmployeeID, req.ApplyLeaveRequest)
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request.ToResponse(), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, principal user.Principal) ([]leave.LeaveRequestResponse, error) {
	emp, err := l.selfResolver.ResolveSelf(ctx, principal)
	if err != nil {
		return nil, err
	}
	return l.ListLeaveRequests(ctx, leave.LeaveRequestFilter{EmployeeID: emp.ID})
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, principal user.Principal, id string) (leave.DecisionResponse, error) {
	return l.decide(ctx, principal, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, principal user.Principal, id string) (leave.DecisionResponse, error) {
	return l.decide(ctx, principal, id, leave.StatusRejected)
}

// decide moves a pending request to status. Approval also writes a Leave
// attendance record for every calendar day the request covers, weekends and
// holidays included, overwriting whatever was recorded before.
func (l *LeaveServiceImpl) decide(ctx context.Context, principal user.Principal, id string, status leave.Status) (leave.DecisionResponse, error) {
	var (
		decided    leave.LeaveRequest
		propagated int
	)

	err := l.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := l.leaveRequestRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return leave.ErrLeaveRequestNotFound
			}
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		decidedAt := l.now()
		decidedBy := principal.UserID
		request.Status = status
		request.DecidedBy = &decidedBy
		request.DecidedAt = &decidedAt
		if err := l.leaveRequestRepo.UpdateDecision(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		if status == leave.StatusApproved {
			propagated, err = l.attendanceRepo.UpsertMany(txCtx, request.EmployeeID, request.Dates(), attendance.StatusLeave)
			if err != nil {
				return fmt.Errorf("failed to record leave attendance: %w", err)
			}
		}

		decided = request
		return nil
	})
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	slog.Info("leave request decided",
		"leave_request_id", decided.ID,
		"employee_id", decided.EmployeeID,
		"status", decided.Status,
		"days_propagated", propagated,
	)
	l.notify(decided)

	return leave.DecisionResponse{
		LeaveRequest:   decided.ToResponse(),
		DaysPropagated: propagated,
	}, nil
}

func (l *LeaveServiceImpl) notify(request leave.LeaveRequest) {
	if l.emailService == nil || request.EmployeeEmail == "" {
		return
	}

	err := l.emailService.SendLeaveDecision(request.EmployeeEmail, email.LeaveDecisionData{
		EmployeeName: request.EmployeeName,
		Status:       string(request.Status),
		StartDate:    request.StartDate.Format("02 Jan 2006"),
		EndDate:      request.EndDate.Format("02 Jan 2006"),
		TotalDays:    request.TotalDays(),
		Reason:       request.Reason,
	})
	if err != nil {
		slog.Error("failed to send leave decision email", "leave_request_id", request.ID, "error", err)
	}
}

// DeleteLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, id string) error {
	if err := l.leaveRequestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to delete leave request %s: %w", id, err)
	}
	return nil
}
