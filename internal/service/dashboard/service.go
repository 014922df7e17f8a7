package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	selfResolver employee.SelfResolver
	summarizer   attendance.Summarizer
	now          func() time.Time
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	selfResolver employee.SelfResolver,
	summarizer attendance.Summarizer,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		selfResolver:        selfResolver,
		summarizer:          summarizer,
		now:                 time.Now,
	}
}

// GetHRDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetHRDashboard(ctx context.Context) (dashboard.HRDashboardResponse, error) {
	var resp dashboard.HRDashboardResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.CountEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		resp.TotalEmployees = n
		return nil
	})

	g.Go(func() error {
		n, err := s.CountAttendanceRecords(gCtx, "")
		if err != nil {
			return fmt.Errorf("failed to count attendance records: %w", err)
		}
		resp.TotalAttendanceRecords = n
		return nil
	})

	g.Go(func() error {
		n, err := s.CountLeaveRequests(gCtx, "", "")
		if err != nil {
			return fmt.Errorf("failed to count leave requests: %w", err)
		}
		resp.TotalLeaveRequests = n
		return nil
	})

	g.Go(func() error {
		n, err := s.CountLeaveRequests(gCtx, "", string(leave.StatusPending))
		if err != nil {
			return fmt.Errorf("failed to count pending leave requests: %w", err)
		}
		resp.PendingLeaveRequests = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.HRDashboardResponse{}, err
	}

	resp.UpdatedAt = s.now().Format(time.RFC3339)
	return resp, nil
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, principal user.Principal) (dashboard.EmployeeDashboardResponse, error) {
	emp, err := s.selfResolver.ResolveSelf(ctx, principal)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	resp := dashboard.EmployeeDashboardResponse{Employee: emp.ToResponse()}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.CountAttendanceRecords(gCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to count attendance records: %w", err)
		}
		resp.AttendanceRecords = n
		return nil
	})

	g.Go(func() error {
		n, err := s.CountLeaveRequests(gCtx, emp.ID, "")
		if err != nil {
			return fmt.Errorf("failed to count leave requests: %w", err)
		}
		resp.LeaveRequests = n
		return nil
	})

	g.Go(func() error {
		n, err := s.CountLeaveRequests(gCtx, emp.ID, string(leave.StatusPending))
		if err != nil {
			return fmt.Errorf("failed to count pending leave requests: %w", err)
		}
		resp.PendingLeaveRequests = n
		return nil
	})

	g.Go(func() error {
		summary, err := s.summarizer.SummarizeEmployee(gCtx, emp)
		if err != nil {
			return err
		}
		resp.Summary = summary
		resp.AttendancePercentage = summary.Percentage
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}
	return resp, nil
}
