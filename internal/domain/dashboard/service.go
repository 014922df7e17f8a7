package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
)

type DashboardService interface {
	GetHRDashboard(ctx context.Context) (HRDashboardResponse, error)
	GetEmployeeDashboard(ctx context.Context, principal user.Principal) (EmployeeDashboardResponse, error)
}
