package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/workday"
	"github.com/jackc/pgx/v5"
)

// fallbackEmailDomain is used when a provisioned employee's account email is already taken.
const fallbackEmailDomain = "company.com"

type EmployeeServiceImpl struct {
	db           database.Transactor
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	loc          *time.Location
	now          func() time.Time
}

func NewEmployeeService(
	db database.Transactor,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	loc *time.Location,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		loc:          loc,
		now:          time.Now,
	}
}

var (
	_ employee.EmployeeService = (*EmployeeServiceImpl)(nil)
	_ employee.SelfResolver    = (*EmployeeServiceImpl)(nil)
)

func (s *EmployeeServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return emp, nil
}

func (s *EmployeeServiceImpl) ensureEmailFree(ctx context.Context, email, excludeID string) error {
	exists, err := s.employeeRepo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return employee.ErrEmailExists
	}
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, emp.ToResponse())
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	email := strings.TrimSpace(req.Email)
	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dateHired, _ := workday.Parse(req.DateHired)
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		UserID:     req.UserID,
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      email,
		Position:   strings.TrimSpace(req.Position),
		Department: strings.TrimSpace(req.Department),
		DateHired:  dateHired,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "email", created.Email)
	return created.ToResponse(), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.Apply(&emp)

	if req.Email != nil {
		if err := s.ensureEmailFree(ctx, emp.Email, emp.ID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}
	return updated.ToResponse(), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	slog.Info("employee deleted", "employee_id", id)
	return nil
}

// ResolveSelf implements employee.SelfResolver.
func (s *EmployeeServiceImpl) ResolveSelf(ctx context.Context, principal user.Principal) (employee.Employee, error) {
	if principal.EmployeeID != "" {
		emp, err := s.employeeRepo.GetByID(ctx, principal.EmployeeID)
		if err == nil {
			return emp, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", principal.EmployeeID, err)
		}
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, principal.UserID)
	if err == nil {
		return emp, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, fmt.Errorf("failed to get employee of user %s: %w", principal.UserID, err)
	}
	if principal.Role != user.RoleEmployee {
		return employee.Employee{}, employee.ErrNoLinkedEmployee
	}

	return s.provision(ctx, principal.UserID)
}

// provision creates the employee record of an employee-role account that has none.
func (s *EmployeeServiceImpl) provision(ctx context.Context, userID string) (employee.Employee, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, user.ErrUserNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	email := u.Email
	taken, err := s.employeeRepo.ExistsByEmail(ctx, email, "")
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if taken {
		email = fmt.Sprintf("%s@%s", u.Username, fallbackEmailDomain)
	}

	firstName, lastName := u.FirstName, u.LastName
	if strings.TrimSpace(firstName) == "" {
		firstName = u.Username
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		UserID:     &u.ID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Position:   employee.DefaultPosition,
		Department: employee.DefaultDepartment,
		DateHired:  workday.Today(s.now(), s.loc),
	})
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("employee record provisioned", "user_id", u.ID, "employee_id", created.ID)
	return created, nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context, principal user.Principal) (employee.EmployeeResponse, error) {
	emp, err := s.ResolveSelf(ctx, principal)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

// UpdateMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateMyProfile(ctx context.Context, principal user.Principal, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		emp, err := s.ResolveSelf(txCtx, principal)
		if err != nil {
			return err
		}

		email := strings.TrimSpace(req.Email)
		if err := s.ensureEmailFree(txCtx, email, emp.ID); err != nil {
			return err
		}

		emp.FirstName = strings.TrimSpace(req.FirstName)
		emp.LastName = strings.TrimSpace(req.LastName)
		emp.Email = email
		if !validator.IsEmpty(req.Position) {
			emp.Position = strings.TrimSpace(req.Position)
		}
		if !validator.IsEmpty(req.Department) {
			emp.Department = strings.TrimSpace(req.Department)
		}

		updated, err = s.employeeRepo.Update(txCtx, emp)
		if err != nil {
			return err
		}

		if emp.UserID != nil {
			if err := s.userRepo.UpdateEmail(txCtx, *emp.UserID, email); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return updated.ToResponse(), nil
}
