package employee

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
	next int
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{byID: map[string]employee.Employee{}}
	for _, e := range employees {
		r.byID[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if e, ok := r.byID[id]; ok {
		return e, nil
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, e := range r.byID {
		if e.UserID != nil && *e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.next++
	e.ID = "emp-new-" + string(rune('0'+r.next))
	r.byID[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	if _, ok := r.byID[e.ID]; !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	r.byID[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string, excludeID string) (bool, error) {
	for _, e := range r.byID {
		if e.ID != excludeID && strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Count(context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakeUserRepo struct {
	user.UserRepository
	users   map[string]user.User
	emailed map[string]string
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return user.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdateEmail(_ context.Context, id, email string) error {
	r.emailed[id] = email
	return nil
}

func ptr(s string) *string { return &s }

func newService(repo *fakeEmployeeRepo, users *fakeUserRepo) *EmployeeServiceImpl {
	svc := NewEmployeeService(fakeTransactor{}, repo, users, time.UTC)
	svc.now = func() time.Time { return time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestResolveSelf(t *testing.T) {
	ctx := context.Background()
	linked := employee.Employee{ID: "emp-1", UserID: ptr("u-1"), FirstName: "Budi", Email: "budi@example.com"}

	t.Run("returns the linked record", func(t *testing.T) {
		svc := newService(newFakeEmployeeRepo(linked), &fakeUserRepo{})
		emp, err := svc.ResolveSelf(ctx, user.Principal{UserID: "u-1", Role: user.RoleEmployee})
		require.NoError(t, err)
		assert.Equal(t, "emp-1", emp.ID)
	})

	t.Run("provisions a record for an employee account", func(t *testing.T) {
		repo := newFakeEmployeeRepo(linked)
		users := &fakeUserRepo{users: map[string]user.User{
			"u-2": {ID: "u-2", Username: "sari", Email: "sari@example.com", FirstName: "Sari", LastName: "Dewi"},
		}}
		svc := newService(repo, users)

		emp, err := svc.ResolveSelf(ctx, user.Principal{UserID: "u-2", Role: user.RoleEmployee})
		require.NoError(t, err)

		assert.Equal(t, "Sari Dewi", emp.FullName())
		assert.Equal(t, "sari@example.com", emp.Email)
		assert.Equal(t, employee.DefaultPosition, emp.Position)
		assert.Equal(t, employee.DefaultDepartment, emp.Department)
		assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), emp.DateHired)

		again, err := svc.ResolveSelf(ctx, user.Principal{UserID: "u-2", Role: user.RoleEmployee})
		require.NoError(t, err)
		assert.Equal(t, emp.ID, again.ID)
		assert.Len(t, repo.byID, 2)
	})

	t.Run("falls back to a generated email when taken", func(t *testing.T) {
		users := &fakeUserRepo{users: map[string]user.User{
			"u-3": {ID: "u-3", Username: "budi2", Email: "budi@example.com", FirstName: "Budi"},
		}}
		svc := newService(newFakeEmployeeRepo(linked), users)

		emp, err := svc.ResolveSelf(ctx, user.Principal{UserID: "u-3", Role: user.RoleEmployee})
		require.NoError(t, err)
		assert.Equal(t, "budi2@company.com", emp.Email)
	})

	t.Run("hr account without a record", func(t *testing.T) {
		svc := newService(newFakeEmployeeRepo(), &fakeUserRepo{})
		_, err := svc.ResolveSelf(ctx, user.Principal{UserID: "u-hr", Role: user.RoleHR})
		assert.ErrorIs(t, err, employee.ErrNoLinkedEmployee)
	})
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Email: "taken@example.com"})
	svc := newService(repo, &fakeUserRepo{})

	req := employee.CreateEmployeeRequest{
		FirstName: "Rina", LastName: "Putri", Email: "rina@example.com",
		Position: "Engineer", Department: "IT", DateHired: "2023-05-02",
	}
	resp, err := svc.CreateEmployee(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Rina Putri", resp.FullName)
	assert.Equal(t, "2023-05-02", resp.DateHired)

	req.Email = "taken@example.com"
	_, err = svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	req.DateHired = "02-05-2023"
	_, err = svc.CreateEmployee(ctx, req)
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", FirstName: "A", Email: "a@example.com", Position: "Staff"},
		employee.Employee{ID: "emp-2", FirstName: "B", Email: "b@example.com"},
	)
	svc := newService(repo, &fakeUserRepo{})

	resp, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: "emp-1", Position: ptr("Lead"), Email: ptr("a@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "Lead", resp.Position)

	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: "emp-1", Email: ptr("b@example.com")})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: "missing", Position: ptr("X")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	svc := newService(newFakeEmployeeRepo(employee.Employee{ID: "emp-1"}), &fakeUserRepo{})

	require.NoError(t, svc.DeleteEmployee(context.Background(), "emp-1"))
	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), "emp-1"), employee.ErrEmployeeNotFound)
}

func TestUpdateMyProfile_SyncsUserEmail(t *testing.T) {
	repo := newFakeEmployeeRepo(employee.Employee{ID: "emp-1", UserID: ptr("u-1"), FirstName: "Old", Email: "old@example.com", Position: "Staff", Department: "Ops"})
	users := &fakeUserRepo{emailed: map[string]string{}}
	svc := newService(repo, users)

	resp, err := svc.UpdateMyProfile(context.Background(), user.Principal{UserID: "u-1", Role: user.RoleEmployee}, employee.UpdateProfileRequest{
		FirstName: "New", LastName: "Name", Email: "new@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", resp.FullName)
	assert.Equal(t, "Staff", resp.Position)
	assert.Equal(t, "new@example.com", users.emailed["u-1"])
}
