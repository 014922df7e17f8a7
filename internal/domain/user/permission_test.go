package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"hr exports reports", RoleHR, PermissionReportsExport, true},
		{"hr approves leave", RoleHR, PermissionLeaveApprove, true},
		{"hr manages holidays", RoleHR, PermissionHolidayManage, true},
		{"employee cannot export", RoleEmployee, PermissionReportsExport, false},
		{"employee cannot approve leave", RoleEmployee, PermissionLeaveApprove, false},
		{"employee cannot view all attendance", RoleEmployee, PermissionAttendanceViewAll, false},
		{"employee applies for leave", RoleEmployee, PermissionLeaveCreate, true},
		{"employee views own attendance", RoleEmployee, PermissionAttendanceViewOwn, true},
		{"unknown role has nothing", Role("guest"), PermissionViewOwnProfile, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestPrincipal_Can(t *testing.T) {
	hr := Principal{UserID: "u1", Role: RoleHR}
	emp := Principal{UserID: "u2", EmployeeID: "e2", Role: RoleEmployee}

	assert.True(t, hr.Can(PermissionEmployeeManage))
	assert.False(t, emp.Can(PermissionEmployeeManage))
}
