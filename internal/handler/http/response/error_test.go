package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", validator.ValidationErrors{{Field: "status", Message: "bad"}}, http.StatusUnprocessableEntity},
		{"wrapped not found", fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound), http.StatusNotFound},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"holiday exists", holiday.ErrHolidayExists, http.StatusConflict},
		{"duplicate email", employee.ErrEmailExists, http.StatusConflict},
		{"already processed", leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict},
		{"attendance range", attendance.ErrInvalidDateRange, http.StatusBadRequest},
		{"report range", report.ErrInvalidDateRange, http.StatusBadRequest},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)

			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleError_RangeMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, report.ErrInvalidDateRange)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "end date must not be before start date", body.Error.Message)
}
