package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ListSummaries(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	UpdateDay(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListSummaries implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListSummaries(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Department: r.URL.Query().Get("department"),
		Name:       r.URL.Query().Get("name"),
	}

	summaries, err := h.attendanceService.ListSummaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, summaries)
}

// GetEmployeeAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	req := attendance.EmployeeAttendanceRequest{
		EmployeeID: employeeID,
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.attendanceService.GetEmployeeAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	record, err := h.attendanceService.GetDay(r.Context(), employeeID, chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// UpdateDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateDay(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeID", employee.ErrEmployeeNotFound)
	if !ok {
		return
	}

	var req attendance.UpdateDayRequest
	if !decodeJSON(w, r, &req, "UpdateDay") {
		return
	}
	req.EmployeeID = employeeID
	req.Date = chi.URLParam(r, "date")

	record, err := h.attendanceService.UpdateDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", record)
}

// DeleteRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", attendance.ErrAttendanceNotFound)
	if !ok {
		return
	}

	if err := h.attendanceService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}
