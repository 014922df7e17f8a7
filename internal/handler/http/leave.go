package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	ListPendingRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)

	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ApplyMyRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func parseLeaveStatus(raw string) (*leave.Status, error) {
	if raw == "" {
		return nil, nil
	}
	for _, s := range []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected} {
		if strings.EqualFold(raw, string(s)) {
			return &s, nil
		}
	}
	return nil, validator.ValidationErrors{{Field: "status", Message: "status must be one of Pending, Approved, Rejected"}}
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	status, err := parseLeaveStatus(r.URL.Query().Get("status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := leave.LeaveRequestFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     status,
	}

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, requests)
}

// ListPendingRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	pending := leave.StatusPending
	requests, err := l.leaveService.ListLeaveRequests(r.Context(), leave.LeaveRequestFilter{Status: &pending})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, requests)
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(w, r, "id", leave.ErrLeaveRequestNotFound)
	if !ok {
		return
	}

	leaveRequest, err := l.leaveService.GetLeaveRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaveRequest)
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if !decodeJSON(w, r, &req, "CreateRequest") {
		return
	}

	created, err := l.leaveService.CreateForEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", created)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(w, r, "id", leave.ErrLeaveRequestNotFound)
	if !ok {
		return
	}

	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	decision, err := l.leaveService.Approve(r.Context(), principal, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", decision)
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(w, r, "id", leave.ErrLeaveRequestNotFound)
	if !ok {
		return
	}

	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	decision, err := l.leaveService.Reject(r.Context(), principal, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", decision)
}

// DeleteRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(w, r, "id", leave.ErrLeaveRequestNotFound)
	if !ok {
		return
	}

	if err := l.leaveService.DeleteLeaveRequest(r.Context(), requestID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := l.leaveService.ListMyLeaveRequests(r.Context(), principal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, requests)
}

// ApplyMyRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApplyMyRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.ApplyLeaveRequest
	if !decodeJSON(w, r, &req, "ApplyMyRequest") {
		return
	}

	created, err := l.leaveService.Apply(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", created)
}
