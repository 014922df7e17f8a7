package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
)

type ReportHandler interface {
	// PreviewAttendance returns the attendance grid as JSON
	PreviewAttendance(w http.ResponseWriter, r *http.Request)
	// ExportAttendance streams the grid as a CSV or XLSX download
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func exportFilterFrom(r *http.Request) report.ExportFilter {
	q := r.URL.Query()
	return report.ExportFilter{
		StartDate:    q.Get("start_date"),
		EndDate:      q.Get("end_date"),
		Department:   q.Get("department"),
		EmployeeName: q.Get("employee_name"),
		Month:        q.Get("month"),
		Format:       q.Get("format"),
	}
}

// PreviewAttendance handles GET /reports/attendance
func (h *reportHandlerImpl) PreviewAttendance(w http.ResponseWriter, r *http.Request) {
	table, err := h.reportService.PreviewAttendance(r.Context(), exportFilterFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, table)
}

// ExportAttendance handles GET /reports/attendance/export
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ExportAttendance(r.Context(), exportFilterFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}
