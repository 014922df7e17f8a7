package report

import "context"

type ReportService interface {
	// PreviewAttendance builds the attendance grid as JSON-ready data.
	PreviewAttendance(ctx context.Context, filter ExportFilter) (ExportTable, error)
	// ExportAttendance renders the same grid as a CSV or XLSX file.
	ExportAttendance(ctx context.Context, filter ExportFilter) (ExportFile, error)
}
