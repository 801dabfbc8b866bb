package attendance

import "context"

// Service defines attendance queries for the dashboard calendar view.
type Service interface {
	// ListAttendance retrieves the filtered record set.
	ListAttendance(ctx context.Context, filter ListFilter) (ListRecordsResponse, error)

	// GetSummary computes period-level counts and the attendance rate.
	GetSummary(ctx context.Context, filter ListFilter) (SummaryResponse, error)

	// GetCalendar computes the summary plus one display cell per day in
	// the rendered range.
	GetCalendar(ctx context.Context, filter ListFilter) (CalendarResponse, error)

	// GetDailyDetail computes the drill-down for one clicked day.
	GetDailyDetail(ctx context.Context, date string, filter ListFilter) (DailyDetailResponse, error)

	// ExportAttendance serializes the filtered record set to delimited text.
	ExportAttendance(ctx context.Context, filter ListFilter) (string, error)

	// ArchiveRecords prunes records older than the given day, or older
	// than the retention window when no day is given.
	ArchiveRecords(ctx context.Context, before string) (ArchiveResponse, error)
}
