package attendance

import (
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/pkg/validator"
)

// ListFilter carries the raw filter input from the transport layer.
// Empty or "all" values mean unconstrained, matching the dashboard's
// filter dropdowns.
type ListFilter struct {
	DriverID  string `json:"driver_id,omitempty"`
	POC       string `json:"poc,omitempty"`
	CompanyID string `json:"company_id,omitempty"`
	StartDate string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, valid := validator.IsValidDate(f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" {
		if _, valid := validator.IsValidDate(f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" && f.StartDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required when end_date is set",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Criteria converts the raw filter to engine criteria. Validate must
// have passed first; malformed dates are dropped here, not rejected.
func (f *ListFilter) Criteria() Criteria {
	c := Criteria{}
	if selected(f.DriverID) {
		id := f.DriverID
		c.DriverID = &id
	}
	if selected(f.POC) {
		poc := f.POC
		c.POC = &poc
	}
	if selected(f.CompanyID) {
		companyID := f.CompanyID
		c.CompanyID = &companyID
	}
	if from, ok := validator.IsValidDate(f.StartDate); ok {
		c.Range.From = &from
	}
	if to, ok := validator.IsValidDate(f.EndDate); ok {
		c.Range.To = &to
	}
	return c
}

func selected(v string) bool {
	return v != "" && v != "all"
}

// RecordResponse is the JSON shape of a single attendance record.
type RecordResponse struct {
	ID         string  `json:"id"`
	DriverID   string  `json:"driver_id"`
	DriverName string  `json:"driver_name"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	WorkHours  *string `json:"work_hours,omitempty"`
	Timestamp  *string `json:"timestamp,omitempty"`
	POC        *string `json:"poc,omitempty"`
	CompanyID  *string `json:"company_id,omitempty"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		DriverID:   r.DriverID,
		DriverName: r.DriverName,
		Date:       r.Date.Format("2006-01-02"),
		Status:     string(r.Status),
		WorkHours:  r.WorkHours,
		Timestamp:  timestampPtrToString(r.Timestamp),
		POC:        r.POC,
		CompanyID:  r.CompanyID,
	}
}

func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordResponse(r))
	}
	return out
}

type ListRecordsResponse struct {
	TotalCount int              `json:"total_count"`
	Records    []RecordResponse `json:"records"`
}

// SummaryResponse is the period summary shown as dashboard tiles.
// The rate is a fixed one-decimal percentage string.
type SummaryResponse struct {
	PresentDays     int    `json:"present_days"`
	AbsentDays      int    `json:"absent_days"`
	LateDays        int    `json:"late_days"`
	DayOffs         int    `json:"day_offs"`
	NotLoggedInDays int    `json:"not_logged_in_days"`
	AttendanceRate  string `json:"attendance_rate"`
	TotalRecords    int    `json:"total_records"`
}

func NewSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		PresentDays:     s.PresentDays,
		AbsentDays:      s.AbsentDays,
		LateDays:        s.LateDays,
		DayOffs:         s.DayOffs,
		NotLoggedInDays: s.NotLoggedInDays,
		AttendanceRate:  s.FormatRate(),
		TotalRecords:    s.TotalRecords,
	}
}

// CalendarDayResponse is one rendered calendar cell.
type CalendarDayResponse struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	Label       string `json:"label,omitempty"`
	WorkHours   string `json:"work_hours,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	RecordCount int    `json:"record_count"`
}

func NewCalendarDayResponse(c DayCell) CalendarDayResponse {
	return CalendarDayResponse{
		Date:        c.Date.Format("2006-01-02"),
		Status:      string(c.Status),
		Label:       c.Label,
		WorkHours:   c.WorkHours,
		Timestamp:   c.Timestamp,
		RecordCount: c.RecordCount,
	}
}

type CalendarResponse struct {
	Summary SummaryResponse       `json:"summary"`
	Days    []CalendarDayResponse `json:"days"`
}

// DailyDetailResponse is the drill-down for one clicked day.
type DailyDetailResponse struct {
	Date           string           `json:"date"`
	AttendanceRate string           `json:"attendance_rate"`
	Records        []RecordResponse `json:"records"`
}

func NewDailyDetailResponse(d DailyDetail) DailyDetailResponse {
	return DailyDetailResponse{
		Date:           d.Date.Format("2006-01-02"),
		AttendanceRate: d.Rate,
		Records:        NewRecordResponses(d.Records),
	}
}

// ArchiveResponse reports the outcome of a pruning run.
type ArchiveResponse struct {
	RemovedCount int64  `json:"removed_count"`
	Cutoff       string `json:"cutoff"`
}

func timestampString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func timestampPtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}
