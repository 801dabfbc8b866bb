package driver

import (
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/validator"
)

type CreateDriverRequest struct {
	Name             string   `json:"name"`
	EmployeeID       string   `json:"employee_id"`
	CompanyID        string   `json:"company_id"`
	POC              string   `json:"poc"`
	Contact          *string  `json:"contact,omitempty"`
	ScheduledOffDays []string `json:"scheduled_off_days,omitempty"` // YYYY-MM-DD
}

func (r *CreateDriverRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must match the E000 convention",
		})
	}

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if r.Contact != nil && !validator.IsValidPhoneNumber(*r.Contact) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact",
			Message: "contact must be a valid phone number",
		})
	}

	for _, off := range r.ScheduledOffDays {
		if _, valid := validator.IsValidDate(off); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "scheduled_off_days",
				Message: "scheduled_off_days entries must be in YYYY-MM-DD format",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDriverRequest struct {
	ID               string    `json:"-"`
	Name             *string   `json:"name,omitempty"`
	CompanyID        *string   `json:"company_id,omitempty"`
	POC              *string   `json:"poc,omitempty"`
	Contact          *string   `json:"contact,omitempty"`
	ScheduledOffDays *[]string `json:"scheduled_off_days,omitempty"`
	NextWorkingDay   *string   `json:"next_working_day,omitempty"`
}

func (r *UpdateDriverRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Contact != nil && !validator.IsValidPhoneNumber(*r.Contact) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact",
			Message: "contact must be a valid phone number",
		})
	}

	if r.NextWorkingDay != nil {
		if _, valid := validator.IsValidDate(*r.NextWorkingDay); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "next_working_day",
				Message: "next_working_day must be in YYYY-MM-DD format",
			})
		}
	}

	if r.ScheduledOffDays != nil {
		for _, off := range *r.ScheduledOffDays {
			if _, valid := validator.IsValidDate(off); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   "scheduled_off_days",
					Message: "scheduled_off_days entries must be in YYYY-MM-DD format",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CheckInRequest updates a driver's presence using the wire vocabulary.
type CheckInRequest struct {
	DriverID       string  `json:"-"`
	PresenceStatus string  `json:"presence_status"`
	Location       *string `json:"location,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PresenceStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "presence_status",
			Message: "presence_status is required",
		})
	} else if !attendance.IsValidWireStatus(r.PresenceStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "presence_status",
			Message: "presence_status must be one of: not_checked_in, checked_in, on_break, off_duty, holiday, sick_leave, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows the roster listing.
type Filter struct {
	CompanyID string `json:"company_id,omitempty"`
	POC       string `json:"poc,omitempty"`
	Presence  string `json:"presence,omitempty"` // wire vocabulary
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Presence != "" && f.Presence != "all" && !attendance.IsValidWireStatus(f.Presence) {
		errs = append(errs, validator.ValidationError{
			Field:   "presence",
			Message: "presence must be one of: not_checked_in, checked_in, on_break, off_duty, holiday, sick_leave, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DriverResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	EmployeeID       string   `json:"employee_id"`
	CompanyID        string   `json:"company_id"`
	POC              string   `json:"poc"`
	Contact          *string  `json:"contact,omitempty"`
	Presence         string   `json:"presence"`
	PresenceStatus   string   `json:"presence_status"`
	ScheduledOffDays []string `json:"scheduled_off_days"`
	NextWorkingDay   *string  `json:"next_working_day,omitempty"`
	LastUpdate       *string  `json:"last_update,omitempty"`
	Location         *string  `json:"location,omitempty"`
}

func NewDriverResponse(d Driver) DriverResponse {
	offDays := make([]string, 0, len(d.ScheduledOffDays))
	for _, off := range d.ScheduledOffDays {
		offDays = append(offDays, off.Format("2006-01-02"))
	}

	return DriverResponse{
		ID:               d.ID,
		Name:             d.Name,
		EmployeeID:       d.EmployeeID,
		CompanyID:        d.CompanyID,
		POC:              d.POC,
		Contact:          d.Contact,
		Presence:         string(d.Presence),
		PresenceStatus:   d.Presence.Wire(),
		ScheduledOffDays: offDays,
		NextWorkingDay:   datePtrToString(d.NextWorkingDay),
		LastUpdate:       timePtrToString(d.LastUpdate),
		Location:         d.Location,
	}
}

func NewDriverResponses(drivers []Driver) []DriverResponse {
	out := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, NewDriverResponse(d))
	}
	return out
}

type ListDriversResponse struct {
	TotalCount int              `json:"total_count"`
	Drivers    []DriverResponse `json:"drivers"`
}

// HistoryResponse is a driver's last-N-days record slice plus summary.
type HistoryResponse struct {
	Driver  DriverResponse              `json:"driver"`
	Days    int                         `json:"days"`
	Records []attendance.RecordResponse `json:"records"`
	Summary attendance.SummaryResponse  `json:"summary"`
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}
