package driver

import (
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
)

type Driver struct {
	ID               string
	Name             string
	EmployeeID       string
	CompanyID        string
	POC              string
	Contact          *string
	Presence         attendance.Status
	ScheduledOffDays []time.Time
	NextWorkingDay   *time.Time
	LastUpdate       *time.Time
	Location         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ScheduledOff reports whether the driver is expected off on the given
// calendar day. This is the source for deriving Day Off cells when no
// explicit record exists for that date.
func (d Driver) ScheduledOff(day time.Time) bool {
	for _, off := range d.ScheduledOffDays {
		if attendance.SameDay(off, day) {
			return true
		}
	}
	return false
}
