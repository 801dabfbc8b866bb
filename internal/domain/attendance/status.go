package attendance

// Status is the categorical attendance state of a driver for one day.
type Status string

const (
	StatusPresent     Status = "Present"
	StatusAbsent      Status = "Absent"
	StatusLate        Status = "Late"
	StatusNotLoggedIn Status = "Not Logged In"
	StatusDayOff      Status = "Day Off"
	StatusOnBreak     Status = "On Break"
	StatusOffDuty     Status = "Off Duty"
	StatusHoliday     Status = "Holiday"
	StatusSickLeave   Status = "Sick Leave"
)

// AllStatuses lists every display status the engine understands.
var AllStatuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusLate,
	StatusNotLoggedIn,
	StatusDayOff,
	StatusOnBreak,
	StatusOffDuty,
	StatusHoliday,
	StatusSickLeave,
}

// WireStatuses lists the wire presence vocabulary in display order.
var WireStatuses = []string{
	"not_checked_in",
	"checked_in",
	"on_break",
	"off_duty",
	"holiday",
	"sick_leave",
	"absent",
}

// wireToDisplay is the single source of truth for the presence
// vocabulary used on the wire. The reverse direction is derived from it
// so the two mappings cannot drift.
var wireToDisplay = map[string]Status{
	"not_checked_in": StatusNotLoggedIn,
	"checked_in":     StatusPresent,
	"on_break":       StatusOnBreak,
	"off_duty":       StatusOffDuty,
	"holiday":        StatusHoliday,
	"sick_leave":     StatusSickLeave,
	"absent":         StatusAbsent,
}

var displayToWire = func() map[Status]string {
	m := make(map[Status]string, len(wireToDisplay)+1)
	for wire, display := range wireToDisplay {
		m[display] = wire
	}
	// Late has no wire counterpart; it round-trips as a regular check-in.
	m[StatusLate] = "checked_in"
	return m
}()

// StatusFromWire translates a wire presence value to its display status.
// Unknown values degrade to Not Logged In.
func StatusFromWire(wire string) Status {
	if display, ok := wireToDisplay[wire]; ok {
		return display
	}
	return StatusNotLoggedIn
}

// Wire translates a display status to the wire vocabulary. Statuses with
// no wire counterpart serialize as not_checked_in.
func (s Status) Wire() string {
	if wire, ok := displayToWire[s]; ok {
		return wire
	}
	return "not_checked_in"
}

// IsValidWireStatus reports whether wire is a known presence value.
func IsValidWireStatus(wire string) bool {
	_, ok := wireToDisplay[wire]
	return ok
}

// Valid reports whether s is one of the enumerated display statuses.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Attended reports whether s counts toward the attendance rate numerator.
func (s Status) Attended() bool {
	return s == StatusPresent || s == StatusLate
}
