package attendance

import (
	"time"
)

// Record is one driver's attendance outcome for one calendar day.
// At most one record exists per (DriverID, Date) pair; Date is
// day-granular and compared by calendar day, never by instant.
type Record struct {
	ID         string
	DriverID   string
	DriverName string
	Date       time.Time
	Status     Status
	WorkHours  *string
	Timestamp  *time.Time
	POC        *string
	CompanyID  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DateRange selects calendar days. A nil To means the single day From;
// both nil means unconstrained.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls inside the range, by calendar day.
func (dr DateRange) Contains(t time.Time) bool {
	switch {
	case dr.From != nil && dr.To != nil:
		day := Day(t)
		return !day.Before(Day(*dr.From)) && !day.After(Day(*dr.To))
	case dr.From != nil:
		return SameDay(t, *dr.From)
	default:
		return true
	}
}

// DisplayMode selects how calendar cells are computed: one driver's
// record verbatim, or a rollup across every driver matching the filters.
type DisplayMode int

const (
	ModeAllDrivers DisplayMode = iota
	ModeSingleDriver
)

// Criteria narrows a record set. Nil pointer fields are unconstrained;
// all predicates are ANDed.
type Criteria struct {
	DriverID  *string
	POC       *string
	CompanyID *string
	Range     DateRange
}

// Mode derives the display mode from the driver selection.
func (c Criteria) Mode() DisplayMode {
	if c.DriverID != nil {
		return ModeSingleDriver
	}
	return ModeAllDrivers
}

// Matches reports whether r satisfies every predicate in c.
func (c Criteria) Matches(r Record) bool {
	if c.DriverID != nil && r.DriverID != *c.DriverID {
		return false
	}
	if c.POC != nil && (r.POC == nil || *r.POC != *c.POC) {
		return false
	}
	if c.CompanyID != nil && (r.CompanyID == nil || *r.CompanyID != *c.CompanyID) {
		return false
	}
	return c.Range.Contains(r.Date)
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
