package attendance

import (
	"math"
	"strconv"
	"time"
)

// Summary holds period-level counts over a filtered record set. The five
// core counters always sum to TotalRecords; extended statuses (On Break,
// Off Duty, Holiday, Sick Leave) are tallied under NotLoggedInDays since
// they carry no check-in of their own.
type Summary struct {
	PresentDays     int
	AbsentDays      int
	LateDays        int
	DayOffs         int
	NotLoggedInDays int
	AttendanceRate  float64
	TotalRecords    int
}

// FormatRate renders the rate as a fixed one-decimal percentage string.
func (s Summary) FormatRate() string {
	return strconv.FormatFloat(s.AttendanceRate, 'f', 1, 64)
}

// Summarize computes the period summary for a filtered record set. In
// single-driver mode the set is restricted to that driver first. Days
// off are excluded from the rate denominator: a day off is not a missed
// obligation. With nothing scheduled the rate degrades to 0.0.
func Summarize(records []Record, mode DisplayMode, driverID string) Summary {
	relevant := records
	if mode == ModeSingleDriver {
		relevant = make([]Record, 0, len(records))
		for _, r := range records {
			if r.DriverID == driverID {
				relevant = append(relevant, r)
			}
		}
	}

	var s Summary
	for _, r := range relevant {
		switch r.Status {
		case StatusPresent:
			s.PresentDays++
		case StatusAbsent:
			s.AbsentDays++
		case StatusLate:
			s.LateDays++
		case StatusDayOff:
			s.DayOffs++
		default:
			s.NotLoggedInDays++
		}
	}
	s.TotalRecords = len(relevant)

	attendedDays := s.PresentDays + s.LateDays
	scheduledToWork := s.TotalRecords - s.DayOffs
	if scheduledToWork > 0 {
		s.AttendanceRate = round1(float64(attendedDays) / float64(scheduledToWork) * 100)
	}
	return s
}

// DayCell is the display status of one calendar day. Every day resolves
// to exactly one status, never "unknown".
type DayCell struct {
	Date        time.Time
	Status      Status
	Label       string
	WorkHours   string
	Timestamp   string
	RecordCount int
}

// rollupPriority is the fixed order used to pick one representative
// status for a cell when several drivers reported on the same day.
var rollupPriority = []Status{StatusPresent, StatusLate, StatusDayOff, StatusAbsent}

// DayStatus resolves the display status of one calendar day from the
// already-filtered record set. In single-driver mode an existing record
// wins verbatim, then the driver's scheduled off days derive Day Off,
// otherwise the day shows Not Logged In with no auxiliary info. In
// all-drivers mode the highest-priority status among the day's records
// wins and the auxiliary info is a record count.
func DayStatus(day time.Time, filtered []Record, mode DisplayMode, driverID string, scheduledOffDays []time.Time) DayCell {
	cell := DayCell{Date: Day(day), Status: StatusNotLoggedIn}
	dayRecords := RecordsOn(filtered, day)

	if mode == ModeSingleDriver {
		for _, r := range dayRecords {
			if r.DriverID != driverID {
				continue
			}
			cell.Status = r.Status
			cell.Label = string(r.Status)
			if r.WorkHours != nil {
				cell.WorkHours = *r.WorkHours
			}
			if r.Timestamp != nil {
				cell.Timestamp = r.Timestamp.Format("2006-01-02 15:04:05")
			}
			cell.RecordCount = 1
			return cell
		}
		for _, off := range scheduledOffDays {
			if SameDay(off, day) {
				cell.Status = StatusDayOff
				cell.Label = string(StatusDayOff)
				return cell
			}
		}
		cell.Label = "N/A"
		return cell
	}

	cell.RecordCount = len(dayRecords)
	if len(dayRecords) == 0 {
		return cell
	}
	for _, candidate := range rollupPriority {
		for _, r := range dayRecords {
			if r.Status == candidate {
				cell.Status = candidate
				return cell
			}
		}
	}
	return cell
}

// DailyDetail is the drill-down for one day: the matching records plus
// the day's attendance rate. Unlike Summary, the rate is a string so a
// day with nothing scheduled reads "N/A" instead of a numeric zero.
type DailyDetail struct {
	Date    time.Time
	Records []Record
	Rate    string
}

// DrillDown computes the day-level detail from the filtered record set.
func DrillDown(day time.Time, filtered []Record) DailyDetail {
	dayRecords := RecordsOn(filtered, day)

	attendedCount := 0
	scheduledToWork := 0
	for _, r := range dayRecords {
		if r.Status.Attended() {
			attendedCount++
		}
		if r.Status != StatusDayOff {
			scheduledToWork++
		}
	}

	rate := "N/A"
	if scheduledToWork > 0 {
		rate = strconv.FormatFloat(round1(float64(attendedCount)/float64(scheduledToWork)*100), 'f', 1, 64) + "%"
	}

	return DailyDetail{Date: Day(day), Records: dayRecords, Rate: rate}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
