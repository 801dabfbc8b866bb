package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCountsAndRate(t *testing.T) {
	records := []Record{
		record("1", "D001", "Budi", "2025-06-02", StatusPresent),
		record("2", "D002", "Siti", "2025-06-02", StatusLate),
		record("3", "D003", "Joko", "2025-06-02", StatusAbsent),
		record("4", "D004", "Rina", "2025-06-02", StatusNotLoggedIn),
	}

	s := Summarize(records, ModeAllDrivers, "")

	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.NotLoggedInDays)
	assert.Equal(t, 4, s.TotalRecords)
	// 2 attended out of 4 scheduled.
	assert.Equal(t, 50.0, s.AttendanceRate)
	assert.Equal(t, "50.0", s.FormatRate())
}

func TestSummarizeDayOffExcludedFromDenominator(t *testing.T) {
	records := []Record{
		record("1", "D001", "Budi", "2025-06-02", StatusPresent),
		record("2", "D001", "Budi", "2025-06-03", StatusDayOff),
	}

	s := Summarize(records, ModeSingleDriver, "D001")

	assert.Equal(t, 1, s.DayOffs)
	assert.Equal(t, 100.0, s.AttendanceRate)
}

func TestSummarizeNothingScheduledRateIsZero(t *testing.T) {
	s := Summarize(nil, ModeAllDrivers, "")

	assert.Equal(t, 0.0, s.AttendanceRate)
	assert.Equal(t, "0.0", s.FormatRate())
	assert.Equal(t, 0, s.TotalRecords)

	onlyOff := []Record{record("1", "D001", "Budi", "2025-06-02", StatusDayOff)}
	s = Summarize(onlyOff, ModeAllDrivers, "")

	assert.Equal(t, 0.0, s.AttendanceRate)
}

func TestSummarizeSingleModeRestrictsToDriver(t *testing.T) {
	records := []Record{
		record("1", "D001", "Budi", "2025-06-02", StatusPresent),
		record("2", "D002", "Siti", "2025-06-02", StatusAbsent),
	}

	s := Summarize(records, ModeSingleDriver, "D001")

	assert.Equal(t, 1, s.TotalRecords)
	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 0, s.AbsentDays)
	assert.Equal(t, 100.0, s.AttendanceRate)
}

func TestSummarizeCountersSumToTotal(t *testing.T) {
	records := []Record{
		record("1", "D001", "Budi", "2025-06-02", StatusPresent),
		record("2", "D002", "Siti", "2025-06-02", StatusOnBreak),
		record("3", "D003", "Joko", "2025-06-02", StatusSickLeave),
		record("4", "D004", "Rina", "2025-06-02", StatusHoliday),
		record("5", "D005", "Agus", "2025-06-02", StatusDayOff),
		record("6", "D006", "Dewi", "2025-06-02", StatusLate),
	}

	s := Summarize(records, ModeAllDrivers, "")

	sum := s.PresentDays + s.AbsentDays + s.LateDays + s.DayOffs + s.NotLoggedInDays
	assert.Equal(t, s.TotalRecords, sum)
	assert.GreaterOrEqual(t, s.AttendanceRate, 0.0)
	assert.LessOrEqual(t, s.AttendanceRate, 100.0)
}

func TestDayStatusSingleDriverRecordWinsVerbatim(t *testing.T) {
	ts := time.Date(2025, 6, 2, 8, 15, 0, 0, time.UTC)
	r := record("1", "D001", "Budi", "2025-06-02", StatusLate)
	r.WorkHours = strPtr("7h 45m")
	r.Timestamp = &ts

	cell := DayStatus(day(t, "2025-06-02"), []Record{r}, ModeSingleDriver, "D001", nil)

	assert.Equal(t, StatusLate, cell.Status)
	assert.Equal(t, "Late", cell.Label)
	assert.Equal(t, "7h 45m", cell.WorkHours)
	assert.Equal(t, "2025-06-02 08:15:00", cell.Timestamp)
	assert.Equal(t, 1, cell.RecordCount)
}

func TestDayStatusSingleDriverScheduledOffDerivesDayOff(t *testing.T) {
	off := day(t, "2025-06-02")

	cell := DayStatus(off, nil, ModeSingleDriver, "D001", []time.Time{off})

	assert.Equal(t, StatusDayOff, cell.Status)
	assert.Equal(t, "Day Off", cell.Label)
}

func TestDayStatusSingleDriverNoRecordNoSchedule(t *testing.T) {
	cell := DayStatus(day(t, "2025-06-02"), nil, ModeSingleDriver, "D001", nil)

	assert.Equal(t, StatusNotLoggedIn, cell.Status)
	assert.Equal(t, "N/A", cell.Label)
	assert.Equal(t, 0, cell.RecordCount)
}

func TestDayStatusSingleDriverExistingRecordBeatsSchedule(t *testing.T) {
	off := day(t, "2025-06-02")
	r := record("1", "D001", "Budi", "2025-06-02", StatusPresent)

	cell := DayStatus(off, []Record{r}, ModeSingleDriver, "D001", []time.Time{off})

	assert.Equal(t, StatusPresent, cell.Status)
}

func TestDayStatusRollupPriority(t *testing.T) {
	cases := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"present beats late", []Status{StatusLate, StatusPresent}, StatusPresent},
		{"late beats day off and absent", []Status{StatusAbsent, StatusLate, StatusDayOff}, StatusLate},
		{"day off beats absent", []Status{StatusAbsent, StatusDayOff}, StatusDayOff},
		{"absent beats not logged in", []Status{StatusNotLoggedIn, StatusAbsent}, StatusAbsent},
		{"only unranked statuses", []Status{StatusNotLoggedIn, StatusOnBreak}, StatusNotLoggedIn},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := make([]Record, 0, len(tc.statuses))
			for i, st := range tc.statuses {
				records = append(records, record(string(rune('a'+i)), "D00"+string(rune('1'+i)), "X", "2025-06-02", st))
			}

			cell := DayStatus(day(t, "2025-06-02"), records, ModeAllDrivers, "", nil)

			assert.Equal(t, tc.want, cell.Status)
			assert.Equal(t, len(records), cell.RecordCount)
		})
	}
}

func TestDayStatusRollupEmptyDay(t *testing.T) {
	cell := DayStatus(day(t, "2025-06-02"), nil, ModeAllDrivers, "", nil)

	assert.Equal(t, StatusNotLoggedIn, cell.Status)
	assert.Equal(t, 0, cell.RecordCount)
}

func TestDrillDownRate(t *testing.T) {
	records := []Record{
		record("1", "D001", "Budi", "2025-06-02", StatusPresent),
		record("2", "D002", "Siti", "2025-06-02", StatusLate),
		record("3", "D003", "Joko", "2025-06-02", StatusAbsent),
		record("4", "D004", "Rina", "2025-06-02", StatusNotLoggedIn),
		record("5", "D005", "Agus", "2025-06-02", StatusDayOff),
	}

	detail := DrillDown(day(t, "2025-06-02"), records)

	require.Len(t, detail.Records, 5)
	// 2 attended out of 4 scheduled; the day off does not count.
	assert.Equal(t, "50.0%", detail.Rate)
}

func TestDrillDownNothingScheduledReadsNA(t *testing.T) {
	detail := DrillDown(day(t, "2025-06-02"), nil)

	assert.Equal(t, "N/A", detail.Rate)
	assert.Empty(t, detail.Records)

	onlyOff := []Record{record("1", "D001", "Budi", "2025-06-02", StatusDayOff)}
	detail = DrillDown(day(t, "2025-06-02"), onlyOff)

	assert.Equal(t, "N/A", detail.Rate)
	assert.Len(t, detail.Records, 1)
}

func TestDrillDownIgnoresOtherDays(t *testing.T) {
	records := []Record{
		record("1", "D001", "Budi", "2025-06-02", StatusPresent),
		record("2", "D001", "Budi", "2025-06-03", StatusAbsent),
	}

	detail := DrillDown(day(t, "2025-06-02"), records)

	require.Len(t, detail.Records, 1)
	assert.Equal(t, "100.0%", detail.Rate)
}
