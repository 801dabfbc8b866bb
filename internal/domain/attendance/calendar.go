package attendance

import "time"

// RenderRange expands a date range into the inclusive list of calendar
// days to render. Missing bounds fall back as follows: only From means
// the single day From; neither bound means the current calendar month
// of now. A To earlier than From collapses to the single day From —
// the range is treated as malformed, not as an error.
func RenderRange(dr DateRange, now time.Time) []time.Time {
	var start, end time.Time

	switch {
	case dr.From == nil:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
	case dr.To == nil:
		start = Day(*dr.From)
		end = start
	case Day(*dr.To).Before(Day(*dr.From)):
		start = Day(*dr.From)
		end = start
	default:
		start = Day(*dr.From)
		end = Day(*dr.To)
	}

	days := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
