package attendance

import "time"

// Filter returns the records satisfying every predicate in c, preserving
// the input order. It never mutates its input; an empty input yields an
// empty (non-nil) result.
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// RecordsOn selects the records falling on the given calendar day,
// preserving order.
func RecordsOn(records []Record, day time.Time) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if SameDay(r.Date, day) {
			out = append(out, r)
		}
	}
	return out
}
