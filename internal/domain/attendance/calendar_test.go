package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRangeInclusive(t *testing.T) {
	from := day(t, "2025-06-01")
	to := day(t, "2025-06-05")

	days := RenderRange(DateRange{From: &from, To: &to}, time.Now())

	require.Len(t, days, 5)
	assert.Equal(t, from, days[0])
	assert.Equal(t, to, days[4])
}

func TestRenderRangeFromOnly(t *testing.T) {
	from := day(t, "2025-06-15")

	days := RenderRange(DateRange{From: &from}, time.Now())

	require.Len(t, days, 1)
	assert.Equal(t, from, days[0])
}

func TestRenderRangeInvertedCollapsesToFrom(t *testing.T) {
	from := day(t, "2025-06-15")
	to := day(t, "2025-06-01")

	days := RenderRange(DateRange{From: &from, To: &to}, time.Now())

	require.Len(t, days, 1)
	assert.Equal(t, from, days[0])
}

func TestRenderRangeDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.June, 17, 14, 30, 0, 0, time.UTC)

	days := RenderRange(DateRange{}, now)

	require.Len(t, days, 30)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), days[29])
}

func TestRenderRangeFebruary(t *testing.T) {
	now := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	days := RenderRange(DateRange{}, now)

	require.Len(t, days, 28)
}

func TestRenderRangeSingleDayRange(t *testing.T) {
	from := day(t, "2025-06-01")
	to := day(t, "2025-06-01")

	days := RenderRange(DateRange{From: &from, To: &to}, time.Now())

	require.Len(t, days, 1)
}
