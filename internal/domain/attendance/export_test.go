package attendance

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVHeaderOnly(t *testing.T) {
	got := ExportCSV(nil)

	assert.Equal(t, "Driver ID,Driver Name,Date,Status,Work Hours,Timestamp,POC,Company ID\n", got)
}

func TestExportCSVRows(t *testing.T) {
	ts := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	r := record("1", "D001", "Budi", "2025-06-02", StatusPresent)
	r.WorkHours = strPtr("8h 0m")
	r.Timestamp = &ts
	r.POC = strPtr("Andi")
	r.CompanyID = strPtr("C1")

	got := ExportCSV([]Record{r})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "D001,Budi,2025-06-02,Present,8h 0m,2025-06-02 08:00:00,Andi,C1", lines[1])
}

func TestExportCSVMissingOptionalFieldsAreEmpty(t *testing.T) {
	r := record("1", "D001", "Budi", "2025-06-02", StatusAbsent)

	got := ExportCSV([]Record{r})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "D001,Budi,2025-06-02,Absent,,,,", lines[1])
}

func TestExportCSVPreservesOrder(t *testing.T) {
	records := []Record{
		record("1", "D002", "Siti", "2025-06-02", StatusLate),
		record("2", "D001", "Budi", "2025-06-01", StatusPresent),
	}

	got := ExportCSV(records)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "D002,"))
	assert.True(t, strings.HasPrefix(lines[2], "D001,"))
}

func TestExportCSVDoesNotEscapeCommas(t *testing.T) {
	r := record("1", "D001", "Budi, Jr.", "2025-06-02", StatusPresent)

	got := ExportCSV([]Record{r})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, "D001,Budi, Jr.,2025-06-02,Present,,,,", lines[1])
}
