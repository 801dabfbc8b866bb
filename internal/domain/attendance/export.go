package attendance

import "strings"

// ExportFilename is the download name consumers attach to exports.
const ExportFilename = "attendance_export.csv"

const exportHeader = "Driver ID,Driver Name,Date,Status,Work Hours,Timestamp,POC,Company ID"

// ExportCSV serializes records to delimited text in the order given.
// The header row is always emitted, even for zero records. Absent
// optional fields are written as empty strings. Field values are written
// as-is: commas inside names are not escaped, since downstream consumers
// parse the fixed 8-column header positionally.
func ExportCSV(records []Record) string {
	var b strings.Builder
	b.WriteString(exportHeader)
	b.WriteByte('\n')

	for _, r := range records {
		fields := []string{
			r.DriverID,
			r.DriverName,
			r.Date.Format("2006-01-02"),
			string(r.Status),
			strDeref(r.WorkHours),
			timestampString(r.Timestamp),
			strDeref(r.POC),
			strDeref(r.CompanyID),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
