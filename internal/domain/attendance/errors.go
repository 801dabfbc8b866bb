package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicateRecord = errors.New("an attendance record already exists for this driver and date")
)
