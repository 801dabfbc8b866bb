package attendance

import (
	"context"
	"time"
)

// Repository is the injected record provider. The engine itself is pure;
// every operation takes a snapshot produced by List and never writes
// back. Implementations must return records in insertion order.
type Repository interface {
	// List retrieves the records matching the criteria, in insertion order.
	List(ctx context.Context, criteria Criteria) ([]Record, error)

	// GetByDriverAndDate retrieves the single record for a driver on a
	// calendar day, or nil when none exists.
	GetByDriverAndDate(ctx context.Context, driverID string, day time.Time) (*Record, error)

	// Create inserts a new record. The (driver, date) pair must be unique.
	Create(ctx context.Context, record Record) (Record, error)

	// Upsert inserts the record or replaces the existing one for the same
	// (driver, date) pair. Records are replaced whole, never edited in place.
	Upsert(ctx context.Context, record Record) (Record, error)

	// BulkCreate inserts many records at once, used by the absence job.
	BulkCreate(ctx context.Context, records []Record) error

	// DeleteOlderThan prunes records before the cutoff day and reports
	// how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
