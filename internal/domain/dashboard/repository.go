package dashboard

import (
	"context"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
)

// Repository provides the read-only roster aggregates the admin
// dashboard is built from.
type Repository interface {
	// CountDriversByPresence returns driver counts grouped by current
	// presence status.
	CountDriversByPresence(ctx context.Context) (map[attendance.Status]int, error)
}
