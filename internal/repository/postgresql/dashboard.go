package postgresql

import (
	"context"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/dashboard"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

// CountDriversByPresence implements dashboard.Repository.
func (r *dashboardRepositoryImpl) CountDriversByPresence(ctx context.Context) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT presence, COUNT(*) FROM drivers GROUP BY presence`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var presence string
		var count int
		if err := rows.Scan(&presence, &count); err != nil {
			return nil, err
		}
		counts[attendance.Status(presence)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
