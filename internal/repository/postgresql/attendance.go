package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const recordColumns = `id, driver_id, driver_name, date, status, work_hours, ts, poc, company_id, created_at, updated_at`

// List implements attendance.Repository. The SQL narrows the set, then
// the rows are run through the canonical predicates so the database and
// in-memory filters cannot disagree on edge cases.
func (r *attendanceRepositoryImpl) List(ctx context.Context, criteria attendance.Criteria) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE 1=1`
	args := []interface{}{}

	if criteria.DriverID != nil {
		args = append(args, *criteria.DriverID)
		query += fmt.Sprintf(" AND driver_id = $%d", len(args))
	}
	if criteria.POC != nil {
		args = append(args, *criteria.POC)
		query += fmt.Sprintf(" AND poc = $%d", len(args))
	}
	if criteria.CompanyID != nil {
		args = append(args, *criteria.CompanyID)
		query += fmt.Sprintf(" AND company_id = $%d", len(args))
	}
	if criteria.Range.From != nil && criteria.Range.To != nil {
		args = append(args, attendance.Day(*criteria.Range.From))
		query += fmt.Sprintf(" AND date >= $%d", len(args))
		args = append(args, attendance.Day(*criteria.Range.To))
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	} else if criteria.Range.From != nil {
		args = append(args, attendance.Day(*criteria.Range.From))
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}

	query += " ORDER BY created_at, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attendance.Filter(records, criteria), nil
}

// GetByDriverAndDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByDriverAndDate(ctx context.Context, driverID string, day time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE driver_id = $1 AND date = $2`

	rec, err := scanRecord(q.QueryRow(ctx, query, driverID, attendance.Day(day)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Create implements attendance.Repository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, driver_id, driver_name, date, status, work_hours, ts, poc, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + recordColumns

	created, err := scanRecord(q.QueryRow(ctx, query,
		record.ID, record.DriverID, record.DriverName, attendance.Day(record.Date),
		string(record.Status), record.WorkHours, record.Timestamp, record.POC, record.CompanyID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, err
	}
	return created, nil
}

// Upsert implements attendance.Repository. The row is replaced whole so
// stale fields from an earlier check-in cannot survive.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, driver_id, driver_name, date, status, work_hours, ts, poc, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (driver_id, date) DO UPDATE SET
			driver_name = EXCLUDED.driver_name,
			status = EXCLUDED.status,
			work_hours = EXCLUDED.work_hours,
			ts = EXCLUDED.ts,
			poc = EXCLUDED.poc,
			company_id = EXCLUDED.company_id,
			updated_at = NOW()
		RETURNING ` + recordColumns

	return scanRecord(q.QueryRow(ctx, query,
		record.ID, record.DriverID, record.DriverName, attendance.Day(record.Date),
		string(record.Status), record.WorkHours, record.Timestamp, record.POC, record.CompanyID,
	))
}

// BulkCreate implements attendance.Repository.
func (r *attendanceRepositoryImpl) BulkCreate(ctx context.Context, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, driver_id, driver_name, date, status, work_hours, ts, poc, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (driver_id, date) DO NOTHING
	`

	for _, record := range records {
		_, err := q.Exec(ctx, query,
			record.ID, record.DriverID, record.DriverName, attendance.Day(record.Date),
			string(record.Status), record.WorkHours, record.Timestamp, record.POC, record.CompanyID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record for driver %s: %w", record.DriverID, err)
		}
	}

	return nil
}

// DeleteOlderThan implements attendance.Repository.
func (r *attendanceRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE date < $1`, attendance.Day(cutoff))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var status string
	err := row.Scan(
		&rec.ID, &rec.DriverID, &rec.DriverName, &rec.Date, &status,
		&rec.WorkHours, &rec.Timestamp, &rec.POC, &rec.CompanyID,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	rec.Status = attendance.Status(status)
	return rec, nil
}
