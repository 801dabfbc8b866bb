package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/driver"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type driverRepositoryImpl struct {
	db *database.DB
}

func NewDriverRepository(db *database.DB) driver.Repository {
	return &driverRepositoryImpl{db: db}
}

const driverColumns = `id, name, employee_id, company_id, poc, contact, presence, scheduled_off_days, next_working_day, last_update, location, created_at, updated_at`

// List implements driver.Repository.
func (r *driverRepositoryImpl) List(ctx context.Context, filter driver.Filter) ([]driver.Driver, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE 1=1`
	args := []interface{}{}

	if filter.CompanyID != "" && filter.CompanyID != "all" {
		args = append(args, filter.CompanyID)
		query += fmt.Sprintf(" AND company_id = $%d", len(args))
	}
	if filter.POC != "" && filter.POC != "all" {
		args = append(args, filter.POC)
		query += fmt.Sprintf(" AND poc = $%d", len(args))
	}
	if filter.Presence != "" && filter.Presence != "all" {
		// The presence filter arrives in the wire vocabulary; rows store
		// display statuses. checked_in covers both Present and Late.
		display := attendance.StatusFromWire(filter.Presence)
		statuses := []string{string(display)}
		if display == attendance.StatusPresent {
			statuses = append(statuses, string(attendance.StatusLate))
		}
		args = append(args, statuses)
		query += fmt.Sprintf(" AND presence = ANY($%d)", len(args))
	}

	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []driver.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

// GetByID implements driver.Repository.
func (r *driverRepositoryImpl) GetByID(ctx context.Context, id string) (driver.Driver, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	d, err := scanDriver(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return driver.Driver{}, driver.ErrDriverNotFound
		}
		return driver.Driver{}, err
	}
	return d, nil
}

// ExistsByEmployeeID implements driver.Repository.
func (r *driverRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM drivers WHERE employee_id = $1)`, employeeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements driver.Repository.
func (r *driverRepositoryImpl) Create(ctx context.Context, d driver.Driver) (driver.Driver, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO drivers (id, name, employee_id, company_id, poc, contact, presence, scheduled_off_days, next_working_day, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + driverColumns

	created, err := scanDriver(q.QueryRow(ctx, query,
		d.ID, d.Name, d.EmployeeID, d.CompanyID, d.POC, d.Contact,
		string(d.Presence), offDaysToDates(d.ScheduledOffDays), d.NextWorkingDay, d.Location,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return driver.Driver{}, driver.ErrEmployeeIDExists
		}
		return driver.Driver{}, err
	}
	return created, nil
}

// Update implements driver.Repository.
func (r *driverRepositoryImpl) Update(ctx context.Context, id string, req driver.UpdateDriverRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.CompanyID != nil {
		updates = append(updates, fmt.Sprintf("company_id = $%d", argIdx))
		args = append(args, *req.CompanyID)
		argIdx++
	}
	if req.POC != nil {
		updates = append(updates, fmt.Sprintf("poc = $%d", argIdx))
		args = append(args, *req.POC)
		argIdx++
	}
	if req.Contact != nil {
		updates = append(updates, fmt.Sprintf("contact = $%d", argIdx))
		args = append(args, *req.Contact)
		argIdx++
	}
	if req.ScheduledOffDays != nil {
		offDays := make([]time.Time, 0, len(*req.ScheduledOffDays))
		for _, v := range *req.ScheduledOffDays {
			day, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fmt.Errorf("invalid scheduled off day %q: %w", v, err)
			}
			offDays = append(offDays, day)
		}
		updates = append(updates, fmt.Sprintf("scheduled_off_days = $%d", argIdx))
		args = append(args, offDays)
		argIdx++
	}
	if req.NextWorkingDay != nil {
		day, err := time.Parse("2006-01-02", *req.NextWorkingDay)
		if err != nil {
			return fmt.Errorf("invalid next working day %q: %w", *req.NextWorkingDay, err)
		}
		updates = append(updates, fmt.Sprintf("next_working_day = $%d", argIdx))
		args = append(args, day)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := "UPDATE drivers SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return driver.ErrDriverNotFound
		}
		return err
	}
	return nil
}

// SetPresence implements driver.Repository.
func (r *driverRepositoryImpl) SetPresence(ctx context.Context, id string, presence attendance.Status, location *string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE drivers
		SET presence = $1, location = COALESCE($2, location), last_update = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, string(presence), location, at, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return driver.ErrDriverNotFound
		}
		return err
	}
	return nil
}

// Delete implements driver.Repository.
func (r *driverRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return driver.ErrDriverNotFound
	}
	return nil
}

func scanDriver(row pgx.Row) (driver.Driver, error) {
	var d driver.Driver
	var presence string
	err := row.Scan(
		&d.ID, &d.Name, &d.EmployeeID, &d.CompanyID, &d.POC, &d.Contact,
		&presence, &d.ScheduledOffDays, &d.NextWorkingDay, &d.LastUpdate,
		&d.Location, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return driver.Driver{}, err
	}
	d.Presence = attendance.Status(presence)
	return d, nil
}

func offDaysToDates(offDays []time.Time) []time.Time {
	out := make([]time.Time, 0, len(offDays))
	for _, off := range offDays {
		out = append(out, attendance.Day(off))
	}
	return out
}
