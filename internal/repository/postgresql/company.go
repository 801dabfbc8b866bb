package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/company"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `id, name, present_count, absent_count, total_drivers, present_percentage, created_at, updated_at`

// List implements company.Repository.
func (r *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// GetByID implements company.Repository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCompany(q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

// ExistsByName implements company.Repository.
func (r *companyRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements company.Repository.
func (r *companyRepositoryImpl) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (id, name)
		VALUES ($1, $2)
		RETURNING ` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query, c.ID, c.Name))
	if err != nil {
		if isUniqueViolation(err) {
			return company.Company{}, company.ErrNameExists
		}
		return company.Company{}, err
	}
	return created, nil
}

// Update implements company.Repository.
func (r *companyRepositoryImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := "UPDATE companies SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		if isUniqueViolation(err) {
			return company.ErrNameExists
		}
		return err
	}
	return nil
}

// UpdateSummary implements company.Repository.
func (r *companyRepositoryImpl) UpdateSummary(ctx context.Context, id string, presentCount, absentCount, totalDrivers int, presentPercentage float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET present_count = $1, absent_count = $2, total_drivers = $3, present_percentage = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, presentCount, absentCount, totalDrivers, presentPercentage, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return err
	}
	return nil
}

// Delete implements company.Repository.
func (r *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.PresentCount, &c.AbsentCount,
		&c.TotalDrivers, &c.PresentPercentage, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return company.Company{}, err
	}
	return c, nil
}
