package resourceRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"xoadvisor/database"
	"xoadvisor/models"
)

// PostgresResourceRepo implements ResourceRepository on the resources table.
type PostgresResourceRepo struct {
	db *sql.DB
}

func NewPostgresResourceRepo(db *sql.DB) *PostgresResourceRepo {
	return &PostgresResourceRepo{db: db}
}

const selectColumns = `SELECT id, category, title, description, organization,
	contact_phone, contact_email, website_url, address, is_active, created_at, updated_at
	FROM resources`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (models.Resource, error) {
	var (
		res                          models.Resource
		phone, email, website, addr sql.NullString
	)
	err := row.Scan(&res.ID, &res.Category, &res.Title, &res.Description, &res.Organization,
		&phone, &email, &website, &addr, &res.IsActive, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return res, err
	}
	res.ContactPhone = database.StringPtr(phone)
	res.ContactEmail = database.StringPtr(email)
	res.WebsiteURL = database.StringPtr(website)
	res.Address = database.StringPtr(addr)
	return res, nil
}

func (r *PostgresResourceRepo) query(ctx context.Context, q string, args ...any) ([]models.Resource, error) {
	ctx, cancel := database.NewContext(ctx, database.ListTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to decode resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}
	return resources, nil
}

func (r *PostgresResourceRepo) ListActive(ctx context.Context) ([]models.Resource, error) {
	return r.query(ctx, selectColumns+` WHERE is_active = TRUE ORDER BY category ASC, title ASC`)
}

func (r *PostgresResourceRepo) ListAll(ctx context.Context) ([]models.Resource, error) {
	return r.query(ctx, selectColumns+` ORDER BY created_at DESC`)
}

func (r *PostgresResourceRepo) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	res, err := scanResource(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("resource %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resource with id %s: %w", id, err)
	}
	return &res, nil
}

func (r *PostgresResourceRepo) Create(ctx context.Context, res *models.Resource) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO resources
		(id, category, title, description, organization, contact_phone, contact_email,
		 website_url, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		res.ID, string(res.Category), res.Title, res.Description, res.Organization,
		database.NullString(res.ContactPhone), database.NullString(res.ContactEmail),
		database.NullString(res.WebsiteURL), database.NullString(res.Address),
		res.IsActive, res.CreatedAt, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

func (r *PostgresResourceRepo) Update(ctx context.Context, id string, fields database.Fields) error {
	q, args, err := database.BuildUpdate(collectionName, updatable, fields, id)
	if err != nil {
		return err
	}

	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("failed to update resource with id %s: %w", id, err)
	}
	return requireAffected(result, id)
}

func (r *PostgresResourceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resource with id %s: %w", id, err)
	}
	return requireAffected(result, id)
}

func requireAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("resource %s: %w", id, database.ErrNotFound)
	}
	return nil
}
