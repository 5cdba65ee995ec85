package profileRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"xoadvisor/database"
	"xoadvisor/models"

	"github.com/lib/pq"
)

// PostgresProfileRepo implements ProfileRepository on the profiles table.
type PostgresProfileRepo struct {
	db *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{db: db}
}

const selectColumns = `SELECT id, email, full_name, phone, ssn, state_id, address,
	date_of_birth, needs, created_at, updated_at FROM profiles`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	var needs pq.StringArray
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.SSN, &p.StateID, &p.Address,
		&p.DateOfBirth, &needs, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	p.Needs = []string(needs)
	if p.Needs == nil {
		p.Needs = []string{}
	}
	return p, nil
}

func (r *PostgresProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	p, err := scanProfile(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %s: %w", id, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &p, nil
}

func (r *PostgresProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	needs := p.Needs
	if needs == nil {
		needs = []string{}
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO profiles
		(id, email, full_name, phone, ssn, state_id, address, date_of_birth, needs, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Email, p.FullName, p.Phone, p.SSN, p.StateID, p.Address, p.DateOfBirth,
		pq.Array(needs), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("profile %s: %w", p.ID, database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *PostgresProfileRepo) Update(ctx context.Context, id string, fields database.Fields) error {
	q, args, err := database.BuildUpdate(collectionName, updatable, fields, id)
	if err != nil {
		return err
	}

	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile with id %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *PostgresProfileRepo) ListAll(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := database.NewContext(ctx, database.ListTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
