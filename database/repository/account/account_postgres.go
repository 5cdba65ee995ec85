package accountRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"xoadvisor/database"
	"xoadvisor/models"
)

// PostgresAccountRepo implements AccountRepository on the accounts table.
type PostgresAccountRepo struct {
	db *sql.DB
}

func NewPostgresAccountRepo(db *sql.DB) *PostgresAccountRepo {
	return &PostgresAccountRepo{db: db}
}

func (r *PostgresAccountRepo) Create(ctx context.Context, a *models.Account) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Email, a.PasswordHash, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("account %s: %w", a.Email, database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *PostgresAccountRepo) getOne(ctx context.Context, column, key string) (*models.Account, error) {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	var a models.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM accounts WHERE `+column+` = $1`, key).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", key, database.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", key, err)
	}
	return &a, nil
}

func (r *PostgresAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.getOne(ctx, "email", email)
}

func (r *PostgresAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.getOne(ctx, "id", id)
}
