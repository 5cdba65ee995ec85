package roleRepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"xoadvisor/database"
)

// PostgresRoleRepo implements RoleRepository on user_roles.
type PostgresRoleRepo struct {
	db *sql.DB
}

func NewPostgresRoleRepo(db *sql.DB) *PostgresRoleRepo {
	return &PostgresRoleRepo{db: db}
}

func (r *PostgresRoleRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`,
		userID, role).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check role %s for %s: %w", role, userID, err)
	}
	return exists, nil
}

func (r *PostgresRoleRepo) Grant(ctx context.Context, userID, role string) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, role) DO NOTHING`,
		userID, role, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to grant role %s to %s: %w", role, userID, err)
	}
	return nil
}

func (r *PostgresRoleRepo) Revoke(ctx context.Context, userID, role string) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM user_roles WHERE user_id = $1 AND role = $2`, userID, role)
	if err != nil {
		return fmt.Errorf("failed to revoke role %s from %s: %w", role, userID, err)
	}
	return nil
}
