package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"xoadvisor/config"

	"github.com/lib/pq"
)

// PostgresDB is the global PostgreSQL handle, set when DB_DRIVER=postgres.
var PostgresDB *sql.DB

// InitPostgres opens the PostgreSQL pool and applies the schema.
func InitPostgres() {
	db, err := sql.Open("postgres", config.AppConfig.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open PostgreSQL: %v", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping PostgreSQL: %v", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
	PostgresDB = db
	log.Println("Connected to PostgreSQL successfully!")
}

// PingPostgres reports whether the pool can reach the server.
func PingPostgres(ctx context.Context) error {
	if PostgresDB == nil {
		return errors.New("postgres pool not initialized")
	}
	return PostgresDB.PingContext(ctx)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL DEFAULT '',
		full_name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		ssn TEXT NOT NULL DEFAULT '',
		state_id TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		date_of_birth TEXT NOT NULL DEFAULT '',
		needs TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS resources (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL CHECK (category IN ('housing', 'employment', 'transportation', 'assistance')),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		organization TEXT NOT NULL,
		contact_phone TEXT,
		contact_email TEXT,
		website_url TEXT,
		address TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS resources_active_idx ON resources (is_active, category, title)`,
	`CREATE TABLE IF NOT EXISTS contact_inquiries (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new' CHECK (status IN ('new', 'in_progress', 'resolved')),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS contact_inquiries_user_idx ON contact_inquiries (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, role)
	)`,
}

// EnsureSchema creates every table and index that does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}

// BuildUpdate renders "UPDATE <table> SET ... WHERE id = $n" for the given
// fields. Columns are emitted in sorted order and must appear in allowed.
func BuildUpdate(table string, allowed map[string]bool, fields Fields, id string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, errors.New("no fields to update")
	}
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !allowed[col] {
			return "", nil, fmt.Errorf("column %q cannot be updated on %s", col, table)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		v := fields[col]
		if arr, ok := v.([]string); ok {
			v = pq.Array(arr)
		}
		args = append(args, v)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(sets, ", "), len(args))
	return query, args, nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// NullString maps an optional value to a nullable column.
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr maps a nullable column back to an optional value.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
