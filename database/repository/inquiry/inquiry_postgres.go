package inquiryRepo

import (
	"context"
	"database/sql"
	"fmt"

	"xoadvisor/database"
	"xoadvisor/models"
)

// PostgresInquiryRepo implements InquiryRepository on contact_inquiries.
type PostgresInquiryRepo struct {
	db *sql.DB
}

func NewPostgresInquiryRepo(db *sql.DB) *PostgresInquiryRepo {
	return &PostgresInquiryRepo{db: db}
}

const selectColumns = `SELECT id, user_id, full_name, email, phone, message, status, created_at
	FROM contact_inquiries`

func (r *PostgresInquiryRepo) Create(ctx context.Context, in *models.Inquiry) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO contact_inquiries
		(id, user_id, full_name, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		in.ID, database.NullString(in.UserID), in.FullName, in.Email, in.Phone, in.Message,
		string(in.Status), in.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

func (r *PostgresInquiryRepo) query(ctx context.Context, q string, args ...any) ([]models.Inquiry, error) {
	ctx, cancel := database.NewContext(ctx, database.ListTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		var in models.Inquiry
		var userID sql.NullString
		var status string
		if err := rows.Scan(&in.ID, &userID, &in.FullName, &in.Email, &in.Phone, &in.Message,
			&status, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to decode inquiry: %w", err)
		}
		in.UserID = database.StringPtr(userID)
		in.Status = models.InquiryStatus(status)
		inquiries = append(inquiries, in)
	}
	return inquiries, rows.Err()
}

func (r *PostgresInquiryRepo) ListByUser(ctx context.Context, userID string) ([]models.Inquiry, error) {
	return r.query(ctx, selectColumns+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresInquiryRepo) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	return r.query(ctx, selectColumns+` ORDER BY created_at DESC`)
}

func (r *PostgresInquiryRepo) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx,
		`UPDATE contact_inquiries SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update inquiry %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("inquiry %s: %w", id, database.ErrNotFound)
	}
	return nil
}
