package inquiryRepo

import (
	"context"
	"testing"
	"time"

	"xoadvisor/database"
	"xoadvisor/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresInquiry_CreateGuestStoresNullUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	now := time.Now()

	mock.ExpectExec(`INSERT INTO contact_inquiries`).
		WithArgs("i1", nil, "Jane", "jane@example.com", "", "Need help", "new", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewPostgresInquiryRepo(db).Create(context.Background(), &models.Inquiry{
		ID: "i1", FullName: "Jane", Email: "jane@example.com", Message: "Need help",
		Status: models.InquiryStatusNew, CreatedAt: now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInquiry_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	now := time.Now()

	mock.ExpectQuery(`WHERE user_id = \$1 ORDER BY created_at DESC`).WithArgs("u1").WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "full_name", "email", "phone", "message", "status", "created_at"}).
			AddRow("i2", "u1", "Jane", "jane@example.com", "", "second", "in_progress", now).
			AddRow("i1", "u1", "Jane", "jane@example.com", "", "first", "new", now.Add(-time.Hour)),
	)

	got, err := NewPostgresInquiryRepo(db).ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "i2", got[0].ID)
	assert.Equal(t, models.InquiryStatusInProgress, got[0].Status)
	require.NotNil(t, got[0].UserID)
	assert.Equal(t, "u1", *got[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInquiry_UpdateStatusUnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE contact_inquiries SET status = \$1 WHERE id = \$2`).
		WithArgs("resolved", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewPostgresInquiryRepo(db).UpdateStatus(context.Background(), "missing", models.InquiryStatusResolved)
	assert.ErrorIs(t, err, database.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
