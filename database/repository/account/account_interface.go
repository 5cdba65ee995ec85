package accountRepo

import (
	"context"

	"xoadvisor/models"
)

// AccountRepository defines methods for sign-in account data access.
type AccountRepository interface {
	// Create inserts an account; a taken email yields database.ErrDuplicate.
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

const collectionName = "accounts"
