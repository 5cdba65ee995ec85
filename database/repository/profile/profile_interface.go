package profileRepo

import (
	"context"

	"xoadvisor/database"
	"xoadvisor/models"
)

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetByID retrieves the profile keyed by an account ID.
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	// Create inserts the profile row of a new account.
	Create(ctx context.Context, profile *models.Profile) error
	// Update writes the given columns of an existing profile.
	Update(ctx context.Context, id string, fields database.Fields) error
	// ListAll returns every profile, newest first.
	ListAll(ctx context.Context) ([]models.Profile, error)
}

const collectionName = "profiles"

var updatable = map[string]bool{
	"full_name":     true,
	"phone":         true,
	"ssn":           true,
	"state_id":      true,
	"address":       true,
	"date_of_birth": true,
	"needs":         true,
	"updated_at":    true,
}
