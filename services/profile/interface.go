package profile

import (
	"context"

	"xoadvisor/database/repository"
	"xoadvisor/models"
)

// ProfileService manages the signed-in user's own profile.
type ProfileService interface {
	Load(ctx context.Context, userID string) (*models.Profile, error)
	// Save validates and writes only the submitted fields of update.
	Save(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error)
	// SaveNeeds replaces the stored needs selection.
	SaveNeeds(ctx context.Context, userID string, needs []string) (*models.Profile, error)
	// ToggleNeed flips one need and persists the resulting full selection.
	ToggleNeed(ctx context.Context, userID string, need string) (*models.Profile, error)
}

// FieldSealer encrypts sensitive values at rest.
type FieldSealer interface {
	Seal(plaintext string) (string, error)
	Open(value string) (string, error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo   repository.ProfileRepository
	Sealer FieldSealer
}

func NewProfileService(repo repository.ProfileRepository, sealer FieldSealer) *DefaultProfileService {
	return &DefaultProfileService{Repo: repo, Sealer: sealer}
}
