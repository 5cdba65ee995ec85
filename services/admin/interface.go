package admin

import (
	"context"

	"xoadvisor/database/repository"
	"xoadvisor/models"
	"xoadvisor/services/profile"
)

// AdminService backs the admin console. Callers are expected to have passed
// the admin gate already.
type AdminService interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
	// SaveResource updates the draft's resource when it carries an ID and
	// inserts a new one otherwise.
	SaveResource(ctx context.Context, draft models.ResourceDraft) (*models.Resource, error)
	DeleteResource(ctx context.Context, id string) error
	ListAllResources(ctx context.Context) ([]models.Resource, error)
	// ListProfiles returns every profile with sensitive fields redacted.
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	Overview(ctx context.Context) (*models.AdminOverview, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Resources repository.ResourceRepository
	Inquiries repository.InquiryRepository
	Profiles  repository.ProfileRepository
	Roles     repository.RoleRepository
	Sealer    profile.FieldSealer
}

func NewAdminService(store *repository.Store, sealer profile.FieldSealer) *DefaultAdminService {
	return &DefaultAdminService{
		Resources: store.Resources,
		Inquiries: store.Inquiries,
		Profiles:  store.Profiles,
		Roles:     store.Roles,
		Sealer:    sealer,
	}
}
