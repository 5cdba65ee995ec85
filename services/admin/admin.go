package admin

import (
	"context"

	"xoadvisor/models"
	"xoadvisor/services/profile"
	"xoadvisor/utils"

	"go.uber.org/zap"
)

func (s *DefaultAdminService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.Roles.HasRole(ctx, userID, models.AdminRole)
}

func (s *DefaultAdminService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.Profiles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Profile, 0, len(rows))
	for i := range rows {
		p, err := profile.Unseal(s.Sealer, &rows[i])
		if err != nil {
			utils.GetLogger().Warn("ListProfiles: sealed fields unreadable, masking row",
				zap.String("userID", rows[i].ID), zap.Error(err))
			out = append(out, masked(rows[i]))
			continue
		}
		out = append(out, p.Redacted())
	}
	return out, nil
}

// masked hides sensitive fields whose plaintext is unavailable.
func masked(p models.Profile) models.Profile {
	if p.SSN != "" {
		p.SSN = "***-**-****"
	}
	if p.StateID != "" {
		p.StateID = "****"
	}
	p.Needs = append([]string(nil), p.Needs...)
	return p
}

// Overview loads the three console tabs with sequential reads.
func (s *DefaultAdminService) Overview(ctx context.Context) (*models.AdminOverview, error) {
	resources, err := s.ListAllResources(ctx)
	if err != nil {
		return nil, err
	}
	inquiries, err := s.Inquiries.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AdminOverview{Resources: resources, Inquiries: inquiries, Profiles: profiles}, nil
}
