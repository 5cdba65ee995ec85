package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"xoadvisor/database"
	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func trim(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

// optional maps a submitted contact field to its stored form: empty clears.
func optional(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func validateDraft(d models.ResourceDraft) error {
	fields := map[string]string{}
	required := []struct {
		name  string
		label string
		value *string
	}{
		{"title", "Title", d.Title},
		{"description", "Description", d.Description},
		{"organization", "Organization", d.Organization},
	}
	for _, f := range required {
		if (!d.IsUpdate() && f.value == nil) || (f.value != nil && *f.value == "") {
			fields[f.name] = f.label + " is required"
		}
	}
	if d.Category == nil {
		if !d.IsUpdate() {
			fields["category"] = "Category is required"
		}
	} else if !d.Category.Valid() {
		fields["category"] = fmt.Sprintf("Unknown category %q", *d.Category)
	}
	if d.ContactEmail != nil && *d.ContactEmail != "" {
		if err := utils.Validator().Var(*d.ContactEmail, "email"); err != nil {
			fields["contact_email"] = "Invalid email address"
		}
	}
	if len(fields) > 0 {
		return &utils.ValidationError{Fields: fields}
	}
	return nil
}

func (s *DefaultAdminService) SaveResource(ctx context.Context, draft models.ResourceDraft) (*models.Resource, error) {
	draft.ID = strings.TrimSpace(draft.ID)
	draft.Title = trim(draft.Title)
	draft.Description = trim(draft.Description)
	draft.Organization = trim(draft.Organization)
	draft.ContactPhone = trim(draft.ContactPhone)
	draft.ContactEmail = trim(draft.ContactEmail)
	draft.WebsiteURL = trim(draft.WebsiteURL)
	draft.Address = trim(draft.Address)

	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if draft.IsUpdate() {
		return s.updateResource(ctx, draft)
	}
	return s.createResource(ctx, draft)
}

func (s *DefaultAdminService) createResource(ctx context.Context, d models.ResourceDraft) (*models.Resource, error) {
	now := time.Now().UTC()
	res := &models.Resource{
		ID:           uuid.New().String(),
		Category:     *d.Category,
		Title:        *d.Title,
		Description:  *d.Description,
		Organization: *d.Organization,
		ContactPhone: optional(d.ContactPhone),
		ContactEmail: optional(d.ContactEmail),
		WebsiteURL:   optional(d.WebsiteURL),
		Address:      optional(d.Address),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if d.IsActive != nil {
		res.IsActive = *d.IsActive
	}
	if err := s.Resources.Create(ctx, res); err != nil {
		utils.GetLogger().Error("Failed to create resource", zap.Error(err))
		return nil, err
	}
	utils.GetLogger().Info("Resource created", zap.String("resourceID", res.ID))
	return res, nil
}

func (s *DefaultAdminService) updateResource(ctx context.Context, d models.ResourceDraft) (*models.Resource, error) {
	fields := database.Fields{"updated_at": time.Now().UTC()}
	if d.Category != nil {
		fields["category"] = string(*d.Category)
	}
	for col, v := range map[string]*string{
		"title":        d.Title,
		"description":  d.Description,
		"organization": d.Organization,
	} {
		if v != nil {
			fields[col] = *v
		}
	}
	for col, v := range map[string]*string{
		"contact_phone": d.ContactPhone,
		"contact_email": d.ContactEmail,
		"website_url":   d.WebsiteURL,
		"address":       d.Address,
	} {
		if v == nil {
			continue
		}
		if cleared := optional(v); cleared == nil {
			fields[col] = nil
		} else {
			fields[col] = *cleared
		}
	}
	if d.IsActive != nil {
		fields["is_active"] = *d.IsActive
	}

	if err := s.Resources.Update(ctx, d.ID, fields); err != nil {
		utils.GetLogger().Error("Failed to update resource", zap.String("resourceID", d.ID), zap.Error(err))
		return nil, err
	}
	return s.Resources.GetByID(ctx, d.ID)
}

func (s *DefaultAdminService) DeleteResource(ctx context.Context, id string) error {
	if err := s.Resources.Delete(ctx, id); err != nil {
		return err
	}
	utils.GetLogger().Info("Resource deleted", zap.String("resourceID", id))
	return nil
}

func (s *DefaultAdminService) ListAllResources(ctx context.Context) ([]models.Resource, error) {
	return s.Resources.ListAll(ctx)
}
