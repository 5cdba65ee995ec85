package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"xoadvisor/database"
	"xoadvisor/models"
	"xoadvisor/utils"

	"go.uber.org/zap"
)

// profileForm is the trimmed, validated view of a ProfileUpdate. Absent
// fields stay empty and always pass.
type profileForm struct {
	FullName    string `json:"full_name" validate:"max=100"`
	Phone       string `json:"phone" validate:"max=20"`
	SSN         string `json:"ssn" validate:"ssn"`
	StateID     string `json:"state_id" validate:"max=50"`
	Address     string `json:"address" validate:"max=500"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// Unseal returns p with its sealed fields decrypted.
func Unseal(sealer FieldSealer, p *models.Profile) (*models.Profile, error) {
	ssn, err := sealer.Open(p.SSN)
	if err != nil {
		return nil, fmt.Errorf("profile %s ssn: %w", p.ID, err)
	}
	stateID, err := sealer.Open(p.StateID)
	if err != nil {
		return nil, fmt.Errorf("profile %s state_id: %w", p.ID, err)
	}
	out := *p
	out.SSN = ssn
	out.StateID = stateID
	return &out, nil
}

func (s *DefaultProfileService) Load(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Unseal(s.Sealer, p)
}

func (s *DefaultProfileService) Save(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error) {
	update = models.ProfileUpdate{
		FullName:    trimmed(update.FullName),
		Phone:       trimmed(update.Phone),
		SSN:         trimmed(update.SSN),
		StateID:     trimmed(update.StateID),
		Address:     trimmed(update.Address),
		DateOfBirth: trimmed(update.DateOfBirth),
	}
	form := profileForm{
		FullName:    deref(update.FullName),
		Phone:       deref(update.Phone),
		SSN:         deref(update.SSN),
		StateID:     deref(update.StateID),
		Address:     deref(update.Address),
		DateOfBirth: deref(update.DateOfBirth),
	}
	if err := utils.ValidateStruct(form); err != nil {
		return nil, err
	}
	if update.Empty() {
		return s.Load(ctx, userID)
	}

	fields := database.Fields{"updated_at": time.Now().UTC()}
	plain := map[string]*string{
		"full_name":     update.FullName,
		"phone":         update.Phone,
		"address":       update.Address,
		"date_of_birth": update.DateOfBirth,
	}
	for col, v := range plain {
		if v != nil {
			fields[col] = *v
		}
	}
	sealed := map[string]*string{
		"ssn":      update.SSN,
		"state_id": update.StateID,
	}
	for col, v := range sealed {
		if v == nil {
			continue
		}
		enc, err := s.Sealer.Seal(*v)
		if err != nil {
			return nil, err
		}
		fields[col] = enc
	}

	if err := s.Repo.Update(ctx, userID, fields); err != nil {
		utils.GetLogger().Error("Failed to save profile", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return s.Load(ctx, userID)
}

func validateNeeds(needs []string) error {
	for _, n := range needs {
		if !models.Need(n).Valid() {
			return utils.NewFieldError("needs", fmt.Sprintf("Unknown need %q", n))
		}
	}
	return nil
}

func (s *DefaultProfileService) SaveNeeds(ctx context.Context, userID string, needs []string) (*models.Profile, error) {
	if err := validateNeeds(needs); err != nil {
		return nil, err
	}
	set := models.NewNeedSet(needs)
	if err := s.writeNeeds(ctx, userID, set); err != nil {
		return nil, err
	}
	return s.Load(ctx, userID)
}

func (s *DefaultProfileService) ToggleNeed(ctx context.Context, userID string, need string) (*models.Profile, error) {
	if err := validateNeeds([]string{need}); err != nil {
		return nil, err
	}
	p, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := models.NewNeedSet(p.Needs)
	set.Toggle(need)
	if err := s.writeNeeds(ctx, userID, set); err != nil {
		return nil, err
	}
	p.Needs = set.IDs()
	return p, nil
}

func (s *DefaultProfileService) writeNeeds(ctx context.Context, userID string, set models.NeedSet) error {
	err := s.Repo.Update(ctx, userID, database.Fields{
		"needs":      set.IDs(),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		utils.GetLogger().Error("Failed to save needs", zap.String("userID", userID), zap.Error(err))
	}
	return err
}
