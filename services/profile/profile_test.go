package profile

import (
	"context"
	"strings"
	"testing"

	"xoadvisor/database"
	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfileRepo struct {
	rows    map[string]models.Profile
	updates []database.Fields
}

func newFakeRepo() *fakeProfileRepo {
	return &fakeProfileRepo{rows: map[string]models.Profile{
		"u1": {ID: "u1", Email: "jane@example.com", FullName: "Jane", Phone: "555-0100", Needs: []string{}},
	}}
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	p.Needs = append([]string{}, p.Needs...)
	return &p, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	f.rows[p.ID] = *p
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, id string, fields database.Fields) error {
	p, ok := f.rows[id]
	if !ok {
		return database.ErrNotFound
	}
	f.updates = append(f.updates, fields)
	for col, v := range fields {
		switch col {
		case "full_name":
			p.FullName = v.(string)
		case "phone":
			p.Phone = v.(string)
		case "ssn":
			p.SSN = v.(string)
		case "state_id":
			p.StateID = v.(string)
		case "address":
			p.Address = v.(string)
		case "date_of_birth":
			p.DateOfBirth = v.(string)
		case "needs":
			p.Needs = v.([]string)
		}
	}
	f.rows[id] = p
	return nil
}

func (f *fakeProfileRepo) ListAll(ctx context.Context) ([]models.Profile, error) { return nil, nil }

func str(s string) *string { return &s }

func newService(t *testing.T) (*DefaultProfileService, *fakeProfileRepo) {
	t.Helper()
	sealer, err := utils.NewSealer("test-key")
	require.NoError(t, err)
	repo := newFakeRepo()
	return NewProfileService(repo, sealer), repo
}

func TestMain(m *testing.M) {
	utils.SetLogger(zap.NewNop())
	m.Run()
}

func TestSave_OnlyWritesSubmittedFields(t *testing.T) {
	svc, repo := newService(t)

	p, err := svc.Save(context.Background(), "u1", models.ProfileUpdate{Address: str("  12 Main St ")})
	require.NoError(t, err)
	assert.Equal(t, "12 Main St", p.Address)
	assert.Equal(t, "555-0100", p.Phone)

	require.Len(t, repo.updates, 1)
	assert.Contains(t, repo.updates[0], "address")
	assert.NotContains(t, repo.updates[0], "phone")
	assert.NotContains(t, repo.updates[0], "full_name")
}

func TestSave_SealsSensitiveFields(t *testing.T) {
	svc, repo := newService(t)

	p, err := svc.Save(context.Background(), "u1", models.ProfileUpdate{SSN: str("123-45-6789"), StateID: str("D1234567")})
	require.NoError(t, err)
	assert.Equal(t, "123-45-6789", p.SSN)
	assert.Equal(t, "D1234567", p.StateID)

	stored := repo.rows["u1"]
	assert.True(t, strings.HasPrefix(stored.SSN, "enc:v1:"))
	assert.NotContains(t, stored.SSN, "6789")
	assert.True(t, strings.HasPrefix(stored.StateID, "enc:v1:"))
}

func TestSave_ValidationFailsBeforeStore(t *testing.T) {
	svc, repo := newService(t)

	_, err := svc.Save(context.Background(), "u1", models.ProfileUpdate{
		FullName:    str(strings.Repeat("x", 101)),
		SSN:         str("12-345-6789"),
		DateOfBirth: str("01/02/1990"),
	})
	ve, ok := utils.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Name must be less than 100 characters", ve.Fields["full_name"])
	assert.Equal(t, "Invalid SSN format (XXX-XX-XXXX)", ve.Fields["ssn"])
	assert.Contains(t, ve.Fields, "date_of_birth")
	assert.Empty(t, repo.updates)
}

func TestSave_AcceptsUndashedSSNAndClearing(t *testing.T) {
	svc, _ := newService(t)

	p, err := svc.Save(context.Background(), "u1", models.ProfileUpdate{SSN: str("123456789"), Phone: str("")})
	require.NoError(t, err)
	assert.Equal(t, "123456789", p.SSN)
	assert.Equal(t, "", p.Phone)
}

func TestSaveNeeds_ReplacesSelection(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.SaveNeeds(ctx, "u1", []string{"housing", "employment"})
	require.NoError(t, err)
	p, err := svc.SaveNeeds(ctx, "u1", []string{"food_clothing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"food_clothing"}, p.Needs)

	p, err = svc.SaveNeeds(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, p.Needs)
}

func TestSaveNeeds_RejectsUnknownNeed(t *testing.T) {
	svc, repo := newService(t)

	_, err := svc.SaveNeeds(context.Background(), "u1", []string{"housing", "childcare"})
	_, ok := utils.IsValidationError(err)
	assert.True(t, ok)
	assert.Empty(t, repo.updates)
}

func TestToggleNeed_TwiceRestoresSelection(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.SaveNeeds(ctx, "u1", []string{"housing", "employment"})
	require.NoError(t, err)

	p, err := svc.ToggleNeed(ctx, "u1", "government_assistance")
	require.NoError(t, err)
	assert.Equal(t, []string{"housing", "employment", "government_assistance"}, p.Needs)

	p, err = svc.ToggleNeed(ctx, "u1", "government_assistance")
	require.NoError(t, err)
	assert.Equal(t, []string{"housing", "employment"}, p.Needs)
}

func TestLoad_UnknownIdentity(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
