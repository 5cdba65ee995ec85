package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"xoadvisor/database"
	"xoadvisor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	rows   []models.Resource
	failAt int
}

func (r *recordingRepo) ListActive(ctx context.Context) ([]models.Resource, error) { return r.rows, nil }
func (r *recordingRepo) ListAll(ctx context.Context) ([]models.Resource, error)    { return r.rows, nil }
func (r *recordingRepo) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	return nil, database.ErrNotFound
}
func (r *recordingRepo) Create(ctx context.Context, res *models.Resource) error {
	if r.failAt > 0 && len(r.rows)+1 == r.failAt {
		return errors.New("insert failed")
	}
	r.rows = append(r.rows, *res)
	return nil
}
func (r *recordingRepo) Update(ctx context.Context, id string, fields database.Fields) error {
	return nil
}
func (r *recordingRepo) Delete(ctx context.Context, id string) error { return nil }

func TestSeedResources_CoversEveryCategory(t *testing.T) {
	repo := &recordingRepo{}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	n, err := seedResources(context.Background(), repo, now)
	require.NoError(t, err)
	assert.Equal(t, len(demoResources()), n)

	seen := map[models.Category]bool{}
	for i, r := range repo.rows {
		assert.True(t, r.Category.Valid())
		assert.True(t, r.IsActive)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, now.Add(time.Duration(i)*time.Second), r.CreatedAt)
		seen[r.Category] = true
	}
	for _, c := range models.Categories {
		assert.True(t, seen[c], "missing %s", c)
	}
}

func TestSeedResources_StopsOnError(t *testing.T) {
	repo := &recordingRepo{failAt: 2}

	n, err := seedResources(context.Background(), repo, time.Now())
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}
