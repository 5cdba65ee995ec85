package directory

import (
	"context"

	"xoadvisor/database/repository"
	"xoadvisor/models"
)

// DirectoryService serves the public resource directory.
type DirectoryService interface {
	// ListActiveResources returns active resources ordered by category then
	// title, narrowed to one category unless category is "all".
	ListActiveResources(ctx context.Context, category models.Category) ([]models.Resource, error)
	Categories() []models.CategoryTab
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Repo repository.ResourceRepository
}

func NewDirectoryService(repo repository.ResourceRepository) *DefaultDirectoryService {
	return &DefaultDirectoryService{Repo: repo}
}
