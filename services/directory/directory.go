package directory

import (
	"context"
	"fmt"

	"xoadvisor/models"
	"xoadvisor/utils"

	"go.uber.org/zap"
)

func (s *DefaultDirectoryService) ListActiveResources(ctx context.Context, category models.Category) ([]models.Resource, error) {
	if category == "" {
		category = models.CategoryAll
	}
	if category != models.CategoryAll && !category.Valid() {
		return nil, utils.NewFieldError("category", fmt.Sprintf("Unknown category %q", category))
	}

	resources, err := s.Repo.ListActive(ctx)
	if err != nil {
		utils.GetLogger().Error("Failed to list active resources", zap.Error(err))
		return nil, err
	}
	return FilterByCategory(resources, category), nil
}

// FilterByCategory keeps the resources of one category in their incoming
// order. "all" returns the input unchanged.
func FilterByCategory(resources []models.Resource, category models.Category) []models.Resource {
	if category == models.CategoryAll {
		return resources
	}
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

func (s *DefaultDirectoryService) Categories() []models.CategoryTab {
	return models.CategoryTabs()
}
