package resourceRepo

import (
	"context"

	"xoadvisor/database"
	"xoadvisor/models"
)

// ResourceRepository defines methods for directory resource data access.
type ResourceRepository interface {
	// ListActive returns active resources ordered by category, then title.
	ListActive(ctx context.Context) ([]models.Resource, error)
	// ListAll returns every resource, newest first.
	ListAll(ctx context.Context) ([]models.Resource, error)
	// GetByID retrieves a resource by its ID.
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	// Create inserts a new resource.
	Create(ctx context.Context, resource *models.Resource) error
	// Update writes the given columns of an existing resource.
	Update(ctx context.Context, id string, fields database.Fields) error
	// Delete removes a resource permanently.
	Delete(ctx context.Context, id string) error
}

const collectionName = "resources"

// updatable lists the columns an admin edit may write.
var updatable = map[string]bool{
	"category":      true,
	"title":         true,
	"description":   true,
	"organization":  true,
	"contact_phone": true,
	"contact_email": true,
	"website_url":   true,
	"address":       true,
	"is_active":     true,
	"updated_at":    true,
}
