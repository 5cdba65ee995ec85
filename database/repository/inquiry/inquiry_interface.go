package inquiryRepo

import (
	"context"

	"xoadvisor/models"
)

// InquiryRepository defines methods for contact inquiry data access.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	// ListByUser returns the inquiries authored by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Inquiry, error)
	// ListAll returns every inquiry, newest first.
	ListAll(ctx context.Context) ([]models.Inquiry, error)
	// UpdateStatus overwrites the status of an inquiry.
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error
}

const collectionName = "contact_inquiries"
