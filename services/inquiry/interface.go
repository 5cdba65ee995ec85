package inquiry

import (
	"context"

	"xoadvisor/database/repository"
	"xoadvisor/models"
)

// InquiryService handles contact form submissions and their tracking.
type InquiryService interface {
	// Submit stores a new inquiry attributed to the session's identity, or to
	// nobody for guests.
	Submit(ctx context.Context, session models.Session, req models.InquiryRequest) (*models.Inquiry, error)
	ListMine(ctx context.Context, userID string) ([]models.Inquiry, error)
	ListAll(ctx context.Context) ([]models.Inquiry, error)
	// SetStatus overwrites the status. Any status may follow any other.
	SetStatus(ctx context.Context, id string, status models.InquiryStatus) error
}

// DefaultInquiryService is the production implementation.
type DefaultInquiryService struct {
	Repo repository.InquiryRepository
}

func NewInquiryService(repo repository.InquiryRepository) *DefaultInquiryService {
	return &DefaultInquiryService{Repo: repo}
}
