package inquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultInquiryService) Submit(ctx context.Context, session models.Session, req models.InquiryRequest) (*models.Inquiry, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	in := &models.Inquiry{
		ID:        uuid.New().String(),
		UserID:    session.UserIDOrNil(),
		FullName:  req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    models.InquiryStatusNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, in); err != nil {
		utils.GetLogger().Error("Failed to store inquiry", zap.Error(err))
		return nil, err
	}

	utils.GetLogger().Info("Inquiry submitted",
		zap.String("inquiryID", in.ID), zap.Bool("guest", in.UserID == nil))
	return in, nil
}

func (s *DefaultInquiryService) ListMine(ctx context.Context, userID string) ([]models.Inquiry, error) {
	if userID == "" {
		return nil, fmt.Errorf("list inquiries: missing identity")
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultInquiryService) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultInquiryService) SetStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	if !status.Valid() {
		return utils.NewFieldError("status", fmt.Sprintf("Unknown status %q", status))
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	utils.GetLogger().Info("Inquiry status changed", zap.String("inquiryID", id), zap.String("status", string(status)))
	return nil
}
