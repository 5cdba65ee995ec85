package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"xoadvisor/database"
	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultAuthService) SignUp(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if err := utils.Validator().Var(email, "required,email"); err != nil {
		return nil, utils.NewFieldError("email", "Invalid email address")
	}
	if err := VerifyPasswordComplexity(creds.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Accounts.Create(ctx, account); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		utils.GetLogger().Error("SignUp: failed to create account", zap.Error(err))
		return nil, err
	}

	profile := &models.Profile{
		ID:        account.ID,
		Email:     email,
		Needs:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Profiles.Create(ctx, profile); err != nil {
		utils.GetLogger().Error("SignUp: failed to create profile", zap.String("userID", account.ID), zap.Error(err))
		return nil, err
	}

	utils.GetLogger().Info("Account created", zap.String("userID", account.ID))
	return s.startSession(ctx, account)
}

func (s *DefaultAuthService) SignIn(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	account, err := s.Accounts.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.startSession(ctx, account)
}

func (s *DefaultAuthService) startSession(ctx context.Context, account *models.Account) (*models.AuthResponse, error) {
	sessionID := uuid.New().String()
	token, err := utils.GenerateToken(account.ID, account.Email, sessionID, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now().UTC()
	err = utils.SaveAuthSession(ctx, s.Cache, utils.AuthSession{
		UserID:    account.ID,
		Email:     account.Email,
		SessionID: sessionID,
		TokenHash: utils.HashToken(token),
		CreatedAt: now,
	}, s.TokenTTL)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.SessionEvent{Type: models.SessionSignedIn, UserID: account.ID, SessionID: sessionID, At: now})
	return &models.AuthResponse{
		ID:        account.ID,
		Email:     account.Email,
		Token:     token,
		ExpiresAt: now.Add(s.TokenTTL),
	}, nil
}

func (s *DefaultAuthService) SignOut(ctx context.Context, session models.Session) error {
	if !session.SignedIn() {
		return nil
	}
	if err := utils.DeleteAuthSession(ctx, s.Cache, session.UserID, session.SessionID); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	s.publish(ctx, models.SessionEvent{
		Type:      models.SessionSignedOut,
		UserID:    session.UserID,
		SessionID: session.SessionID,
		At:        time.Now().UTC(),
	})
	return nil
}

func (s *DefaultAuthService) ResolveSession(ctx context.Context, token string) (models.Session, error) {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return models.Session{}, ErrSessionExpired
	}

	cached, err := utils.GetAuthSession(ctx, s.Cache, claims.Subject, claims.SessionID)
	if errors.Is(err, utils.ErrAuthSessionNotFound) {
		return models.Session{}, ErrSessionExpired
	}
	if err != nil {
		return models.Session{}, err
	}
	if cached.TokenHash != utils.HashToken(token) {
		return models.Session{}, ErrSessionExpired
	}

	session := models.Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		SessionID: claims.SessionID,
		Role:      models.RoleUser,
	}
	// A failed role lookup keeps the identity but never grants admin.
	isAdmin, err := s.Roles.HasRole(ctx, claims.Subject, models.AdminRole)
	if err != nil {
		utils.GetLogger().Warn("ResolveSession: role lookup failed, treating as user",
			zap.String("userID", claims.Subject), zap.Error(err))
		return session, nil
	}
	if isAdmin {
		session.Role = models.RoleAdmin
	}
	return session, nil
}

func (s *DefaultAuthService) publish(ctx context.Context, ev models.SessionEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, ev); err != nil {
		utils.GetLogger().Warn("Failed to publish session event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}
