package auth

import (
	"context"
	"errors"
	"time"

	"xoadvisor/database/repository"
	"xoadvisor/models"

	"github.com/go-redis/redis/v8"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrSessionExpired     = errors.New("session expired, please sign in again")
)

// AuthService signs identities in and out and resolves request sessions.
type AuthService interface {
	SignUp(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	SignIn(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	SignOut(ctx context.Context, session models.Session) error
	// ResolveSession validates a bearer token and computes the caller's role.
	ResolveSession(ctx context.Context, token string) (models.Session, error)
}

// EventPublisher announces session changes.
type EventPublisher interface {
	Publish(ctx context.Context, ev models.SessionEvent) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Accounts repository.AccountRepository
	Profiles repository.ProfileRepository
	Roles    repository.RoleRepository
	Cache    *redis.Client
	Events   EventPublisher
	TokenTTL time.Duration
}

func NewAuthService(store *repository.Store, cache *redis.Client, events EventPublisher, ttl time.Duration) *DefaultAuthService {
	return &DefaultAuthService{
		Accounts: store.Accounts,
		Profiles: store.Profiles,
		Roles:    store.Roles,
		Cache:    cache,
		Events:   events,
		TokenTTL: ttl,
	}
}
