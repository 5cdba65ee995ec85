// File: xoadvisor/utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrAuthSessionNotFound means the session expired or was signed out.
var ErrAuthSessionNotFound = errors.New("auth session not found")

// AuthSession is the server-side record of one signed-in token.
type AuthSession struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	SessionID string    `json:"sessionId"`
	TokenHash string    `json:"tokenHash"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthSessionKey builds the composite cache key of a session.
func AuthSessionKey(userID, sessionID string) string {
	return AuthCachePrefix + userID + ":" + sessionID
}

// SaveAuthSession saves the session in Redis with a TTL.
func SaveAuthSession(ctx context.Context, client *redis.Client, session AuthSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	if err := client.Set(ctx, AuthSessionKey(session.UserID, session.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves a session from Redis.
func GetAuthSession(ctx context.Context, client *redis.Client, userID, sessionID string) (*AuthSession, error) {
	data, err := client.Get(ctx, AuthSessionKey(userID, sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrAuthSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read auth session: %w", err)
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes a session from Redis.
func DeleteAuthSession(ctx context.Context, client *redis.Client, userID, sessionID string) error {
	return client.Del(ctx, AuthSessionKey(userID, sessionID)).Err()
}
