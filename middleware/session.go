package middleware

import (
	"context"
	"errors"
	"strings"

	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// SessionResolver turns a bearer token into the caller's session.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (models.Session, error)
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	// EventSource cannot set headers.
	return c.Query("access_token")
}

// SessionMiddleware resolves the caller once per request and stores the
// session, role included, in the context. Missing or stale tokens make the
// caller a guest.
func SessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.Session{Role: models.RoleGuest}
		if token := bearerToken(c); token != "" {
			resolved, err := resolver.ResolveSession(c.Request.Context(), token)
			switch {
			case err == nil:
				session = resolved
			case errors.Is(err, context.Canceled):
			default:
				utils.GetLogger().Debug("Treating caller as guest", zap.Error(err))
			}
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// GetSession returns the session stored by SessionMiddleware, or a guest.
func GetSession(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(models.Session); ok {
			return s
		}
	}
	return models.Session{Role: models.RoleGuest}
}
