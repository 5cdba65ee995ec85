package middleware

import (
	"net/http"

	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireSignedIn aborts guest requests with a redirect to the sign-in page.
func RequireSignedIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).SignedIn() {
			utils.JSONRedirect(c, http.StatusUnauthorized, "Sign in required", "/auth")
			return
		}
		c.Next()
	}
}

// RequireAdmin lets only admin sessions through. Guests are sent to the
// sign-in page and signed-in non-admins to the home page, before any handler
// runs.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		switch session.Role {
		case models.RoleAdmin:
			c.Next()
		case models.RoleUser:
			utils.GetLogger().Warn("Non-admin blocked from admin route",
				zap.String("userID", session.UserID), zap.String("path", c.FullPath()))
			utils.JSONRedirect(c, http.StatusForbidden, "Admin access required", "/")
		default:
			utils.JSONRedirect(c, http.StatusUnauthorized, "Sign in required", "/auth")
		}
	}
}
