package handlers

import (
	"io"
	"net/http"

	"xoadvisor/middleware"
	"xoadvisor/models"
	"xoadvisor/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionFeed is the single subscription point for session events.
type SessionFeed interface {
	Subscribe(fn func(models.SessionEvent)) (cancel func())
}

// AuthHandler serves sign-up, sign-in, sign-out and session state.
type AuthHandler struct {
	Service auth.AuthService
	Feed    SessionFeed
}

func NewAuthHandler(s auth.AuthService, feed SessionFeed) *AuthHandler {
	return &AuthHandler{Service: s, Feed: feed}
}

// SignUpHandler handles POST /api/auth/signup.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.Service.SignUp(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInHandler handles POST /api/auth/signin.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.Service.SignIn(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler handles POST /api/auth/signout.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	if err := h.Service.SignOut(c.Request.Context(), middleware.GetSession(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// SessionHandler handles GET /api/auth/session.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetSession(c))
}

// EventsHandler streams the caller's session events as server-sent events
// until the client leaves or this session signs out.
func (h *AuthHandler) EventsHandler(c *gin.Context) {
	session := middleware.GetSession(c)
	events := make(chan models.SessionEvent, 8)
	cancel := h.Feed.Subscribe(func(ev models.SessionEvent) {
		if ev.UserID != session.UserID {
			return
		}
		select {
		case events <- ev:
		default:
			getLogger(c).Warn("Dropping session event for slow client", zap.String("userID", session.UserID))
		}
	})
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev := <-events:
			c.SSEvent(string(ev.Type), ev)
			return !(ev.Type == models.SessionSignedOut && ev.SessionID == session.SessionID)
		}
	})
}
