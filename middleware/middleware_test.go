package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver map[string]models.Session

func (s stubResolver) ResolveSession(ctx context.Context, token string) (models.Session, error) {
	if sess, ok := s[token]; ok {
		return sess, nil
	}
	return models.Session{}, errors.New("session expired")
}

var sessions = stubResolver{
	"user-token":  {UserID: "u1", Role: models.RoleUser},
	"admin-token": {UserID: "a1", Role: models.RoleAdmin},
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SetLogger(zap.NewNop())
	m.Run()
}

func adminRouter(reached *bool) *gin.Engine {
	r := gin.New()
	r.Use(SessionMiddleware(sessions))
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		*reached = true
		c.Status(http.StatusOK)
	})
	return r
}

func call(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantTo     string
		reached    bool
	}{
		{"guest is sent to sign in", "", http.StatusUnauthorized, "/auth", false},
		{"stale token is a guest", "expired", http.StatusUnauthorized, "/auth", false},
		{"user is sent home", "user-token", http.StatusForbidden, "/", false},
		{"admin passes", "admin-token", http.StatusOK, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			w := call(adminRouter(&reached), "/admin", tt.token)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.reached, reached)
			if tt.wantTo != "" {
				var body utils.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantTo, body.Redirect)
			}
		})
	}
}

func TestRequireSignedIn(t *testing.T) {
	r := gin.New()
	r.Use(SessionMiddleware(sessions))
	r.GET("/profile", RequireSignedIn(), func(c *gin.Context) {
		c.String(http.StatusOK, GetSession(c).UserID)
	})

	assert.Equal(t, http.StatusUnauthorized, call(r, "/profile", "").Code)

	w := call(r, "/profile?access_token=user-token", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestGetSession_DefaultsToGuest(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, models.RoleGuest, GetSession(c).Role)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.POST("/inquiries", RateLimitMiddleware(6), func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// burst of one at six per minute
	assert.Equal(t, http.StatusCreated, send("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusCreated, send("198.51.100.2"))
}

func TestRateLimiterStore_EvictsIdleVisitors(t *testing.T) {
	store := newRateLimiterStore(6)
	start := time.Now()

	assert.True(t, store.allow("203.0.113.7", start))
	assert.False(t, store.allow("203.0.113.7", start))

	later := start.Add(visitorIdleTTL + time.Minute)
	assert.True(t, store.allow("198.51.100.2", later))
	_, kept := store.visitors["203.0.113.7"]
	assert.False(t, kept)
	assert.Len(t, store.visitors, 1)
}
