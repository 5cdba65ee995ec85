package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xoadvisor/database"
	"xoadvisor/middleware"
	"xoadvisor/models"
	"xoadvisor/services/session"
	"xoadvisor/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAccounts struct{ byEmail map[string]*models.Account }

func (f *fakeAccounts) Create(ctx context.Context, a *models.Account) error {
	if _, ok := f.byEmail[a.Email]; ok {
		return database.ErrDuplicate
	}
	f.byEmail[a.Email] = a
	return nil
}
func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, database.ErrNotFound
	}
	return a, nil
}
func (f *fakeAccounts) GetByID(ctx context.Context, id string) (*models.Account, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, database.ErrNotFound
}

type fakeProfiles struct{ created []string }

func (f *fakeProfiles) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return nil, database.ErrNotFound
}
func (f *fakeProfiles) Create(ctx context.Context, p *models.Profile) error {
	f.created = append(f.created, p.ID)
	return nil
}
func (f *fakeProfiles) Update(ctx context.Context, id string, fields database.Fields) error {
	return nil
}
func (f *fakeProfiles) ListAll(ctx context.Context) ([]models.Profile, error) { return nil, nil }

type fakeRoles struct {
	admins map[string]bool
	err    error
}

func (f *fakeRoles) HasRole(ctx context.Context, userID, role string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userID], nil
}
func (f *fakeRoles) Grant(ctx context.Context, userID, role string) error {
	f.admins[userID] = true
	return nil
}
func (f *fakeRoles) Revoke(ctx context.Context, userID, role string) error {
	delete(f.admins, userID)
	return nil
}

type fixture struct {
	svc      *DefaultAuthService
	profiles *fakeProfiles
	roles    *fakeRoles
	events   []models.SessionEvent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	hub := session.NewHub(nil)
	f := &fixture{profiles: &fakeProfiles{}, roles: &fakeRoles{admins: map[string]bool{}}}
	t.Cleanup(hub.Subscribe(func(ev models.SessionEvent) { f.events = append(f.events, ev) }))
	f.svc = &DefaultAuthService{
		Accounts: &fakeAccounts{byEmail: map[string]*models.Account{}},
		Profiles: f.profiles,
		Roles:    f.roles,
		Cache:    redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		Events:   hub,
		TokenTTL: time.Hour,
	}
	return f
}

func TestMain(m *testing.M) {
	utils.SetLogger(zap.NewNop())
	m.Run()
}

var creds = models.Credentials{Email: " Jane@Example.com ", Password: "Sup3rSecret"}

func TestSignUp_CreatesAccountProfileAndSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.SignUp(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, []string{resp.ID}, f.profiles.created)

	sess, err := f.svc.ResolveSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, sess.UserID)
	assert.Equal(t, models.RoleUser, sess.Role)

	require.Len(t, f.events, 1)
	assert.Equal(t, models.SessionSignedIn, f.events[0].Type)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.SignUp(context.Background(), creds)
	require.NoError(t, err)

	_, err = f.svc.SignUp(context.Background(), creds)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUp_WeakPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SignUp(context.Background(), models.Credentials{Email: "a@b.co", Password: "password"})
	ve, ok := utils.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields["password"], "uppercase")
	assert.Empty(t, f.profiles.created)
}

func TestSignIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.SignUp(ctx, creds)
	require.NoError(t, err)

	_, err = f.svc.SignIn(ctx, models.Credentials{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.SignIn(ctx, models.Credentials{Email: "nobody@example.com", Password: "Sup3rSecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := f.svc.SignIn(ctx, creds)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestResolveSession_AdminRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.svc.SignUp(ctx, creds)
	require.NoError(t, err)
	f.roles.admins[resp.ID] = true

	sess, err := f.svc.ResolveSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, sess.Role)
}

func TestSignOut_InvalidatesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.svc.SignUp(ctx, creds)
	require.NoError(t, err)
	sess, err := f.svc.ResolveSession(ctx, resp.Token)
	require.NoError(t, err)

	require.NoError(t, f.svc.SignOut(ctx, sess))
	_, err = f.svc.ResolveSession(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, models.SessionSignedOut, f.events[len(f.events)-1].Type)
}

func TestResolveSession_GarbageToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ResolveSession(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.Error(t, VerifyPasswordComplexity("Ab1"))
	assert.Error(t, VerifyPasswordComplexity("abcdefg1"))
	assert.Error(t, VerifyPasswordComplexity("ABCDEFG1"))
	assert.Error(t, VerifyPasswordComplexity("Abcdefgh"))
	assert.NoError(t, VerifyPasswordComplexity("Abcdefg1"))
}

func TestResolveSession_RoleLookupFailureKeepsIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.svc.SignUp(ctx, creds)
	require.NoError(t, err)
	f.roles.admins[resp.ID] = true
	f.roles.err = errors.New("connection refused")

	sess, err := f.svc.ResolveSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, sess.UserID)
	assert.Equal(t, models.RoleUser, sess.Role)
}

func TestSessionMiddleware_RoleLookupFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	resp, err := f.svc.SignUp(context.Background(), creds)
	require.NoError(t, err)
	f.roles.admins[resp.ID] = true
	f.roles.err = errors.New("connection refused")

	r := gin.New()
	r.Use(middleware.SessionMiddleware(f.svc))
	r.GET("/whoami", func(c *gin.Context) {
		sess := middleware.GetSession(c)
		c.JSON(http.StatusOK, gin.H{"user_id": sess.UserID, "role": sess.Role})
	})
	r.GET("/admin", middleware.RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := call("/whoami")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"`+resp.ID+`","role":"user"}`, w.Body.String())
	assert.Equal(t, http.StatusForbidden, call("/admin").Code)
}
