package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) SaveSession(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockCache) GetSession(ctx context.Context, sid string) (*session.Session, error) {
	args := m.Called(ctx, sid)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *mockCache) DeleteSession(ctx context.Context, sid string) error {
	return m.Called(ctx, sid).Error(0)
}

func (m *mockCache) RevokeUserSessions(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockCache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) ClearLoginAttempts(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return m.Called(ctx, key, ttl).Error(0)
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/participants", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	mw := NewMiddleware(new(mockCache))
	c, rec := newTestContext(t)

	err := mw.RequireLogin()(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?error="+url.QueryEscape("Please login to access this page"),
		rec.Header().Get(echo.HeaderLocation))
}

func TestRequireLoginPassesAuthenticated(t *testing.T) {
	mw := NewMiddleware(new(mockCache))
	c, rec := newTestContext(t)
	c.Set(sessionContextKey, &session.Session{UserID: 7, Role: constants.RoleUser})

	err := mw.RequireLogin()(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireManagerRedirectsAnonymous(t *testing.T) {
	mw := NewMiddleware(new(mockCache))
	c, rec := newTestContext(t)

	err := mw.RequireManager()(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
}

// An authenticated common user hitting a manager route gets a 403 body,
// not a redirect.
func TestRequireManagerForbidsCommonUser(t *testing.T) {
	mw := NewMiddleware(new(mockCache))
	c, rec := newTestContext(t)
	c.Set(sessionContextKey, &session.Session{UserID: 7, Role: constants.RoleUser})

	err := mw.RequireManager()(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireManagerAdmitsManagerAndAdmin(t *testing.T) {
	mw := NewMiddleware(new(mockCache))

	for _, role := range []string{constants.RoleManager, constants.RoleAdmin} {
		c, rec := newTestContext(t)
		c.Set(sessionContextKey, &session.Session{UserID: 7, Role: role})

		err := mw.RequireManager()(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code, role)
	}
}

// A revoked session (store returns nothing for the sid) loads as anonymous,
// so the old cookie lands back on the login page.
func TestLoadSessionRevokedSessionIsAnonymous(t *testing.T) {
	store := new(mockCache)
	mw := NewMiddleware(store)

	c, _ := newTestContext(t)

	err := mw.LoadSession()(func(c echo.Context) error {
		assert.Nil(t, CurrentSession(c))
		return nil
	})(c)

	require.NoError(t, err)
	store.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
}

func TestCurrentSessionNilWithoutLoad(t *testing.T) {
	c, _ := newTestContext(t)

	assert.Nil(t, CurrentSession(c))
}
