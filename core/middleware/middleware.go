package middleware

import (
	"net/http"
	"net/url"

	"ella-rises-admin/core/cache"
	"ella-rises-admin/core/config"
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/controller"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/session"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

const loginRedirect = "/auth/login?error=" // + escaped message

type Middleware struct {
	cache cache.Cache
	base  controller.BaseController
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c, base: controller.NewBaseController()}
}

// LoadSession resolves the cookie into a session and stores it in the request
// context. It never rejects; the guards below decide what a missing session
// means for the matched route group.
func (m *Middleware) LoadSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			cfg := config.Get()
			sid, err := session.ParseCookie(cookie.Value, cfg.Session.Secret)
			if err != nil {
				logger.Warn("Middleware:LoadSession:BadCookie", "error", err)
				return next(c)
			}
			s, err := m.cache.GetSession(c.Request().Context(), sid)
			if err != nil {
				logger.Error("Middleware:LoadSession:GetSession", err)
				return next(c)
			}
			if s != nil {
				c.Set(sessionContextKey, s)
			}
			return next(c)
		}
	}
}

// RequireLogin redirects unauthenticated requests to the login page.
func (m *Middleware) RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentSession(c) == nil {
				return c.Redirect(http.StatusFound,
					loginRedirect+url.QueryEscape("Please login to access this page"))
			}
			return next(c)
		}
	}
}

// RequireManager admits only manager or admin sessions. An authenticated
// request with an insufficient role gets a 403 body, not a redirect.
func (m *Middleware) RequireManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := CurrentSession(c)
			if s == nil {
				return c.Redirect(http.StatusFound,
					loginRedirect+url.QueryEscape("Please login to access this page"))
			}
			if !s.IsElevated() {
				return m.base.Forbidden(c)
			}
			return next(c)
		}
	}
}

// CurrentSession returns the authenticated principal, or nil.
func CurrentSession(c echo.Context) *session.Session {
	s, _ := c.Get(sessionContextKey).(*session.Session)
	return s
}

// WriteSessionCookie sets the signed session cookie. Secure only under the
// production flag so local HTTP development keeps working.
func WriteSessionCookie(c echo.Context, sid string) error {
	cfg := config.Get()
	token, err := session.SignCookie(sid, cfg.Session.Secret)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(constants.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// SessionID extracts the raw session identifier from the request cookie, for
// logout. Empty when there is no valid cookie.
func SessionID(c echo.Context) string {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	sid, err := session.ParseCookie(cookie.Value, config.Get().Session.Secret)
	if err != nil {
		return ""
	}
	return sid
}
