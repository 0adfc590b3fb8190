package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"linguatrack/internal/errors"
	"linguatrack/internal/session"
)

// CookieName is the session cookie carried by authenticated clients.
const CookieName = "session_id"

const sessionContextKey = "session"

// LoadSession resolves the session cookie against the store and stashes the
// result in the request context. A missing or expired session is not an error
// here; RequireAuth decides that per route. The store lookup renews the
// server-side TTL, and the cookie is re-issued with a fresh Max-Age to match,
// so an active browser rolls its expiry on every request.
func LoadSession(store session.Store, ttl time.Duration, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				he := errors.MapErrorToHTTP(err)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}
			if sess != nil {
				c.Set(sessionContextKey, sess)
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    sess.ID,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Secure:   secure,
				})
			}
			return next(c)
		}
	}
}

// CurrentSession returns the request's session, or nil for anonymous requests.
func CurrentSession(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionContextKey).(*session.Session)
	return sess
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentSession(c) == nil {
			return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
				Message: "Unauthorized. Please log in.",
			})
		}
		return next(c)
	}
}

// RequireGuest rejects authenticated requests on guest-only routes.
func RequireGuest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentSession(c) != nil {
			return c.JSON(http.StatusForbidden, errors.ErrorResponse{
				Message: "Already logged in.",
			})
		}
		return next(c)
	}
}
