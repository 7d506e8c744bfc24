package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/handler"
)

// RequireAuth resolves the session cookie and stores the user id in the
// request context. Requests without a live session are redirected to the login page.
func RequireAuth(sessions security.SessionManager, cookie handler.CookieConfig, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookie.Name)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, handler.LoginPath)
			c.Abort()
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Session rejected", map[string]any{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			})
			cookie.Clear(c)
			c.Redirect(http.StatusFound, handler.LoginPath)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(coreport.WithUserID(c.Request.Context(), session.UserID))
		c.Next()
	}
}

// OptionalAuth resolves the session cookie when present so public pages can
// tell logged in users apart. It never rejects a request.
func OptionalAuth(sessions security.SessionManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			if session, err := sessions.Resolve(c.Request.Context(), token); err == nil {
				c.Request = c.Request.WithContext(coreport.WithUserID(c.Request.Context(), session.UserID))
			}
		}
		c.Next()
	}
}
