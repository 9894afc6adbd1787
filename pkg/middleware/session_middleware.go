package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"qrfleet/internal/authz"
	"qrfleet/internal/services"
	"qrfleet/pkg/utils"
)

const sessionContextKey = "session"

// SessionCookieName holds the token for browser clients; API clients use
// the Authorization header.
const SessionCookieName = "qrfleet_session"

// RequireSession is the coarse access gate: it resolves the session
// against the database and admits iff an identity claim survived the
// resolve. Role checks happen per-action in the services, on purpose.
func RequireSession(sessions services.SessionServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessions.Resolve(c.Request.Context(), extractToken(c))
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		if !session.Authenticated() {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, "/login")
			} else {
				utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
			}
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// ResolveSession populates the session for open routes without gating,
// so handlers behind no gate still see a fresh identity when one exists.
func ResolveSession(sessions services.SessionServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessions.Resolve(c.Request.Context(), extractToken(c))
		if err == nil {
			c.Set(sessionContextKey, session)
		}
		c.Next()
	}
}

// SessionFromContext returns the resolved session; anonymous when the
// request never passed a resolver.
func SessionFromContext(c *gin.Context) *authz.Session {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return &authz.Session{}
	}
	session, ok := value.(*authz.Session)
	if !ok {
		return &authz.Session{}
	}
	return session
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
