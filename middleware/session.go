package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"examgen_client/session"
	"examgen_client/views"
)

const sessionKey = "session"

// LoadSession resolves the session cookie into the request context. Requests
// without a (valid) cookie proceed unauthenticated.
func LoadSession(store *session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err == nil {
			if sess, ok := store.Get(id); ok {
				c.Set(sessionKey, sess)
			}
		}
		c.Next()
	}
}

// RequireAuth redirects to the login view unless the request carries an
// authenticated session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Authenticated() {
			c.Redirect(http.StatusFound, views.Path(views.Login))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the request's session, nil when signed out.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}
