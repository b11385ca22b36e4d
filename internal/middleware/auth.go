package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maisonbelle/maisonbelle-api/internal/auth"
)

const sessionKey = "session"

// AuthRequired protects JSON API routes. Unlike the page middleware it
// answers 401 instead of redirecting.
func AuthRequired(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		sess, err := verifier.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// AdminRequired runs after AuthRequired and enforces the admin role.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get(sessionKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		sess := raw.(*auth.Session)
		if sess.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SessionFrom returns the verified session AuthRequired stored on the
// context, or nil when the route is unauthenticated.
func SessionFrom(c *gin.Context) *auth.Session {
	if raw, exists := c.Get(sessionKey); exists {
		return raw.(*auth.Session)
	}
	return nil
}
