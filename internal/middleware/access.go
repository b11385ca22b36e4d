package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maisonbelle/maisonbelle-api/internal/auth"
)

// SessionCookie is the cookie the signin flow sets and the page middleware
// reads.
const SessionCookie = "session_token"

// accessRule is one row of the route-protection table: a path predicate and
// the policy applied when it matches. Rules are evaluated top to bottom and
// the first match wins; paths no rule matches bypass the middleware entirely.
//
// Callers must keep the rule list covering every route that needs protection:
// outside the matcher this is allow-by-default.
type accessRule struct {
	matches func(path string) bool
	apply   func(c *gin.Context, sess *auth.Session)
}

func allow(c *gin.Context, _ *auth.Session) {
	c.Next()
}

// AccessControl gates page navigation before any handler runs. Authentication
// failures here are redirects, never JSON errors. An invalid or expired token
// is treated exactly like an absent one (fail closed).
func AccessControl(verifier auth.Verifier) gin.HandlerFunc {
	rules := []accessRule{
		{
			// Signed-in users have no business on the auth pages.
			matches: func(p string) bool { return p == "/signin" || p == "/signup" },
			apply: func(c *gin.Context, sess *auth.Session) {
				if sess != nil {
					redirect(c, "/")
					return
				}
				c.Next()
			},
		},
		{
			matches: func(p string) bool { return p == "/admin" || strings.HasPrefix(p, "/admin/") },
			apply: func(c *gin.Context, sess *auth.Session) {
				if sess == nil {
					redirect(c, "/signin")
					return
				}
				if sess.Role != "admin" {
					redirect(c, "/")
					return
				}
				c.Next()
			},
		},
		{
			matches: func(p string) bool { return p == "/" },
			apply:   allow,
		},
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, rule := range rules {
			if !rule.matches(path) {
				continue
			}
			rule.apply(c, resolveSession(c, verifier))
			return
		}
		// Outside the matcher: not intercepted.
		c.Next()
	}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}

// resolveSession extracts and verifies the session token. Any verification
// error collapses to nil: absent and invalid tokens are indistinguishable to
// the rules above.
func resolveSession(c *gin.Context, verifier auth.Verifier) *auth.Session {
	token := sessionToken(c)
	if token == "" {
		return nil
	}
	sess, err := verifier.Verify(token)
	if err != nil {
		return nil
	}
	return sess
}

// sessionToken reads the session cookie first (page flows), then falls back
// to a Bearer header (API clients).
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
