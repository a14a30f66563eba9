package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/security"
)

// SessionCookie is the signed client-side session. The server keeps no
// session table, so a captured token stays valid until its expiry even
// after logout. Known limitation of the stateless design.
const SessionCookie = "session"

// RequireSession guards routes that need a logged-in user. A missing
// or invalid session never errors, it flashes a notice and sends the
// visitor to the login page.
func RequireSession(tokens *security.TimedToken) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			toLogin(c)
			return
		}

		email, err := tokens.Verify(tokenStr, security.PurposeSession)
		if err != nil {
			toLogin(c)
			return
		}

		c.Set("email", email)
		c.Next()
	}
}

func toLogin(c *gin.Context) {
	flash.Add(c, "Please log in.")
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
