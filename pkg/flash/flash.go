// Package flash implements one-shot user-facing messages carried in a
// short-lived cookie. A message added during one request is shown on
// the next rendered page and then dropped.
package flash

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	cookieName = "rq_flash"
	maxAge     = 300

	pendingKey = "flashPending"
)

// Add queues a message for the next rendered page. Messages added and
// rendered within the same request are shown immediately.
func Add(c *gin.Context, msg string) {
	pending := append(pendingOf(c), msg)
	c.Set(pendingKey, pending)

	c.SetCookie(cookieName, strings.Join(pending, "\n"), maxAge, "/", "", false, true)
}

// Take returns every pending message, both from the previous request's
// cookie and from Add calls made during this one, and clears the
// cookie so nothing is shown twice.
func Take(c *gin.Context) []string {
	var msgs []string

	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		msgs = strings.Split(v, "\n")
	}

	msgs = append(msgs, pendingOf(c)...)
	c.Set(pendingKey, []string(nil))

	// Overrides any value Set-Cookie written earlier in this request
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	return msgs
}

func pendingOf(c *gin.Context) []string {
	if v, ok := c.Get(pendingKey); ok {
		if pending, ok := v.([]string); ok {
			return pending
		}
	}

	return nil
}
