package flash

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}

	return c, w
}

func TestAddThenTakeSameRequest(t *testing.T) {
	c, _ := testContext(t)

	Add(c, "Profile inscribed.")
	Add(c, "Welcome back, scribe.")

	assert.Equal(t, []string{"Profile inscribed.", "Welcome back, scribe."}, Take(c))

	// Taken messages are gone
	assert.Empty(t, Take(c))
}

func TestTakeReadsPreviousRequestCookie(t *testing.T) {
	c, w := testContext(t, &http.Cookie{
		Name:  cookieName,
		Value: url.QueryEscape("Please log in.\nSecond notice."),
	})

	assert.Equal(t, []string{"Please log in.", "Second notice."}, Take(c))

	// And clears the cookie so nothing shows twice
	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookieName {
			require.Empty(t, ck.Value)
			cleared = ck.MaxAge < 0
		}
	}
	assert.True(t, cleared)
}

func TestAddWritesCookieForNextRequest(t *testing.T) {
	c, w := testContext(t)

	Add(c, "You have been signed out.")

	found := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookieName && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}
