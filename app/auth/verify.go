package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
)

// Verify resolves an emailed verification link. The token is matched
// through the indexed verify_token column and cleared on success so
// the link can't be replayed.
func Verify(c *gin.Context, d *internal.Deps) {
	_, err := d.Accounts.VerifyByToken(c.Query("token"))
	if err != nil {
		flash.Add(c, "Invalid or expired verification link.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	view.HTML(c, http.StatusOK, "verify.html", nil)
}
