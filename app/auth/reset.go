package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/security"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"github.com/rubymeaddows/Ravensandquill/validators"
	"go.uber.org/zap"
)

// resetEmail verifies the reset token from the URL. An expired,
// tampered or wrong-purpose token sends the visitor back to the
// request-new-link flow.
func resetEmail(c *gin.Context, d *internal.Deps) (string, bool) {
	email, err := d.Tokens.Verify(c.Param("token"), security.PurposePasswordReset)
	if err != nil {
		flash.Add(c, "This parchment scroll has expired or is invalid.")
		c.Redirect(http.StatusFound, "/forgot")
		return "", false
	}

	return email, true
}

func ResetPage(c *gin.Context, d *internal.Deps) {
	if _, ok := resetEmail(c, d); !ok {
		return
	}

	view.HTML(c, http.StatusOK, "reset.html", gin.H{"token": c.Param("token")})
}

func Reset(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	email, ok := resetEmail(c, d)
	if !ok {
		return
	}

	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	if err := validators.PasswordConfirmValidator(password, confirm); err != nil {
		if errors.Is(err, validators.ErrPasswordMismatch) {
			flash.Add(c, "The archive keys do not match. Please try again.")
		} else {
			flash.Add(c, err.Error())
		}

		c.Redirect(http.StatusSeeOther, "/reset/"+c.Param("token"))
		return
	}

	if err := d.Accounts.SetPassword(email, password); err != nil {
		flash.Add(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/forgot")

		zap.L().Error("Failed to set password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	flash.Add(c, "Your archive key has been reforged.")
	c.Redirect(http.StatusSeeOther, "/login")
}
