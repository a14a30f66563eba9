package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/internal/store"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/security"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"go.uber.org/zap"
)

func ForgotPage(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "forgot.html", nil)
}

// Forgot mails a timed reset link to an existing account. The page
// always redirects back to itself, carrying the outcome as a flash.
func Forgot(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	email := store.NormalizeEmail(c.PostForm("email"))

	_, err := d.Accounts.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccount) {
			flash.Add(c, "No archive key found for that email.")
		} else {
			flash.Add(c, "Something went wrong. Please try again.")
			zap.L().Error("Failed to look up account", zap.Error(err), zap.String("requestID", requestID))
		}

		c.Redirect(http.StatusSeeOther, "/forgot")
		return
	}

	token, err := d.Tokens.Sign(email, security.PurposePasswordReset, security.ResetMaxAge)
	if err != nil {
		flash.Add(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/forgot")

		zap.L().Error("Failed to sign reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.Mail.SendReset(email, token); err != nil {
		flash.Add(c, "Error sending email: "+err.Error())

		zap.L().Error("Failed to send reset email", zap.Error(err), zap.String("requestID", requestID))
	} else {
		flash.Add(c, "A parchment scroll has been dispatched to your inbox.")
	}

	c.Redirect(http.StatusSeeOther, "/forgot")
}
