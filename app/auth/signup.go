// Package auth contains the signup, login and credential-recovery
// handlers
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/internal/store"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"github.com/rubymeaddows/Ravensandquill/validators"
	"go.uber.org/zap"
)

func SignupPage(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "signup.html", nil)
}

func Signup(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	email := store.NormalizeEmail(c.PostForm("email"))
	password := c.PostForm("password")
	confirm := c.PostForm("confirm")

	if err := validators.EmailValidator(email); err != nil {
		flash.Add(c, err.Error())
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}

	if err := validators.PasswordConfirmValidator(password, confirm); err != nil {
		flash.Add(c, err.Error())
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}

	acc, err := d.Accounts.Create(email, password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			flash.Add(c, "An account with this email already exists.")
			c.Redirect(http.StatusSeeOther, "/signup")
			return
		}

		flash.Add(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/signup")

		zap.L().Error("Failed to create account", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.Mail.SendVerification(email, *acc.VerifyToken); err != nil {
		flash.Add(c, "Error sending email: "+err.Error())

		zap.L().Error("Failed to send verification email", zap.Error(err), zap.String("requestID", requestID))
	}

	flash.Add(c, "Account created. Please check your email to verify.")
	c.Redirect(http.StatusSeeOther, "/login")
}
