package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/internal/store"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/middleware"
	"github.com/rubymeaddows/Ravensandquill/pkg/security"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func LoginPage(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "login.html", nil)
}

func Login(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	email := store.NormalizeEmail(c.PostForm("email"))
	password := c.PostForm("password")

	_, err := d.Accounts.Authenticate(email, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoAccount):
			flash.Add(c, "No account found.")
		case errors.Is(err, store.ErrBadPassword):
			flash.Add(c, "Incorrect password.")
		default:
			flash.Add(c, "Something went wrong. Please try again.")
			zap.L().Error("Failed to authenticate", zap.Error(err), zap.String("requestID", requestID))
		}

		view.HTML(c, http.StatusOK, "login.html", nil)
		return
	}

	token, err := d.Tokens.Sign(email, security.PurposeSession, security.SessionMaxAge)
	if err != nil {
		flash.Add(c, "Something went wrong. Please try again.")
		view.HTML(c, http.StatusOK, "login.html", nil)

		zap.L().Error("Failed to sign session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(security.SessionMaxAge.Seconds()),
		"/", "", viper.GetBool("host.ssl_enabled"), true)

	flash.Add(c, "Welcome back, scribe.")
	c.Redirect(http.StatusSeeOther, "/profile")
}

func Logout(c *gin.Context, d *internal.Deps) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", viper.GetBool("host.ssl_enabled"), true)

	flash.Add(c, "You have been signed out.")
	c.Redirect(http.StatusFound, "/")
}
