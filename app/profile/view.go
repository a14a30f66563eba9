// Package profile contains the profile page handlers
package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/internal/store"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"go.uber.org/zap"
)

func View(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	email := c.MustGet("email").(string)

	p, err := d.Profiles.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			flash.Add(c, "No profile found. Please inscribe your details.")
			c.Redirect(http.StatusFound, "/create-profile")
			return
		}

		flash.Add(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")

		zap.L().Error("Failed to fetch profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	view.HTML(c, http.StatusOK, "profile.html", gin.H{"profile": p})
}
