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

func EditPage(c *gin.Context, d *internal.Deps) {
	email := c.MustGet("email").(string)

	// A missing profile still renders the form, just unprefilled
	p, _ := d.Profiles.FindByEmail(email)

	view.HTML(c, http.StatusOK, "edit_profile.html", gin.H{"user": p})
}

// Edit merges the submitted fields into the stored profile. Fields
// left empty in the form keep their stored value.
func Edit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	email := c.MustGet("email").(string)

	u := store.ProfileUpdate{
		Name:        c.PostForm("name"),
		Title:       c.PostForm("title"),
		Quote:       c.PostForm("quote"),
		Bio:         c.PostForm("bio"),
		Joined:      c.PostForm("joined"),
		Thinkers:    c.PostForm("thinkers"),
		Allegiances: c.PostForm("allegiances"),
		Relics:      c.PostForm("relics"),
		Annotations: c.PostForm("annotations"),
		Visions:     c.PostForm("visions"),
	}

	if err := d.Profiles.Update(email, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			flash.Add(c, "No profile found. Please inscribe your details.")
			c.Redirect(http.StatusSeeOther, "/create-profile")
			return
		}

		flash.Add(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/profile/edit")

		zap.L().Error("Failed to update profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	flash.Add(c, "Profile updated.")
	c.Redirect(http.StatusSeeOther, "/profile")
}
