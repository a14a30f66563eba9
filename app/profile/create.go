package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/internal/model"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"go.uber.org/zap"
)

func CreatePage(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "create_profile.html", nil)
}

// Create writes the full profile document, replacing any previous one.
// The uploaded image is optional and falls back to the default icon.
func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	email := c.MustGet("email").(string)

	fh, _ := c.FormFile("image")

	imageURL, err := d.Images.Save(fh)
	if err != nil {
		flash.Add(c, "Could not save the uploaded image.")
		c.Redirect(http.StatusSeeOther, "/create-profile")

		zap.L().Error("Failed to save profile image", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	p := &model.Profile{
		Email:    email,
		Name:     c.PostForm("name"),
		Title:    c.PostForm("title"),
		Quote:    c.PostForm("quote"),
		Bio:      c.PostForm("bio"),
		Joined:   c.PostForm("joined"),
		ImageURL: imageURL,

		Thinkers:    c.PostForm("thinkers"),
		Allegiances: c.PostForm("allegiances"),
		Relics:      c.PostForm("relics"),
		Annotations: c.PostForm("annotations"),
		Visions:     c.PostForm("visions"),
	}

	if err := d.Profiles.Upsert(p); err != nil {
		flash.Add(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/create-profile")

		zap.L().Error("Failed to store profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	flash.Add(c, "Profile inscribed.")
	c.Redirect(http.StatusSeeOther, "/profile")
}
