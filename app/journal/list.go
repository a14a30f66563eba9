package journal

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"go.uber.org/zap"
)

func All(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	email := c.MustGet("email").(string)

	js, err := d.Journals.ListByOwner(email)
	if err != nil {
		flash.Add(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")

		zap.L().Error("Failed to list journals", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	view.HTML(c, http.StatusOK, "journals.html", gin.H{"journals": js})
}

// Landing sends /reading-journal to the reader's first entry, or to
// the create form when they have none yet.
func Landing(c *gin.Context, d *internal.Deps) {
	email := c.MustGet("email").(string)

	j, err := d.Journals.FirstByOwner(email)
	if err != nil {
		c.Redirect(http.StatusFound, "/reading-journal/create")
		return
	}

	c.Redirect(http.StatusFound, "/reading-journal/view/"+j.ID)
}
