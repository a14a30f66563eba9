package journal

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"go.uber.org/zap"
)

func CreatePage(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "create_journal.html", nil)
}

func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	email := c.MustGet("email").(string)

	j, err := fromForm(c)
	if err != nil {
		flash.Add(c, err.Error())
		c.Redirect(http.StatusSeeOther, "/reading-journal/create")
		return
	}

	j.UserEmail = email

	if err := d.Journals.Create(j); err != nil {
		flash.Add(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/reading-journal/create")

		zap.L().Error("Failed to create journal", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Redirect(http.StatusSeeOther, "/reading-journal/view/"+j.ID)
}
