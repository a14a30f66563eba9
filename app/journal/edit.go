package journal

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"go.uber.org/zap"
)

func EditPage(c *gin.Context, d *internal.Deps) {
	email := c.MustGet("email").(string)

	j, err := d.Journals.FindOwned(c.Param("id"), email)
	if err != nil {
		flash.Add(c, "Journal not found or access denied.")
		c.Redirect(http.StatusFound, "/reading-journal/all")
		return
	}

	view.HTML(c, http.StatusOK, "edit_journal.html", gin.H{"journal": j})
}

func Edit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	email := c.MustGet("email").(string)
	id := c.Param("id")

	j, err := fromForm(c)
	if err != nil {
		flash.Add(c, err.Error())
		c.Redirect(http.StatusSeeOther, "/reading-journal/edit/"+id)
		return
	}

	if err := d.Journals.Update(id, email, j); err != nil {
		// Covers both a foreign entry and a missing one
		flash.Add(c, "Journal not found or access denied.")
		c.Redirect(http.StatusSeeOther, "/reading-journal/all")

		zap.L().Debug("Journal update rejected", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	flash.Add(c, "Journal has been revised.")
	c.Redirect(http.StatusSeeOther, "/reading-journal/view/"+id)
}
