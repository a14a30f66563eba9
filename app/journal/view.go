package journal

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
)

const defaultCover = "/static/default-book.png"

// View shows a single entry. A foreign or missing ID gets the same
// flash and redirect, so nothing reveals whether the entry exists.
func View(c *gin.Context, d *internal.Deps) {
	email := c.MustGet("email").(string)

	j, err := d.Journals.FindOwned(c.Param("id"), email)
	if err != nil {
		flash.Add(c, "Journal not found or access denied.")
		c.Redirect(http.StatusFound, "/reading-journal/all")
		return
	}

	if j.CoverImageURL == "" {
		j.CoverImageURL = defaultCover
	}

	view.HTML(c, http.StatusOK, "journal.html", gin.H{"journal": j})
}
