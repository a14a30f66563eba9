package journal

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
)

func Delete(c *gin.Context, d *internal.Deps) {
	email := c.MustGet("email").(string)

	if err := d.Journals.Delete(c.Param("id"), email); err != nil {
		flash.Add(c, "Access denied or journal not found.")
	} else {
		flash.Add(c, "Journal has been sealed and archived.")
	}

	c.Redirect(http.StatusSeeOther, "/reading-journal/all")
}
