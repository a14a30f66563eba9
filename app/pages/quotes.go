package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/internal/catalog"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"go.uber.org/zap"
)

// Quotes renders the browse page: a fresh random sample on GET, the
// full filtered result set on a search POST. The corpus is re-read
// from disk every time.
func Quotes(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	all, err := d.Catalog.LoadQuotes()
	if err != nil {
		flash.Add(c, "The quote archive is unavailable right now.")
		c.Redirect(http.StatusFound, "/")

		zap.L().Error("Failed to load quotes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	shown := all

	if c.Request.Method == http.MethodPost {
		shown = catalog.Filter(all, c.PostForm("author"), c.PostForm("genre"))
	} else {
		shown = catalog.Sample(all, catalog.SamplePageSize)
	}

	view.HTML(c, http.StatusOK, "quotes.html", gin.H{"quotes": shown})
}
