package pages

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
	"go.uber.org/zap"
)

func Aesthetics(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	blogs, err := d.Catalog.LoadBlogs()
	if err != nil {
		flash.Add(c, "The aesthetics archive is unavailable right now.")
		c.Redirect(http.StatusFound, "/")

		zap.L().Error("Failed to load blogs", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	view.HTML(c, http.StatusOK, "aesthetics.html", gin.H{"blogs": blogs})
}

// BlogPost renders a single aesthetics post. Unlike everywhere else an
// unknown ID is an explicit 404, not a redirect.
func BlogPost(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	blogs, err := d.Catalog.LoadBlogs()
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to load blogs", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// IDs are stringified integers; anything else is a 404 outright
	id := c.Param("id")
	if _, err := strconv.Atoi(id); err != nil {
		c.String(http.StatusNotFound, "Blog not found")
		return
	}

	blog, ok := blogs[id]
	if !ok {
		c.String(http.StatusNotFound, "Blog not found")
		return
	}

	view.HTML(c, http.StatusOK, "blog_post.html", gin.H{"blog": blog, "blogID": id})
}
