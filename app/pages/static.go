// Package pages contains the public content handlers
package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/pkg/view"
)

func Home(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "home.html", nil)
}

func Author(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "author.html", nil)
}

func Silence(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "silence.html", nil)
}

func Loading(c *gin.Context, d *internal.Deps) {
	view.HTML(c, http.StatusOK, "loading.html", nil)
}
