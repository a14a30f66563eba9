// Package view renders templates with the shared page payload.
package view

import (
	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/pkg/flash"
)

// HTML renders a template, merging any pending flash messages and the
// session email into the payload.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	data["flashes"] = flash.Take(c)

	if email := c.GetString("email"); email != "" {
		data["email"] = email
	}

	c.HTML(status, name, data)
}
