// Package journal contains the reading-journal CRUD handlers
package journal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/internal/model"
)

var errBadRating = errors.New("rating must be a whole number of crowns")

// fromForm parses the journal form fields shared by create and edit.
func fromForm(c *gin.Context) (*model.Journal, error) {
	rating := 0

	if raw := c.PostForm("rating_crowns"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errBadRating
		}

		rating = n
	}

	return &model.Journal{
		Title:         c.PostForm("title"),
		Author:        c.PostForm("author"),
		CoverImageURL: c.PostForm("cover_image_url"),
		Tags:          splitTags(c.PostForm("tags")),
		Theme:         c.PostForm("theme"),
		DateStarted:   c.PostForm("date_started"),
		DateFinished:  c.PostForm("date_finished"),
		Status:        c.PostForm("status"),
		IsHidden:      c.PostForm("is_hidden") == "True",
		RatingCrowns:  rating,
		Quotes:        c.PostForm("quotes"),
		Reflection:    c.PostForm("reflection"),

		ThoughtsCharacters: c.PostForm("thoughts_characters"),
		ThoughtsPlot:       c.PostForm("thoughts_plot"),
	}, nil
}

func splitTags(raw string) model.StringSlice {
	var tags model.StringSlice

	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}
