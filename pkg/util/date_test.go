package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJoinedDate(t *testing.T) {
	d := time.Date(2024, time.October, 3, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "October 3, 2024", JoinedDate(d))
}
