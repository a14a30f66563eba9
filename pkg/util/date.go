package util

import "time"

// JoinedDate formats the display date stored on new accounts,
// e.g. "August 31, 2026".
func JoinedDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
