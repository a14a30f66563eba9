package util

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename reduces an uploaded filename to a safe basename.
// Anything outside [a-zA-Z0-9._-] is dropped, so the result can be
// joined onto the uploads directory without escaping it.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" || out == "." || out == ".." {
		return ""
	}

	return out
}
