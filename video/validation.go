package video

import (
	"fmt"
	"strings"
)

// HasExtension checks if name ends with ext, ignoring case
func HasExtension(name, ext string) bool {
	if ext == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext))
}

// NormalizeExtension lowercases ext and adds the leading dot if missing
func NormalizeExtension(ext string) (string, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return DefaultExtension, nil
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if len(ext) < 2 || strings.ContainsAny(ext, `/\`) {
		return "", fmt.Errorf("invalid extension %q", ext)
	}
	return ext, nil
}
