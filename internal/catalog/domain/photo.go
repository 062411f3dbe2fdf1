package domain

import (
	"strings"

	"github.com/telshop/backoffice/internal/normalize"
)

const (
	ImagesPrefix     = "/images/"
	PlaceholderImage = "placeholder.png"
)

// PhotoURL resolves the raw photo field to a servable URL: absolute URLs pass
// through, empty falls back to the placeholder, bare filenames get the images
// prefix, and an existing "images/" segment is normalized so it never doubles.
func PhotoURL(photo string) string {
	s := normalize.OneLine(photo)
	if s == "" {
		return ImagesPrefix + PlaceholderImage
	}
	low := strings.ToLower(s)
	if strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://") {
		return s
	}
	s = strings.TrimLeft(s, "/")
	if strings.HasPrefix(strings.ToLower(s), "images/") {
		return "/" + s
	}
	return ImagesPrefix + s
}
