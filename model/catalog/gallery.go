package catalog

import (
	"net/url"
	"path"
	"strings"
	"time"
)

var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true,
}

// GalleryEntry is one product image. Entries are ordered ascending by
// SortOrder; sort order 0 is the primary image.
type GalleryEntry struct {
	ID        uint
	ProductID string
	ImageURL  string
	SortOrder int
	CreatedAt time.Time
}

func (g GalleryEntry) Validate() bool {
	if g.ProductID == "" || g.ImageURL == "" || g.SortOrder < 0 {
		return false
	}
	u, err := url.Parse(g.ImageURL)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func (g GalleryEntry) IsPrimaryImage() bool {
	return g.SortOrder == 0
}

// ImageExtension returns the lowercased file extension without the dot.
func (g GalleryEntry) ImageExtension() string {
	ext := path.Ext(g.ImageURL)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func (g GalleryEntry) ImageFilename() string {
	return path.Base(g.ImageURL)
}

// IsValidImageURL checks the URL parses and ends in a known image extension.
func (g GalleryEntry) IsValidImageURL() bool {
	if !g.Validate() {
		return false
	}
	return imageExtensions[g.ImageExtension()]
}
