package source

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/swipekit/photo-carousel/internal/model"
)

// Image file extensions the directory scan accepts
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// DirectorySource serves item payloads from image files on disk
type DirectorySource struct {
	dir string
}

// NewDirectorySource creates a source rooted at dir
func NewDirectorySource(dir string) *DirectorySource {
	return &DirectorySource{dir: dir}
}

// Scan lists the image files in the directory, sorted by name, as gallery
// items. A missing or empty directory yields an empty slice, not an error
// on individual unreadable entries.
func (s *DirectorySource) Scan() ([]model.Item, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	items := make([]model.Item, 0, len(names))
	for _, name := range names {
		items = append(items, model.NewLocalItem(filepath.Join(s.dir, name)))
	}
	return items, nil
}

// Fetch decodes the item's file, downscaled to target
func (s *DirectorySource) Fetch(ctx context.Context, item model.Item, target image.Point) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if item.Path == "" {
		return nil, fmt.Errorf("item %s has no local path", item.ID)
	}

	f, err := os.Open(item.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", item.Path, err)
	}
	defer f.Close()

	return decodeScaled(f, target)
}

// isImageFile checks the file extension against the accepted formats
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range ImageExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}
