package model

import (
	"strings"

	"github.com/google/uuid"
)

// Item represents a single piece of gallery content. Items keep a stable
// identity so that concurrent loads cannot cross-assign payloads when the
// collection grows under them.
type Item struct {
	ID    string
	Title string
	Path  string // local file path, empty for remote items
	URL   string // remote source, empty for local items
}

// NewLocalItem creates an item backed by a file on disk
func NewLocalItem(path string) Item {
	return Item{
		ID:    uuid.NewString(),
		Title: titleFromPath(path),
		Path:  path,
	}
}

// NewRemoteItem creates an item backed by an HTTP resource
func NewRemoteItem(title, url string) Item {
	return Item{
		ID:    uuid.NewString(),
		Title: title,
		URL:   url,
	}
}

// GetDisplayTitle returns the title, filename, or URL in order of preference
func (it Item) GetDisplayTitle() string {
	if it.Title != "" {
		return it.Title
	}
	if it.Path != "" {
		return titleFromPath(it.Path)
	}
	return it.URL
}

// IsRemote returns true when the payload must be fetched over the network
func (it Item) IsRemote() bool {
	return it.URL != ""
}

// titleFromPath extracts a display name from a file path: the base name
// without extension, with both / and \ treated as separators.
func titleFromPath(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return path
	}
	name := parts[len(parts)-1]
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
