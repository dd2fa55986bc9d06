package source

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/swipekit/photo-carousel/internal/model"
)

// HTTP client defaults
const (
	DefaultRequestTimeout = 30 * time.Second
)

// HTTPSource serves item payloads from their URLs
type HTTPSource struct {
	client *http.Client
}

// NewHTTPSource creates a source with a default client
func NewHTTPSource() *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// NewHTTPSourceWithClient creates a source using the given client. Used by
// tests to point at a local server.
func NewHTTPSourceWithClient(client *http.Client) *HTTPSource {
	return &HTTPSource{client: client}
}

// Fetch downloads and decodes the item's URL, downscaled to target
func (s *HTTPSource) Fetch(ctx context.Context, item model.Item, target image.Point) (image.Image, error) {
	if item.URL == "" {
		return nil, fmt.Errorf("item %s has no URL", item.ID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", item.URL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", item.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, item.URL)
	}

	return decodeScaled(resp.Body, target)
}
