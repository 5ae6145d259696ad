// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compose

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"net/http"
	"time"

	_ "golang.org/x/image/webp" // register WebP decoder
)

// ImageLoader resolves a photo URL into a decoded image. Render calls it
// once per tile; an error means the tile renders blank.
type ImageLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// HTTPLoader fetches photos over HTTP. Loads are sequential and
// single-shot — a failed fetch is not retried, matching the rest of the
// export pipeline.
type HTTPLoader struct {
	client *http.Client
}

// NewHTTPLoader creates a loader with the given timeout per fetch.
func NewHTTPLoader(timeout time.Duration) *HTTPLoader {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &HTTPLoader{client: &http.Client{Timeout: timeout}}
}

// Load fetches and decodes one image.
func (l *HTTPLoader) Load(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch: unexpected status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("image decode: %w", err)
	}
	return img, nil
}
