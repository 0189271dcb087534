package services

import (
	"context"
	"io"
	"net/http"
	"time"
)

const defaultImageMime = "image/jpeg"

// ImageFetcher resolves a college image from either uploaded bytes or a
// remote URL
type ImageFetcher struct {
	client *http.Client
}

// NewImageFetcher creates an image fetcher with a bounded fetch timeout
func NewImageFetcher(timeout time.Duration) *ImageFetcher {
	return &ImageFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Resolve picks the image source: uploaded bytes win over a URL; with
// neither present the image stays absent. Remote failures are terminal,
// there are no retries.
func (f *ImageFetcher) Resolve(ctx context.Context, fileBytes []byte, declaredMime, url string) ([]byte, string, error) {
	if len(fileBytes) > 0 {
		mime := declaredMime
		if mime == "" {
			mime = defaultImageMime
		}
		return fileBytes, mime, nil
	}

	if url != "" {
		return f.fetch(ctx, url)
	}

	return nil, "", nil
}

func (f *ImageFetcher) fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &ImageFetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", &ImageFetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &ImageFetchError{URL: url}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &ImageFetchError{URL: url, Err: err}
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = defaultImageMime
	}

	return data, mime, nil
}
