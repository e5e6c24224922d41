// Package imageproxy fetches catalog images from the hosting provider on
// behalf of page requests. It is a stateless per-request proxy: one upstream
// fetch per inbound request, no coalescing, no retry.
package imageproxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/tjwelchtj/maurice-burns-estate/internal/config"
)

// UpstreamError reports a non-success response from the image host. The
// handler turns it into a gateway error carrying the upstream status, the
// id, and the URL that was tried.
type UpstreamError struct {
	ID     string
	URL    string
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fetch image %s: %s returned status %d", e.ID, e.URL, e.Status)
}

// Result is a fetched image: raw bytes plus the upstream-reported content
// type, defaulted to image/jpeg when the upstream does not say.
type Result struct {
	Body        []byte
	ContentType string
}

// Fetcher retrieves image bytes by canonical file id, either from the
// public thumbnail endpoint or, when service account credentials are
// configured, through the Drive API (which also reaches non-public files).
type Fetcher struct {
	cfg    config.ImageConfig
	client *http.Client
	drive  *drive.Service
}

// NewFetcher builds a Fetcher from configuration. The Drive API client is
// only constructed when a credentials file is configured.
func NewFetcher(ctx context.Context, cfg config.ImageConfig) (*Fetcher, error) {
	f := &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
	if cfg.CredentialsFile != "" {
		svc, err := drive.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
		if err != nil {
			return nil, fmt.Errorf("create drive service: %w", err)
		}
		f.drive = svc
	}
	return f, nil
}

// Fetch retrieves the image for the given canonical file id.
func (f *Fetcher) Fetch(ctx context.Context, id string) (*Result, error) {
	if f.drive != nil {
		return f.fetchDrive(ctx, id)
	}
	return f.fetchThumbnail(ctx, id)
}

// fetchThumbnail follows redirects to the public thumbnail endpoint.
func (f *Fetcher) fetchThumbnail(ctx context.Context, id string) (*Result, error) {
	thumbURL := fmt.Sprintf(f.cfg.ThumbnailURL, url.QueryEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{ID: id, URL: thumbURL, Status: resp.StatusCode}
	}

	return readResult(resp)
}

// fetchDrive downloads the file content through the Drive API.
func (f *Fetcher) fetchDrive(ctx context.Context, id string) (*Result, error) {
	resp, err := f.drive.Files.Get(id).Context(ctx).Download()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, &UpstreamError{ID: id, URL: "drive:files/" + id, Status: gerr.Code}
		}
		return nil, fmt.Errorf("fetch image %s via drive api: %w", id, err)
	}
	defer resp.Body.Close()

	return readResult(resp)
}

func readResult(resp *http.Response) (*Result, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &Result{Body: body, ContentType: contentType}, nil
}
