package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"

	"github.com/tjwelchtj/maurice-burns-estate/internal/config"
	"github.com/tjwelchtj/maurice-burns-estate/internal/logging"
)

// ErrNotConfigured is returned by Load when no source URL is configured.
var ErrNotConfigured = errors.New("catalog source URL is not configured")

// FetchError reports a failure retrieving the export: either a transport
// error (Status 0, wrapped cause) or a non-2xx upstream response.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch catalog export: %s returned status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch catalog export: %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// unrankedSentinel places items without an explicit sortOrder after every
// ranked item.
const unrankedSentinel = math.MaxFloat64

// Loader runs the full fetch-parse-normalize-sort cycle. It holds no state
// between invocations; every Load reflects the latest edit of the source,
// and concurrent Loads are independent.
type Loader struct {
	cfg    config.CatalogConfig
	client *http.Client
}

// NewLoader builds a Loader from configuration.
func NewLoader(cfg config.CatalogConfig) *Loader {
	return &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// Load fetches the configured export and returns the ordered item list.
//
// It fails with ErrNotConfigured when no source URL is set, *FetchError
// when the export cannot be retrieved, and *ParseError when the payload is
// structurally broken. Row-level problems never fail the load: rows without
// a usable file id and rows carrying the excluded status are dropped,
// everything else is normalized best-effort.
func (l *Loader) Load(ctx context.Context) ([]Item, error) {
	if l.cfg.SourceURL == "" {
		return nil, ErrNotConfigured
	}

	payload, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := parseExport(payload)
	if err != nil {
		return nil, err
	}

	policy := Policy{
		DefaultStatus:  l.cfg.DefaultStatus,
		ExcludedStatus: l.cfg.ExcludedStatus,
	}

	items := make([]Item, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		it := normalizeRow(row, policy)
		if it.FileID == "" {
			dropped++
			continue
		}
		if policy.ExcludedStatus != "" && it.Status == policy.ExcludedStatus {
			continue
		}
		items = append(items, it)
	}

	sortItems(items)
	for i := range items {
		items[i].Slug = slugFor(items[i])
	}

	if dropped > 0 {
		logging.FromContext(ctx).Warn("catalog rows dropped without file id", "dropped", dropped)
	}
	return items, nil
}

// fetch retrieves the raw export. The no-cache headers matter: the sheet is
// edited live and any intermediate cache would serve stale rows.
func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.SourceURL, nil)
	if err != nil {
		return nil, &FetchError{URL: l.cfg.SourceURL, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: l.cfg.SourceURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: l.cfg.SourceURL, Status: resp.StatusCode}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: l.cfg.SourceURL, Err: err}
	}
	return payload, nil
}

// sortItems orders by sortOrder ascending with unranked items last, then by
// case-insensitive title (falling back to filename). The sort is stable, so
// the order never depends on row arrival order in the source.
func sortItems(items []Item) {
	rank := func(it Item) float64 {
		if it.SortOrder == nil {
			return unrankedSentinel
		}
		return *it.SortOrder
	}

	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := rank(items[i]), rank(items[j])
		if ri != rj {
			return ri < rj
		}
		return items[i].sortKey() < items[j].sortKey()
	})
}
