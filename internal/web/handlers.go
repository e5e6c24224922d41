package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tjwelchtj/maurice-burns-estate/internal/catalog"
	"github.com/tjwelchtj/maurice-burns-estate/internal/imageproxy"
	"github.com/tjwelchtj/maurice-burns-estate/internal/logging"
)

// handleIndex renders the catalog grid.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	items, err := s.loader.Load(r.Context())
	if err != nil {
		s.respondLoadError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Debug("catalog loaded", "items", len(items))

	s.render(w, r, "index.html", indexData{
		SiteTitle: s.cfg.Catalog.SiteTitle,
		Items:     itemViews(items),
	})
}

// handleItem renders a single item resolved by slug.
func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	items, err := s.loader.Load(r.Context())
	if err != nil {
		s.respondLoadError(w, r, err)
		return
	}

	for _, it := range items {
		if it.Slug == slug {
			s.render(w, r, "item.html", itemPageData{
				SiteTitle: s.cfg.Catalog.SiteTitle,
				Item:      newItemView(it),
			})
			return
		}
	}

	http.NotFound(w, r)
}

// handleCatalog returns the ordered item list as JSON.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := s.loader.Load(r.Context())
	if err != nil {
		s.respondLoadError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// imageErrorResponse is the structured payload for upstream image failures.
type imageErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
	ID     string `json:"id"`
	URL    string `json:"url,omitempty"`
}

// handleImage proxies image bytes for a canonical file id. An optional
// size=thumb|medium query downscales the upstream image before responding.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "missing image id")
		return
	}

	size := r.URL.Query().Get("size")
	if size != "" && !imageproxy.Sizes[size] {
		writeError(w, r, http.StatusBadRequest, "unknown image size")
		return
	}

	res, err := s.images.Fetch(r.Context(), id)
	if err != nil {
		logger := logging.FromContext(r.Context())
		if upErr, ok := err.(*imageproxy.UpstreamError); ok {
			logger.Warn("image upstream failed", "id", id, "upstream_status", upErr.Status)
			writeJSON(w, http.StatusBadGateway, imageErrorResponse{
				Error:  "failed to fetch image",
				Status: upErr.Status,
				ID:     upErr.ID,
				URL:    upErr.URL,
			})
			return
		}
		logger.Error("image fetch failed", "id", id, "error", err.Error())
		writeJSON(w, http.StatusBadGateway, imageErrorResponse{
			Error: "failed to fetch image",
			ID:    id,
		})
		return
	}

	body, contentType := res.Body, res.ContentType
	if size != "" {
		// A broken downscale never blocks the image; serve the original.
		if optimized, optimizedType, err := imageproxy.Optimize(body, size); err == nil {
			body, contentType = optimized, optimizedType
		} else {
			logging.FromContext(r.Context()).Warn("image optimize failed, serving original",
				"id", id, "size", size, "error", err.Error())
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(s.cfg.Image.CacheMaxAge))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func itemViews(items []catalog.Item) []itemView {
	views := make([]itemView, len(items))
	for i, it := range items {
		views[i] = newItemView(it)
	}
	return views
}
