package web

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/tjwelchtj/maurice-burns-estate/internal/catalog"
	"github.com/tjwelchtj/maurice-burns-estate/internal/logging"
)

//go:embed templates
var templateFiles embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// indexData is the model for the catalog grid page.
type indexData struct {
	SiteTitle string
	Items     []itemView
}

// itemPageData is the model for a single item page.
type itemPageData struct {
	SiteTitle string
	Item      itemView
}

// itemView wraps an Item with the derived display strings the templates
// need, so the templates stay free of conditional logic.
type itemView struct {
	catalog.Item

	Name      string
	ImageURL  string
	ThumbURL  string
	DetailURL string
	MetaLine  string // "2001 · Oil on canvas"

	// PriceLabel is empty for sold items; otherwise the listed price or the
	// inquiries fallback.
	PriceLabel string
}

func newItemView(it catalog.Item) itemView {
	v := itemView{
		Item:      it,
		Name:      it.DisplayName(),
		ImageURL:  "/img/" + url.PathEscape(it.FileID),
		DetailURL: "/art/" + url.PathEscape(it.Slug),
	}
	v.ThumbURL = v.ImageURL + "?size=medium"

	var meta []string
	if it.Year != "" {
		meta = append(meta, it.Year)
	}
	if it.Medium != "" {
		meta = append(meta, it.Medium)
	}
	v.MetaLine = strings.Join(meta, " · ")

	if !it.Sold() {
		if it.Price != "" {
			v.PriceLabel = it.Price
		} else {
			v.PriceLabel = "Inquiries only"
		}
	}
	return v
}

// render writes a template with the given data. Template failures after the
// first byte cannot change the status code anymore, so they are only logged.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logging.FromContext(r.Context()).Error("template render failed", "template", name, "error", err.Error())
	}
}
