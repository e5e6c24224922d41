// Package catalog implements the ingestion pipeline for the estate catalog:
// fetching the operator-maintained spreadsheet export, tolerantly parsing it,
// normalizing each row into an Item, and producing a deterministically
// ordered, slug-addressable list.
//
// The input is untrusted, hand-edited text. The design rule throughout is:
// fail closed on source-level problems (cannot fetch, cannot parse the
// table), fail open on row- and cell-level problems (a malformed cell
// degrades to an empty value; a row only drops out when it has no usable
// file id).
package catalog

import "strings"

// Item is one normalized catalog entry. Items are created fresh on every
// pipeline invocation and are read-only afterwards.
type Item struct {
	// FileID is the canonical Drive resource id. Always non-empty for items
	// that survive the pipeline.
	FileID string `json:"fileId"`

	Filename   string `json:"filename,omitempty"`
	Title      string `json:"title,omitempty"`
	Year       string `json:"year,omitempty"`
	Medium     string `json:"medium,omitempty"`
	Dimensions string `json:"dimensions,omitempty"`
	Price      string `json:"price,omitempty"`
	Status     string `json:"status,omitempty"`

	// DriveImageURL is the raw reference string as found in the sheet, kept
	// for diagnostics only. Image fetches always go through FileID.
	DriveImageURL string `json:"driveImageUrl,omitempty"`

	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`

	// SortOrder is the operator-assigned ranking. Nil means the row carries
	// no explicit order and sorts after all ordered rows.
	SortOrder *float64 `json:"sortOrder,omitempty"`

	// Slug is the routing identifier derived from the display name and the
	// tail of FileID.
	Slug string `json:"slug,omitempty"`
}

// DisplayName returns the human-readable name for the item: title, else
// filename, else "Untitled".
func (it Item) DisplayName() string {
	if it.Title != "" {
		return it.Title
	}
	if it.Filename != "" {
		return it.Filename
	}
	return "Untitled"
}

// Sold reports whether the item's status marks it as sold. Rendered pages
// suppress the price line for sold items.
func (it Item) Sold() bool {
	return strings.Contains(strings.ToLower(it.Status), "sold")
}

// sortKey returns the case-folded tiebreak key used after SortOrder:
// title, falling back to filename.
func (it Item) sortKey() string {
	name := it.Title
	if name == "" {
		name = it.Filename
	}
	return strings.ToLower(name)
}
