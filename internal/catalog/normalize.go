package catalog

import (
	"math"
	"strconv"
	"strings"
)

// Policy controls the two normalization behaviors that vary by deployment:
// what a blank status becomes, and which status removes a row entirely.
// Either can be disabled with an empty string.
type Policy struct {
	DefaultStatus  string
	ExcludedStatus string
}

// normalizeRow turns one parsed record into an Item. It never fails: a
// malformed cell yields an empty (or nil) field and the row stays in play.
// Whether the row survives is decided later, on FileID alone.
func normalizeRow(r rawRow, p Policy) Item {
	it := Item{
		FileID:        ExtractFileID(cleanField(r.get("fileId"))),
		Filename:      cleanField(r.get("filename")),
		Title:         cleanField(r.get("title")),
		Year:          cleanField(r.get("year")),
		Medium:        cleanField(r.get("medium")),
		Dimensions:    cleanField(r.get("dimensions")),
		Price:         cleanField(r.get("price")),
		Status:        cleanField(r.get("status")),
		DriveImageURL: cleanField(r.get("driveImageUrl")),
		Description:   cleanField(r.get("description")),
		Notes:         cleanField(r.get("notes")),
		SortOrder:     parseSortOrder(r.get("sortOrder")),
	}

	if it.Status == "" && p.DefaultStatus != "" {
		it.Status = p.DefaultStatus
	}
	return it
}

// cleanField trims whitespace and strips one layer of enclosing straight
// quotes, which show up whenever the operator pastes a quoted value into a
// cell. Applying it twice is a no-op.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// parseSortOrder coerces the sortOrder cell to a number. Empty or
// non-numeric cells mean "no explicit order" (nil), never zero, which would
// wrongly rank the item first.
func parseSortOrder(s string) *float64 {
	s = cleanField(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		// ParseFloat accepts "NaN" and "Inf", neither of which can be
		// ordered against real ranks.
		return nil
	}
	return &n
}
