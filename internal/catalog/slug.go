package catalog

import (
	"regexp"
	"strings"
)

// slugTailLen is how many trailing characters of the file id disambiguate
// items that share a display name.
const slugTailLen = 6

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugFor derives the routing slug for an item: the lower-cased display
// name with every run of non-alphanumerics collapsed to a single hyphen,
// suffixed with the tail of the file id. Two items with the same title but
// different file ids therefore get distinct slugs.
func slugFor(it Item) string {
	base := it.Title
	if base == "" {
		base = it.Filename
	}
	if base == "" {
		base = "artwork"
	}

	base = strings.ToLower(base)
	base = nonSlugRe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	tail := it.FileID
	if len(tail) > slugTailLen {
		tail = tail[len(tail)-slugTailLen:]
	}

	if base == "" {
		return tail
	}
	return base + "-" + tail
}
