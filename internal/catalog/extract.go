package catalog

import (
	"net/url"
	"regexp"
	"strings"
)

// bareIDMinLen is the shortest string accepted as an already-bare Drive id.
// Drive ids are long opaque tokens (20+ characters); anything shorter that
// contains no URL punctuation is more likely a mangled cell than an id, so
// it still falls through the URL-shaped matchers below.
const bareIDMinLen = 20

var (
	// .../file/d/<ID>/view style share links
	filePathIDRe = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)

	// id=<ID> as query-like text, even when the whole string is not a URL
	queryIDRe = regexp.MustCompile(`(?:^|[?&])id=([a-zA-Z0-9_-]+)`)
)

// ExtractFileID derives the canonical Drive resource id from whatever the
// operator pasted into the sheet: a bare id, a share link, a thumbnail URL,
// or a fragment of one. It never fails; input that matches no known shape
// comes back trimmed but otherwise unchanged, which keeps a best-effort id
// in play rather than dropping the row over a formatting quirk.
//
// Match order, first hit wins:
//  1. empty input returns ""
//  2. a long token with no '/' or '?' is already an id
//  3. the id query parameter of a well-formed URL
//  4. the <ID> in a /file/d/<ID>/... path
//  5. an id=<ID> fragment anywhere in the string
//  6. the trimmed input as-is
func ExtractFileID(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}

	if !strings.ContainsAny(v, "/?") && len(v) >= bareIDMinLen {
		return v
	}

	// url.Parse accepts almost anything, so an empty id query parameter is
	// the signal to keep trying, not the parse error.
	if u, err := url.Parse(v); err == nil {
		if id := strings.TrimSpace(u.Query().Get("id")); id != "" {
			return id
		}
	}

	if m := filePathIDRe.FindStringSubmatch(v); m != nil {
		return m[1]
	}

	if m := queryIDRe.FindStringSubmatch(v); m != nil {
		return m[1]
	}

	return v
}
