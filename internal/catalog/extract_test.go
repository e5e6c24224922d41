package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFileID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"bare id", "ABCDEFGHIJ1234567890", "ABCDEFGHIJ1234567890"},
		{"bare id with padding", "  ABCDEFGHIJ1234567890  ", "ABCDEFGHIJ1234567890"},
		{"query param", "https://host/x?id=ABC123", "ABC123"},
		{"share link path", "https://host/file/d/ABC123/view", "ABC123"},
		{"drive share link", "https://drive.google.com/file/d/XYZ789012345678901234/view?usp=sharing", "XYZ789012345678901234"},
		{"open link", "https://drive.google.com/open?id=1aBcD_e-F234567890qrs", "1aBcD_e-F234567890qrs"},
		{"thumbnail link", "https://drive.google.com/thumbnail?id=ABC123&sz=w2000", "ABC123"},
		{"id fragment without url", "id=ABC123", "ABC123"},
		{"id fragment mid-string", "garbage?id=ABC123&extra=1", "ABC123"},
		{"short token falls through unchanged", "shorttoken", "shorttoken"},
		{"unrecognized shape returns trimmed input", "  not/a/drive/link  ", "not/a/drive/link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFileID(tt.in))
		})
	}
}

// Long tokens without URL punctuation must come back verbatim; the extractor
// never second-guesses something that already looks like a Drive id.
func TestExtractFileID_BareTokensUnchanged(t *testing.T) {
	for _, id := range []string{
		"ABCDEFGHIJ1234567890",
		"1x2y3z4a5b6c7d8e9f0g1h2i3j4k",
		"____________________",
		"a-b-c-d-e-f-g-h-i-j-",
	} {
		assert.Equal(t, id, ExtractFileID(id))
	}
}
