package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  plain  ", "plain"},
		{`"quoted"`, "quoted"},
		{"'quoted'", "quoted"},
		{`  'ABC123'  `, "ABC123"},
		{`" padded inside "`, "padded inside"},
		{`don't`, "don't"},
		{`"`, `"`},
		{`""`, ""},
		{`'mismatched"`, `'mismatched"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanField(tt.in), "cleanField(%q)", tt.in)
	}
}

func TestCleanField_Idempotent(t *testing.T) {
	inputs := []string{`  "Sunset"  `, "'Dawn'", "plain", `it's fine`}
	for _, in := range inputs {
		once := cleanField(in)
		assert.Equal(t, once, cleanField(once), "second pass changed %q", in)
	}
}

func TestParseSortOrder(t *testing.T) {
	assert.Nil(t, parseSortOrder(""))
	assert.Nil(t, parseSortOrder("   "))
	assert.Nil(t, parseSortOrder("first"))
	assert.Nil(t, parseSortOrder("1,5"))

	if got := parseSortOrder("3"); assert.NotNil(t, got) {
		assert.Equal(t, 3.0, *got)
	}
	if got := parseSortOrder(" '2.5' "); assert.NotNil(t, got) {
		assert.Equal(t, 2.5, *got)
	}
}

func TestParseSortOrder_NonFinite(t *testing.T) {
	// ParseFloat accepts these spellings, but a NaN or infinite rank would
	// make the ordering comparison meaningless. Treat them as unranked.
	for _, s := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "Infinity"} {
		assert.Nil(t, parseSortOrder(s), "parseSortOrder(%q)", s)
	}
}

func TestNormalizeRow_QuotedFileIDRoundTrip(t *testing.T) {
	row := rawRow{"fileid": "  'ABCDEFGHIJ1234567890'  "}
	it := normalizeRow(row, Policy{})
	assert.Equal(t, "ABCDEFGHIJ1234567890", it.FileID)
}

func TestNormalizeRow_StatusPolicy(t *testing.T) {
	row := rawRow{"fileid": "ABCDEFGHIJ1234567890"}

	it := normalizeRow(row, Policy{DefaultStatus: "Available"})
	assert.Equal(t, "Available", it.Status)

	// defaulting disabled
	it = normalizeRow(row, Policy{})
	assert.Equal(t, "", it.Status)

	// explicit status always wins
	row["status"] = "Sold"
	it = normalizeRow(row, Policy{DefaultStatus: "Available"})
	assert.Equal(t, "Sold", it.Status)
}

func TestNormalizeRow_MalformedCellsDoNotDropRow(t *testing.T) {
	row := rawRow{
		"fileid":    "ABCDEFGHIJ1234567890",
		"title":     "  'Winter'  ",
		"sortorder": "not-a-number",
		"year":      "",
	}
	it := normalizeRow(row, Policy{DefaultStatus: "Available"})

	require.Equal(t, "ABCDEFGHIJ1234567890", it.FileID)
	assert.Equal(t, "Winter", it.Title)
	assert.Nil(t, it.SortOrder)
	assert.Empty(t, it.Year)
}

func TestHeaderKey(t *testing.T) {
	want := headerKey("fileId")
	for _, h := range []string{"File Id", "fileid", "file_id", " FILE-ID ", "File\tId"} {
		assert.Equal(t, want, headerKey(h), "headerKey(%q)", h)
	}
}
