package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseError reports a structural problem with the fetched export, such as
// an unterminated quoted field. Only the first problem is surfaced; Line is
// 1-based and 0 when the position is unknown.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse catalog export: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse catalog export: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// rawRow is a single data row keyed by canonicalized header name. It only
// lives between parsing and normalization.
type rawRow map[string]string

// get looks up a logical field by name, tolerant of the header spelling the
// operator happened to use.
func (r rawRow) get(name string) string {
	return r[headerKey(name)]
}

// headerKey canonicalizes a column header for lookup: "File Id", "fileid"
// and "file_id" all collapse to the same key.
func headerKey(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(strings.TrimSpace(s)) {
		switch c {
		case ' ', '\t', '_', '-':
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// xlsxMagic is the zip local-file-header signature. Published spreadsheet
// exports are either plain CSV or an xlsx workbook; the payload itself is
// the only reliable way to tell, since export URLs rarely carry a useful
// content type.
var xlsxMagic = []byte{'P', 'K', 0x03, 0x04}

// parseExport turns the raw payload into header-keyed rows. The first
// non-empty record is the header; fully blank records are skipped.
func parseExport(payload []byte) ([]rawRow, error) {
	var (
		records [][]string
		err     error
	)
	if bytes.HasPrefix(payload, xlsxMagic) {
		records, err = readWorkbook(payload)
	} else {
		records, err = readCSV(payload)
	}
	if err != nil {
		return nil, err
	}
	return keyRows(records), nil
}

func readCSV(payload []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(payload))
	// Operator-edited rows are frequently ragged; column count is resolved
	// per-field through the header index instead.
	r.FieldsPerRecord = -1

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, &ParseError{Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func readWorkbook(payload []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return rows, nil
}

// keyRows indexes data records by the canonicalized header row.
func keyRows(records [][]string) []rawRow {
	var header []string
	var out []rawRow

	for _, rec := range records {
		if blankRecord(rec) {
			continue
		}
		if header == nil {
			header = make([]string, len(rec))
			for i, h := range rec {
				header[i] = headerKey(h)
			}
			continue
		}

		row := make(rawRow, len(header))
		for i, key := range header {
			if key == "" || i >= len(rec) {
				continue
			}
			row[key] = rec[i]
		}
		out = append(out, row)
	}
	return out
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
