package wcsv

import (
	"bytes"
	"encoding/binary"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"unicode/utf16"
)

// =============================================================================
// Test Helper Functions
// =============================================================================

// writeTempFile writes data to a fresh file under t.TempDir and returns its path.
func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// openString writes s as UTF-8 to a temp file and opens it.
func openString(t *testing.T, s string, ignoreComments bool) *Reader {
	t.Helper()
	r, err := Open(writeTempFile(t, []byte(s)), UTF8, ignoreComments)
	if err != nil {
		t.Fatalf("Open(%q): %v", s, err)
	}
	return r
}

// utf16LEBytes encodes s as little-endian UTF-16 without a BOM.
func utf16LEBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	return b
}

// readItems walks every record with NextItem and a buffer large enough to
// never truncate.
func readItems(t *testing.T, r *Reader) [][]string {
	t.Helper()
	buf := make([]uint16, 4096)
	var records [][]string
	r.TopOfFile()
	for !r.EndOfFile() {
		var record []string
		for {
			n, ok := r.NextItem(buf)
			if !ok {
				break
			}
			if r.Truncated() {
				t.Fatalf("record %d: unexpected truncation", r.RecordIndex())
			}
			record = append(record, string(utf16.Decode(buf[:n])))
		}
		records = append(records, record)
		r.NextRecord()
	}
	return records
}

// assertRecords fails the test if got and want differ. A nil and an empty
// want are equivalent.
func assertRecords(t *testing.T, got, want [][]string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("records mismatch:\ngot  %q\nwant %q", got, want)
	}
}

// compareWithStdlib checks that wcsv and encoding/csv agree on input. Only
// inputs where the two dialects coincide belong here: no CR inside quoted
// fields, no trailing comma at end of input, no whitespace-only lines.
func compareWithStdlib(t *testing.T, input string, ignoreComments bool) {
	t.Helper()

	std := csv.NewReader(strings.NewReader(input))
	std.FieldsPerRecord = -1
	std.TrimLeadingSpace = true
	if ignoreComments {
		std.Comment = '#'
	}
	want, err := std.ReadAll()
	if err != nil {
		t.Fatalf("encoding/csv ReadAll(%q): %v", input, err)
	}

	r, err := NewReaderBytes([]byte(input), ReaderOptions{IgnoreComments: ignoreComments})
	if err != nil {
		t.Fatalf("NewReaderBytes(%q): %v", input, err)
	}
	got := r.ReadAll()

	if len(got) != len(want) || (len(got) > 0 && !reflect.DeepEqual(got, want)) {
		t.Errorf("input %q:\nencoding/csv=%q\nwcsv=%q", input, want, got)
	}
}

// =============================================================================
// Benchmark Data Generators
// =============================================================================

// generateSimpleCSV generates CSV data with simple unquoted fields.
func generateSimpleCSV(numRows, numCols int) []byte {
	var buf bytes.Buffer
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString("field")
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// generateQuotedCSV generates CSV data with quoted fields containing commas
// and escaped quotes.
func generateQuotedCSV(numRows, numCols int) []byte {
	var buf bytes.Buffer
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(`"he said ""hi"", twice"`)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
