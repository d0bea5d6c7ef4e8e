package wcsv

import (
	"reflect"
	"testing"
	"unicode/utf16"
	"unicode/utf8"
)

// FuzzNextItem checks that bounded and unbounded extraction agree, that
// NextItem never writes past its buffer, and that the line index is sane.
func FuzzNextItem(f *testing.F) {
	seeds := []string{
		"",
		"a,b,c\n",
		"a,\"b,b\",c\n",
		"a,\"b\nc\",d\n",
		"\"unterminated\n",
		"a\"b,c\n",
		"one\r\ntwo\r\n",
		"#comment\nx\n",
		"  \n\t,\n",
		"\"\"\"\",\"\n",
	}
	for _, seed := range seeds {
		f.Add(seed, uint8(4), false)
		f.Add(seed, uint8(1), true)
	}

	f.Fuzz(func(t *testing.T, input string, capacity uint8, ignoreComments bool) {
		if len(input) > 1<<12 || !utf8.ValidString(input) {
			t.Skip()
		}
		opts := ReaderOptions{IgnoreComments: ignoreComments}

		r, err := NewReaderBytes([]byte(input), opts)
		if err != nil {
			t.Fatalf("NewReaderBytes: %v", err)
		}
		for i := 1; i < len(r.lines); i++ {
			if r.lines[i] <= r.lines[i-1] {
				t.Fatalf("line index not increasing: %v", r.lines)
			}
		}

		full := r.ReadAll()

		const guard = 0xBEEF
		size := int(capacity)
		buf := make([]uint16, size+2)
		var bounded [][]string
		r.TopOfFile()
		for !r.EndOfFile() {
			var record []string
			for {
				for i := range buf {
					buf[i] = guard
				}
				n, ok := r.NextItem(buf[:size])
				if buf[size] != guard || buf[size+1] != guard {
					t.Fatalf("NextItem wrote past capacity %d", size)
				}
				if !ok {
					break
				}
				if n >= size || buf[n] != 0 {
					t.Fatalf("n = %d with capacity %d lacks terminator", n, size)
				}
				record = append(record, string(utf16.Decode(buf[:n])))
			}
			bounded = append(bounded, record)
			r.NextRecord()
		}

		if len(bounded) != len(full) {
			t.Fatalf("record count mismatch: bounded %d, full %d", len(bounded), len(full))
		}
		if size == 0 {
			return
		}
		for i := range full {
			if len(bounded[i]) != len(full[i]) {
				t.Fatalf("record %d field count: bounded %d, full %d", i, len(bounded[i]), len(full[i]))
			}
		}
		if len(full) > 0 && !anyLongerThan(full, size-1) && !reflect.DeepEqual(bounded, full) {
			t.Fatalf("records differ:\nbounded %q\nfull    %q", bounded, full)
		}
	})
}

func anyLongerThan(records [][]string, n int) bool {
	for _, record := range records {
		for _, field := range record {
			if len(utf16.Encode([]rune(field))) > n {
				return true
			}
		}
	}
	return false
}
