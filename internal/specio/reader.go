package specio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-splash/msspectrum"
)

// ErrTooManyFields is recorded for lines with more than three fields.
var ErrTooManyFields = errors.New("specio: too many fields")

const maxLineBytes = 64 << 20

// Record is one spectrum read from a stream.
//
// Err is set when the line was read but could not be decoded; the
// remaining fields are filled in as far as decoding got.
type Record struct {
	ID       string
	Source   string
	Line     int
	Ions     msspectrum.Ions
	Expected string
	Err      error
}

// Reader reads records from a line-oriented stream.
type Reader struct {
	source  string
	scanner *bufio.Scanner
	line    int
}

// NewReader returns a Reader over r. source names the stream in record IDs
// and errors.
func NewReader(r io.Reader, source string) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{source: source, scanner: sc}
}

// Next returns the next record. Blank lines and lines starting with '#' are
// skipped. It returns io.EOF after the last record; any other error is an I/O
// error from the underlying stream.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return r.decode(text), nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("specio: %s: %w", r.source, err)
	}
	return Record{}, io.EOF
}

func (r *Reader) decode(text string) Record {
	rec := Record{
		ID:     r.source + ":" + strconv.Itoa(r.line),
		Source: r.source,
		Line:   r.line,
	}

	fields := splitFields(text)
	var peaks string
	switch len(fields) {
	case 1:
		peaks = fields[0]
	case 2:
		rec.ID, peaks = fields[0], fields[1]
	case 3:
		rec.ID, peaks, rec.Expected = fields[0], fields[1], fields[2]
	default:
		rec.Err = fmt.Errorf("%w: line %d has %d fields", ErrTooManyFields, r.line, len(fields))
		return rec
	}

	ions, err := ParsePeaks(peaks)
	if err != nil {
		rec.Err = fmt.Errorf("line %d: %w", r.line, err)
		return rec
	}
	rec.Ions = ions
	return rec
}

// splitFields splits on tabs when the line has any, otherwise on commas.
func splitFields(text string) []string {
	sep := ","
	if strings.Contains(text, "\t") {
		sep = "\t"
	}
	fields := strings.Split(text, sep)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// ReadAll reads every record from r.
func ReadAll(r io.Reader, source string) ([]Record, error) {
	rd := NewReader(r, source)
	var out []Record
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
