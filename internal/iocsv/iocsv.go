// Package iocsv streams rows of a member export CSV file.
// Rows are read one at a time in file order; nothing is kept in memory
// beyond the header.
package iocsv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/swimroster/memimport/pkg/importer"
)

// Reader reads data rows of a CSV file with a header row.
type Reader struct {
	r      *csv.Reader
	closer io.Closer
	header []string
	index  map[string]int
	next   int
}

// Row is one data row. Cells are looked up by header name.
type Row struct {
	idx    int
	cells  []string
	header map[string]int
}

// Open opens the CSV file at path and reads its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}

	res, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	res.closer = f
	return res, nil
}

// NewReader reads the header from r and returns a Reader positioned at
// the first data row.
func NewReader(r io.Reader) (*Reader, error) {
	br := stripUTF8BOM(bufio.NewReader(r))
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, MissingHeaderError()
		}
		return nil, ReadError(err)
	}

	index := make(map[string]int, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if _, ok := index[header[i]]; !ok {
			index[header[i]] = i
		}
	}

	res := &Reader{
		r:      cr,
		header: header,
		index:  index,
	}
	return res, nil
}

// Header returns the column names as found in the file, trimmed.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next data row. It returns io.EOF after the last row.
// When a record cannot be parsed, Next returns the row position together
// with a MalformedRowError and the following call continues with the
// next record.
func (r *Reader) Next() (importer.Row, error) {
	rec, err := r.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	row := &Row{idx: r.next, header: r.index}
	r.next++

	if err != nil {
		var pErr *csv.ParseError
		if errors.As(err, &pErr) {
			return row, MalformedRowError(row.idx, pErr)
		}
		return nil, ReadError(err)
	}

	row.cells = rec
	return row, nil
}

// Close closes the underlying file if the Reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Index returns the 0-based position of the row among data rows.
func (r *Row) Index() int {
	return r.idx
}

// Get returns the raw cell of column col. ok is false when the file has
// no such column. A row shorter than the header has empty trailing cells.
func (r *Row) Get(col string) (string, bool) {
	i, ok := r.header[col]
	if !ok {
		return "", false
	}
	if i >= len(r.cells) {
		return "", true
	}
	return r.cells[i], true
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
