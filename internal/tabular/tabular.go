// Package tabular is the interchange boundary between the derived tables
// and anything that renders or re-imports them. Tables are CSV with a
// header row; fields containing commas or quotes are quoted with internal
// quotes doubled, and missing values serialize as empty strings.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrTooShort marks a blob with no header or no data rows. Callers skip
// such files rather than failing the batch.
var ErrTooShort = errors.New("tabular: fewer than two lines")

// Table is an ordered header plus string-valued rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Encode writes the table as CSV, header first.
func Encode(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile encodes the table into a file, replacing any existing content.
func WriteFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	if err := Encode(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Parse reads a CSV blob into a Table. Rows shorter than the header are
// padded with empty strings so positional access is always safe.
func Parse(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) < 2 {
		return Table{}, ErrTooShort
	}

	t := Table{Header: records[0]}
	for _, row := range records[1:] {
		for len(row) < len(t.Header) {
			row = append(row, "")
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Column returns the index of a named column, or -1.
func (t Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Number opportunistically parses a cell as a number. It reports false
// unless the whole cell is a numeric literal.
func Number(cell string) (float64, bool) {
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
