package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// table is a CSV file read fully into memory with a header lookup
type table struct {
	file    string
	columns map[string]int
	rows    [][]string
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return parseTable(path, f)
}

func parseTable(name string, r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	columns := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		// pandas writes its index as a leading unnamed column
		if col == "" || strings.HasPrefix(col, "Unnamed:") {
			continue
		}
		if _, dup := columns[col]; !dup {
			columns[col] = i
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return &table{file: name, columns: columns, rows: rows}, nil
}

// require returns the index of the first present candidate column
func (t *table) require(candidates ...string) (int, error) {
	if idx, ok := t.optional(candidates...); ok {
		return idx, nil
	}
	return 0, &SchemaError{
		File:   t.file,
		Column: strings.Join(candidates, "|"),
		Err:    ErrMissingColumn,
	}
}

func (t *table) optional(candidates ...string) (int, bool) {
	for _, c := range candidates {
		if idx, ok := t.columns[c]; ok {
			return idx, true
		}
	}
	return 0, false
}

// cell returns the trimmed value at idx, or "" for short rows
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
