// Package tabular adapts generic tabular containers into the
// hierarchy table the taxtree core consumes. Only a CSV reader is
// provided; anything that can produce ordered string columns can
// build a HierarchyTable directly.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/itsmostafa/treecut/internal/taxtree"
)

// Options tunes CSV parsing. The zero value reads a comma-separated
// file with a header row.
type Options struct {
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// ReadFile reads a CSV file and builds a HierarchyTable from the
// columns named in featureOrder, coarsest level first with the leaf
// identity column last.
func ReadFile(path string, featureOrder []string, opts Options) (*taxtree.HierarchyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hierarchy table: %w", err)
	}
	defer f.Close()
	return Read(f, featureOrder, opts)
}

// Read builds a HierarchyTable from CSV data. The first record is the
// header; every column named in featureOrder must appear in it.
func Read(r io.Reader, featureOrder []string, opts Options) (*taxtree.HierarchyTable, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make([]int, len(featureOrder))
	for i, name := range featureOrder {
		cols[i] = -1
		for j, h := range header {
			if h == name {
				cols[i] = j
				break
			}
		}
		if cols[i] == -1 {
			return nil, fmt.Errorf("column %q not found in header", name)
		}
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		row := make([]string, len(cols))
		for i, j := range cols {
			if j < len(record) {
				row[i] = record[j]
			}
		}
		rows = append(rows, row)
	}
	return taxtree.NewHierarchyTable(featureOrder, rows)
}
