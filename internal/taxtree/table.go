package taxtree

import (
	"errors"
	"fmt"
)

// ErrEmptyHierarchy is returned when no leaves survive missing-value
// dropping and de-duplication.
var ErrEmptyHierarchy = errors.New("hierarchy has no leaves")

// HierarchyTable is the validated flat input: ordered level columns
// (coarsest to finest) plus one trailing leaf identity column, one row
// per leaf. Row order defines the stable 1-based otu index.
type HierarchyTable struct {
	featureOrder []string
	rows         [][]string
	index        map[string]int // leaf key -> 1-based otu index
}

// NewHierarchyTable validates and builds a table. featureOrder names
// the columns coarsest to finest; its last entry is the leaf identity
// column. Rows with a missing value at any configured column are
// dropped, duplicate leaf keys keep their first occurrence, and the
// retained rows are assigned contiguous otu indices 1..N.
func NewHierarchyTable(featureOrder []string, rows [][]string) (*HierarchyTable, error) {
	if len(featureOrder) < 2 {
		return nil, fmt.Errorf("feature order needs at least one level column and a leaf column, got %d", len(featureOrder))
	}
	t := &HierarchyTable{
		featureOrder: append([]string(nil), featureOrder...),
		index:        make(map[string]int),
	}
	for i, row := range rows {
		if len(row) != len(featureOrder) {
			return nil, fmt.Errorf("row %d has %d values, want %d", i, len(row), len(featureOrder))
		}
		if rowHasMissing(row) {
			continue
		}
		key := row[len(row)-1]
		if _, ok := t.index[key]; ok {
			// Duplicate leaf key, first occurrence wins.
			continue
		}
		t.rows = append(t.rows, append([]string(nil), row...))
		t.index[key] = len(t.rows)
	}
	if len(t.rows) == 0 {
		return nil, ErrEmptyHierarchy
	}
	return t, nil
}

// isMissing reports whether a cell counts as undefined. Taxonomy
// exports commonly use "NA" for unassigned ranks.
func isMissing(v string) bool {
	return v == "" || v == "NA"
}

func rowHasMissing(row []string) bool {
	for _, v := range row {
		if isMissing(v) {
			return true
		}
	}
	return false
}

// Height returns the number of level columns, the tree height. The
// leaf identity column does not count as a level.
func (t *HierarchyTable) Height() int {
	return len(t.featureOrder) - 1
}

// LeafCount returns the number of retained leaves.
func (t *HierarchyTable) LeafCount() int {
	return len(t.rows)
}

// Levels returns the level column names, coarsest first.
func (t *HierarchyTable) Levels() []string {
	return append([]string(nil), t.featureOrder[:t.Height()]...)
}

// LeafColumn returns the name of the leaf identity column.
func (t *HierarchyTable) LeafColumn() string {
	return t.featureOrder[len(t.featureOrder)-1]
}

// LeafKeys returns the leaf keys in otu index order.
func (t *HierarchyTable) LeafKeys() []string {
	keys := make([]string, len(t.rows))
	for i, row := range t.rows {
		keys[i] = row[len(row)-1]
	}
	return keys
}

// Index returns the 1-based otu index of a leaf key.
func (t *HierarchyTable) Index(key string) (int, bool) {
	idx, ok := t.index[key]
	return idx, ok
}

// value returns the cell for the row with otu index idx at level
// (1-based).
func (t *HierarchyTable) value(idx, level int) string {
	return t.rows[idx-1][level-1]
}

// Slice returns a new table restricted to leaves whose otu index lies
// in the inclusive range [start, end]. The result renumbers its otu
// indices from 1; an empty selection yields ErrEmptyHierarchy.
func (t *HierarchyTable) Slice(start, end int) (*HierarchyTable, error) {
	if start < 1 {
		start = 1
	}
	if end > len(t.rows) {
		end = len(t.rows)
	}
	if start > end {
		return nil, fmt.Errorf("slice [%d, %d]: %w", start, end, ErrEmptyHierarchy)
	}
	return NewHierarchyTable(t.featureOrder, t.rows[start-1:end])
}
