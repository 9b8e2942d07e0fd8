package taxtree

import (
	"errors"
)

// TreeIndex ties a HierarchyTable to its derived NodeCatalog and leaf
// membership map. It is immutable after construction: subsetting and
// level-cut materialization always return a new, independent index
// rebuilt from the filtered table, never a view.
type TreeIndex struct {
	table      *HierarchyTable
	catalog    *NodeCatalog
	membership map[string]string // leaf key -> node id at the deepest level
}

// New builds a TreeIndex from a validated table. Construction is
// all-or-nothing; on error no partial index is returned.
func New(table *HierarchyTable) (*TreeIndex, error) {
	if table == nil {
		return nil, errors.New("nil hierarchy table")
	}
	catalog, deepest := buildCatalog(table)
	membership := make(map[string]string, table.LeafCount())
	for i, key := range table.LeafKeys() {
		membership[key] = deepest[i]
	}
	return &TreeIndex{
		table:      table,
		catalog:    catalog,
		membership: membership,
	}, nil
}

// Table returns the underlying hierarchy table.
func (x *TreeIndex) Table() *HierarchyTable {
	return x.table
}

// Height returns the tree height in levels.
func (x *TreeIndex) Height() int {
	return x.table.Height()
}

// LeafCount returns the number of indexed leaves.
func (x *TreeIndex) LeafCount() int {
	return x.table.LeafCount()
}

// Nodes returns every catalog node, deduplicated, in catalog order.
func (x *TreeIndex) Nodes() []Node {
	out := make([]Node, 0, x.catalog.Len())
	for _, n := range x.catalog.nodes {
		out = append(out, *n)
	}
	return out
}

// NodesAt returns the nodes at exactly the given level. A level with
// no nodes yields an empty result, not an error.
func (x *TreeIndex) NodesAt(level int) []Node {
	var out []Node
	for _, n := range x.catalog.At(level) {
		out = append(out, *n)
	}
	return out
}

// Member returns the id of the deepest-level node a leaf belongs to.
func (x *TreeIndex) Member(leafKey string) (string, bool) {
	id, ok := x.membership[leafKey]
	return id, ok
}

// Subset returns a new TreeIndex restricted to leaves with otu index
// in [start, end]. The catalog and membership are re-derived from the
// filtered table, so no stale node identity survives the cut.
func (x *TreeIndex) Subset(start, end int) (*TreeIndex, error) {
	sliced, err := x.table.Slice(start, end)
	if err != nil {
		return nil, err
	}
	return New(sliced)
}

// Summarize reports the tree shape: height, level names, and node
// counts per level.
func (x *TreeIndex) Summarize() Summary {
	s := Summary{
		Height:        x.Height(),
		Levels:        x.table.Levels(),
		LeafColumn:    x.table.LeafColumn(),
		LeafCount:     x.LeafCount(),
		NodesPerLevel: make([]int, x.Height()),
	}
	for _, n := range x.catalog.nodes {
		s.NodesPerLevel[n.Level-1]++
	}
	return s
}
