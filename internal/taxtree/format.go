package taxtree

import (
	"strconv"
	"strings"
)

// SplitResult holds the groups computed by one SplitAt call. The
// grouping is computed once; the output shapes below are thin
// serializers over it.
type SplitResult struct {
	index  *TreeIndex
	level  int
	start  int
	end    int
	groups []*Group
}

// Groups returns the surviving groups in deterministic order.
func (r *SplitResult) Groups() []*Group {
	return r.groups
}

// List returns the grouping as a map from unique group label to the
// ordered otu indices of the group's members.
func (r *SplitResult) List() map[string][]int {
	out := make(map[string][]int, len(r.groups))
	for _, g := range r.groups {
		out[g.Label] = append([]int(nil), g.Indices...)
	}
	return out
}

// GroupRow is one (group, member) pairing of the flat table shape.
type GroupRow struct {
	Group   string
	NodeID  string
	LeafKey string
	Index   int
}

// Table returns the grouping as a flat table with one row per
// (group, member) pair, groups in order, members by ascending index.
func (r *SplitResult) Table() []GroupRow {
	var rows []GroupRow
	for _, g := range r.groups {
		for i, idx := range g.Indices {
			rows = append(rows, GroupRow{
				Group:   g.Label,
				NodeID:  g.Node.ID,
				LeafKey: g.Leaves[i],
				Index:   idx,
			})
		}
	}
	return rows
}

// AggRow is one group of the aggregate table shape, with members
// serialized as comma-joined strings.
type AggRow struct {
	Group    string
	NodeID   string
	Indices  string
	LeafKeys string
}

// AggTable returns the grouping with one row per group and the
// member indices and leaf keys comma-joined.
func (r *SplitResult) AggTable() []AggRow {
	var rows []AggRow
	for _, g := range r.groups {
		idxs := make([]string, len(g.Indices))
		for i, idx := range g.Indices {
			idxs[i] = strconv.Itoa(idx)
		}
		rows = append(rows, AggRow{
			Group:    g.Label,
			NodeID:   g.Node.ID,
			Indices:  strings.Join(idxs, ","),
			LeafKeys: strings.Join(g.Leaves, ","),
		})
	}
	return rows
}

// groupColumn names the leaf identity column of a materialized
// level-cut index.
const groupColumn = "Group"

// TreeIndex materializes the grouping as a new, shallower index. Its
// table keeps the level columns up to the cut level plus a group leaf
// column, one row per surviving group. A group shallower than the cut
// (an aggregated ancestor) fills its missing deeper levels with its
// own label; a group deeper than the cut (an expanded child) reports
// its ancestors at the kept levels. An empty grouping cannot be
// materialized and surfaces ErrEmptyHierarchy.
func (r *SplitResult) TreeIndex() (*TreeIndex, error) {
	order := append(r.index.table.Levels()[:r.level:r.level], groupColumn)
	rows := make([][]string, 0, len(r.groups))
	for _, g := range r.groups {
		row := make([]string, 0, len(order))
		path := r.index.catalog.path(&g.Node)
		for lvl := 1; lvl <= r.level; lvl++ {
			if lvl <= g.Node.Level {
				row = append(row, path[lvl-1].Label)
			} else {
				row = append(row, g.Label)
			}
		}
		row = append(row, g.Label)
		rows = append(rows, row)
	}
	table, err := NewHierarchyTable(order, rows)
	if err != nil {
		return nil, err
	}
	return New(table)
}
