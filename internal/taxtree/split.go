package taxtree

import (
	"errors"
	"fmt"
)

// DefaultSplitLevel is the cut depth used when callers do not choose
// one.
const DefaultSplitLevel = 3

// ErrLevelOutOfRange is returned when a split targets a level below 1
// or beyond the tree height. The level is never silently clamped.
var ErrLevelOutOfRange = errors.New("level out of range")

// SplitOptions tunes a SplitAt call. The zero value is a pure level
// cut over the full otu index range.
type SplitOptions struct {
	// Overrides maps node ids to states that replace the default
	// Aggregated behavior. Ids not present in the catalog are ignored,
	// since overrides may reference stale ids after a Subset.
	Overrides map[string]NodeState

	// Start and End bound the otu indices considered, inclusive.
	// Zero means unbounded on that side. Start > End yields an empty
	// result, not an error.
	Start, End int
}

// Group is one surviving frontier node together with its collected
// member leaves, sorted by otu index.
type Group struct {
	Node    Node
	Label   string // disambiguated, filesystem-safe
	Indices []int
	Leaves  []string // leaf keys, aligned with Indices
}

// SplitAt cuts the tree at the given level and partitions the leaves
// into groups, one per surviving frontier node. The frontier starts
// as the set of nodes at the cut level, every one implicitly
// Aggregated, then the overrides are resolved:
//
//   - Expanded nodes leave the frontier and their direct children
//     join it (one level only; deeper expansion needs overrides on
//     the children themselves).
//   - A node that is Removed, or has a Removed ancestor, is excluded.
//     Removal wins over any aggregation override on the same chain.
//   - A node with an Aggregated ancestor in the frontier is excluded;
//     the ancestor's group already represents its leaves.
//
// The surviving groups are returned in catalog order with their
// member leaves joined against the otu index range. Groups left with
// no members are dropped.
func (x *TreeIndex) SplitAt(level int, opts SplitOptions) (*SplitResult, error) {
	if level < 1 || level > x.Height() {
		return nil, fmt.Errorf("%w: level %d, tree height %d", ErrLevelOutOfRange, level, x.Height())
	}

	start, end := opts.Start, opts.End
	if start <= 0 {
		start = 1
	}
	if end <= 0 || end > x.LeafCount() {
		end = x.LeafCount()
	}

	states, overrides := x.resolveStates(level, opts.Overrides)
	survivors := x.surviveFrontier(states, overrides)

	groups := x.collectMembers(survivors, overrides, start, end)
	assignLabels(groups)

	return &SplitResult{
		index:  x,
		level:  level,
		start:  start,
		end:    end,
		groups: groups,
	}, nil
}

// resolveStates builds the effective per-node state map: the level
// frontier defaults to Aggregated, caller overrides are merged in,
// and every Expanded tag is replaced by that node's direct children.
// It also returns the filtered override map for ancestor checks.
func (x *TreeIndex) resolveStates(level int, raw map[string]NodeState) (map[string]NodeState, map[string]NodeState) {
	states := make(map[string]NodeState)
	for _, n := range x.catalog.At(level) {
		states[n.ID] = StateAggregated
	}

	overrides := make(map[string]NodeState)
	for id, st := range raw {
		if _, ok := x.catalog.Get(id); ok {
			overrides[id] = st
			states[id] = st
		}
	}

	// Expansion pass. Children inherit the Aggregated default unless
	// they carry an explicit override; an Expanded child chains one
	// more level down.
	var queue []string
	for _, n := range x.catalog.nodes {
		if st, ok := states[n.ID]; ok && st == StateExpanded {
			queue = append(queue, n.ID)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		children := x.catalog.Children(id)
		if len(children) == 0 {
			// Nothing to promote. The node stays in the frontier as
			// an ordinary aggregate so its leaves are not lost.
			states[id] = StateAggregated
			continue
		}
		delete(states, id)
		for _, child := range children {
			st, ok := overrides[child]
			if !ok {
				st = StateAggregated
			}
			states[child] = st
			if st == StateExpanded {
				queue = append(queue, child)
			}
		}
	}
	return states, overrides
}

// surviveFrontier applies removal first, then ancestor-aggregation
// exclusion, and returns the surviving nodes in catalog order.
func (x *TreeIndex) surviveFrontier(states, overrides map[string]NodeState) []*Node {
	var survivors []*Node
	for _, n := range x.catalog.nodes {
		if st, ok := states[n.ID]; !ok || st != StateAggregated {
			continue
		}
		if x.removedThrough(n, overrides) {
			continue
		}
		if x.absorbedByAncestor(n, states) {
			continue
		}
		survivors = append(survivors, n)
	}
	return survivors
}

// removedThrough reports whether the node itself or any ancestor
// carries a Removed override.
func (x *TreeIndex) removedThrough(n *Node, overrides map[string]NodeState) bool {
	if st, ok := overrides[n.ID]; ok && st == StateRemoved {
		return true
	}
	removed := false
	x.catalog.ancestors(n, func(a *Node) bool {
		if st, ok := overrides[a.ID]; ok && st == StateRemoved {
			removed = true
			return false
		}
		return true
	})
	return removed
}

// absorbedByAncestor reports whether a strict ancestor of the node is
// itself an Aggregated member of the frontier, which already absorbs
// this node's subtree.
func (x *TreeIndex) absorbedByAncestor(n *Node, states map[string]NodeState) bool {
	absorbed := false
	x.catalog.ancestors(n, func(a *Node) bool {
		if st, ok := states[a.ID]; ok && st == StateAggregated {
			absorbed = true
			return false
		}
		return true
	})
	return absorbed
}

// collectMembers joins the surviving nodes against the leaf
// membership map and the otu index range. Each leaf is attributed to
// the deepest surviving node on its ancestor chain, walking upward
// from the leaf's own node; hitting a Removed override on the way up
// excises the leaf before any shallower group can claim it. Leaves
// arrive in ascending index order because the table rows define that
// order.
func (x *TreeIndex) collectMembers(survivors []*Node, overrides map[string]NodeState, start, end int) []*Group {
	owners := make(map[string]*Group, len(survivors))
	groups := make([]*Group, 0, len(survivors))
	for _, n := range survivors {
		g := &Group{Node: *n}
		owners[n.ID] = g
		groups = append(groups, g)
	}

	for i, key := range x.table.LeafKeys() {
		idx := i + 1
		if idx < start || idx > end {
			continue
		}
		var g *Group
		for n := x.catalog.byID[x.membership[key]]; n != nil; {
			if st, ok := overrides[n.ID]; ok && st == StateRemoved {
				g = nil
				break
			}
			if found, ok := owners[n.ID]; ok {
				g = found
				break
			}
			if n.Parent == "" {
				break
			}
			n = x.catalog.byID[n.Parent]
		}
		if g == nil {
			continue // no surviving node on the leaf's chain
		}
		g.Indices = append(g.Indices, idx)
		g.Leaves = append(g.Leaves, key)
	}

	// Drop groups with no members in range.
	kept := groups[:0]
	for _, g := range groups {
		if len(g.Indices) > 0 {
			kept = append(kept, g)
		}
	}
	return kept
}

// assignLabels gives every group a unique, filesystem-safe label.
// Collisions get a deterministic numeric suffix in group order; the
// suffix keeps incrementing until the candidate is unused, so a
// generated label can never collide with a later group's natural
// label. Identical input always produces identical labels.
func assignLabels(groups []*Group) {
	assigned := make(map[string]bool, len(groups))
	for _, g := range groups {
		base := sanitizeLabel(g.Node.Label)
		label := base
		for n := 2; assigned[label]; n++ {
			label = fmt.Sprintf("%s_%d", base, n)
		}
		assigned[label] = true
		g.Label = label
	}
}

// sanitizeLabel maps a raw column value to a label safe for file
// names and map keys.
func sanitizeLabel(s string) string {
	out := []byte(s)
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
