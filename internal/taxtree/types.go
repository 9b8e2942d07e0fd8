package taxtree

// NodeState controls how a single node is treated during a split.
// The numeric values are a fixed, versioned contract shared with
// callers; they must never be renumbered.
type NodeState int

const (
	// StateRemoved excises the node and its entire subtree from the
	// result.
	StateRemoved NodeState = iota

	// StateExpanded promotes the node's direct children to the cut
	// instead of aggregating at the node. Expansion is single-level;
	// deeper expansion requires overrides on the children themselves.
	StateExpanded

	// StateAggregated collapses the node's entire subtree into one
	// group. This is the default for every untouched node at the cut
	// level.
	StateAggregated
)

// String returns the state name used in the public enumeration.
func (s NodeState) String() string {
	switch s {
	case StateRemoved:
		return "Removed"
	case StateExpanded:
		return "Expanded"
	case StateAggregated:
		return "Aggregated"
	}
	return "Unknown"
}

// NodeStates returns the fixed state enumeration keyed by name, for
// callers that reference states by value.
func NodeStates() map[string]NodeState {
	return map[string]NodeState{
		"Removed":    StateRemoved,
		"Expanded":   StateExpanded,
		"Aggregated": StateAggregated,
	}
}

// Node is one distinct ancestor category at some hierarchy level.
type Node struct {
	// ID uniquely identifies the node across the whole catalog, even
	// when labels collide on different branches.
	ID string

	// Parent is the id of the node one level up, empty at level 1.
	Parent string

	// Lineage is the delimiter-joined path of node ids from the root
	// down to this node, this node included.
	Lineage string

	// Label is the raw column value, used for display and grouping.
	Label string

	// Level is the 1-based depth, 1 = coarsest.
	Level int
}

// Summary is a read-only report of a TreeIndex's shape.
type Summary struct {
	Height        int      // number of level columns
	Levels        []string // level column names, coarsest first
	LeafColumn    string   // name of the leaf identity column
	LeafCount     int
	NodesPerLevel []int // node count at level i+1
}
