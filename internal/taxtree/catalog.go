package taxtree

import (
	"fmt"

	"github.com/google/uuid"
)

// lineageSep joins node ids inside a lineage path.
const lineageSep = ";"

// nodeNamespace seeds the SHA1-namespace uuids used as node ids.
// Changing it changes every id, so it is fixed for the life of the
// project.
var nodeNamespace = uuid.MustParse("9f2c41f0-5f6a-4c8e-9d21-7b3a8e6f0d54")

// nodeID derives a node id from the node's position in the hierarchy.
// The parent id already encodes the full ancestor path, so identical
// input tables always reproduce identical ids.
func nodeID(level int, parent, label string) string {
	return uuid.NewSHA1(nodeNamespace, fmt.Appendf(nil, "%d|%s|%s", level, parent, label)).String()
}

// NodeCatalog indexes every distinct (level, ancestor path, value)
// combination observed in a HierarchyTable. It is built once per
// TreeIndex and read-only afterwards.
type NodeCatalog struct {
	nodes    []*Node          // level ascending, first-seen row order within a level
	byID     map[string]*Node
	children map[string][]string // parent id -> child ids, first-seen order
}

// buildCatalog walks the table level by level, top-down, so every
// lineage is its parent's lineage with the node's own id appended.
// It returns the catalog and, per row, the id of the row's node at
// the deepest level.
func buildCatalog(t *HierarchyTable) (*NodeCatalog, []string) {
	c := &NodeCatalog{
		byID:     make(map[string]*Node),
		children: make(map[string][]string),
	}
	deepest := make([]string, t.LeafCount())
	for level := 1; level <= t.Height(); level++ {
		for i := 1; i <= t.LeafCount(); i++ {
			parent := deepest[i-1]
			label := t.value(i, level)
			id := nodeID(level, parent, label)
			if _, ok := c.byID[id]; !ok {
				node := &Node{
					ID:      id,
					Parent:  parent,
					Label:   label,
					Level:   level,
					Lineage: id,
				}
				if parent != "" {
					node.Lineage = c.byID[parent].Lineage + lineageSep + id
					c.children[parent] = append(c.children[parent], id)
				}
				c.nodes = append(c.nodes, node)
				c.byID[id] = node
			}
			deepest[i-1] = id
		}
	}
	return c, deepest
}

// Get returns the node with the given id.
func (c *NodeCatalog) Get(id string) (*Node, bool) {
	n, ok := c.byID[id]
	return n, ok
}

// Len returns the number of distinct nodes.
func (c *NodeCatalog) Len() int {
	return len(c.nodes)
}

// At returns the nodes at exactly the given level, in catalog order.
// The result is empty when no node exists at that level.
func (c *NodeCatalog) At(level int) []*Node {
	var out []*Node
	for _, n := range c.nodes {
		if n.Level == level {
			out = append(out, n)
		}
	}
	return out
}

// Children returns the direct child ids of a node in first-seen order.
func (c *NodeCatalog) Children(id string) []string {
	return c.children[id]
}

// ancestors walks the parent chain from the node upward, excluding
// the node itself, calling fn for each ancestor until fn returns
// false. Parent-pointer walks replace substring tests on the lineage
// string so that id prefixes can never produce false containment.
func (c *NodeCatalog) ancestors(n *Node, fn func(*Node) bool) {
	for p := n.Parent; p != ""; {
		anc := c.byID[p]
		if !fn(anc) {
			return
		}
		p = anc.Parent
	}
}

// path returns the nodes from the root down to n, n included.
func (c *NodeCatalog) path(n *Node) []*Node {
	out := make([]*Node, n.Level)
	out[n.Level-1] = n
	c.ancestors(n, func(a *Node) bool {
		out[a.Level-1] = a
		return true
	})
	return out
}
