// Package taxtree builds an indexed tree representation of a flat,
// multi-level hierarchy table (for example a taxonomic lineage table
// mapping OTUs to successive ancestor ranks) and answers level-cut
// queries against it.
//
// # Overview
//
// A HierarchyTable is the validated input: an ordered set of level
// columns (coarsest to finest) plus one leaf identity column, one row
// per leaf. From it a NodeCatalog is derived once, assigning every
// distinct (level, ancestor path, value) combination a stable node id
// with parent links and a lineage path. A TreeIndex ties the table,
// the catalog, and the leaf membership map together and exposes the
// read queries and the SplitAt partitioning operation.
//
// # Key Concepts
//
//   - Leaf: one table row, identified by its leaf key and a stable,
//     contiguous 1-based otu index defined by row order.
//
//   - Node: a distinct category at one level. Ids are derived
//     deterministically from the node's path, so rebuilding the index
//     from identical input reproduces identical ids.
//
//   - Level cut: SplitAt selects all nodes at a target depth and
//     collapses each surviving node's subtree into one leaf group.
//     Per-node state overrides (Removed, Expanded, Aggregated) bend
//     the cut around individual nodes.
//
// # Usage
//
//	table, err := taxtree.NewHierarchyTable(
//		[]string{"Kingdom", "Phylum", "Genus", "OTU"}, rows)
//	idx, err := taxtree.New(table)
//	res, err := idx.SplitAt(2, taxtree.SplitOptions{})
//	groups := res.List() // group label -> ordered otu indices
//
// # Architecture
//
// The package is organized into several components:
//
//   - table.go: HierarchyTable validation and row-range slicing
//   - catalog.go: NodeCatalog construction and ancestor queries
//   - treeindex.go: TreeIndex composition, node queries, subsetting
//   - split.go: the SplitAt frontier-resolution algorithm
//   - format.go: output shapes layered over one grouping computation
package taxtree
