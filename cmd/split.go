package cmd

import (
	"fmt"
	"log/slog"

	"github.com/itsmostafa/treecut/internal/taxtree"
	"github.com/spf13/cobra"
)

var splitLevel int
var splitStart int
var splitEnd int
var splitFormat string
var removeNodes []string
var expandNodes []string
var aggregateNodes []string

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Cut the hierarchy at a level and group the leaves",
	Long: `Cut the tree at the selected level and partition the leaves into groups,
one per surviving node. Nodes named by --remove, --expand, or --aggregate
(by id or by label) override the default aggregate-at-cut behavior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndex()
		if err != nil {
			return err
		}

		overrides := make(map[string]taxtree.NodeState)
		collectOverrides(idx, overrides, removeNodes, taxtree.StateRemoved)
		collectOverrides(idx, overrides, expandNodes, taxtree.StateExpanded)
		collectOverrides(idx, overrides, aggregateNodes, taxtree.StateAggregated)

		res, err := idx.SplitAt(splitLevel, taxtree.SplitOptions{
			Overrides: overrides,
			Start:     splitStart,
			End:       splitEnd,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		switch splitFormat {
		case "list":
			renderGroups(w, res)
		case "table":
			for _, row := range res.Table() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", row.Group, row.LeafKey, row.Index)
			}
		case "agg":
			for _, row := range res.AggTable() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", row.Group, row.Indices, row.LeafKeys)
			}
		case "tree":
			reduced, err := res.TreeIndex()
			if err != nil {
				return err
			}
			renderSummary(w, reduced.Summarize())
		default:
			return fmt.Errorf("unknown format %q (want list, table, agg, or tree)", splitFormat)
		}
		return nil
	},
}

// collectOverrides resolves each name to a node id, accepting either
// an exact id or a label (first catalog match wins). Names that match
// nothing are logged and skipped; SplitAt ignores stale ids anyway.
func collectOverrides(idx *taxtree.TreeIndex, out map[string]taxtree.NodeState, names []string, state taxtree.NodeState) {
	for _, name := range names {
		id, ok := resolveNode(idx, name)
		if !ok {
			slog.Warn("override matches no node", "name", name)
			continue
		}
		out[id] = state
	}
}

func resolveNode(idx *taxtree.TreeIndex, name string) (string, bool) {
	for _, n := range idx.Nodes() {
		if n.ID == name {
			return n.ID, true
		}
	}
	for _, n := range idx.Nodes() {
		if n.Label == name {
			return n.ID, true
		}
	}
	return "", false
}

func init() {
	splitCmd.Flags().IntVarP(&splitLevel, "level", "l", taxtree.DefaultSplitLevel, "Level to cut the tree at (1 = coarsest)")
	splitCmd.Flags().IntVar(&splitStart, "start", 0, "First otu index to include (0 = from the beginning)")
	splitCmd.Flags().IntVar(&splitEnd, "end", 0, "Last otu index to include (0 = through the end)")
	splitCmd.Flags().StringVarP(&splitFormat, "format", "f", "list", "Output shape (list, table, agg, tree)")
	splitCmd.Flags().StringSliceVar(&removeNodes, "remove", nil, "Nodes (id or label) to excise with their subtrees")
	splitCmd.Flags().StringSliceVar(&expandNodes, "expand", nil, "Nodes (id or label) to expand into their children")
	splitCmd.Flags().StringSliceVar(&aggregateNodes, "aggregate", nil, "Nodes (id or label) to aggregate explicitly")
	rootCmd.AddCommand(splitCmd)
}
