package cmd

import (
	"github.com/spf13/cobra"
)

var nodesLevel int

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List the catalog nodes of a hierarchy table",
	Long:  `List every node derived from the hierarchy table, or only the nodes at one level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndex()
		if err != nil {
			return err
		}
		nodes := idx.Nodes()
		if nodesLevel > 0 {
			nodes = idx.NodesAt(nodesLevel)
		}
		renderNodes(cmd.OutOrStdout(), nodes)
		return nil
	},
}

func init() {
	nodesCmd.Flags().IntVarP(&nodesLevel, "level", "l", 0, "Only list nodes at this level (0 = all levels)")
	rootCmd.AddCommand(nodesCmd)
}
