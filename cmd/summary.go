package cmd

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Report the tree shape of a hierarchy table",
	Long:  `Report the tree height, level column names, and per-level node counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndex()
		if err != nil {
			return err
		}
		renderSummary(cmd.OutOrStdout(), idx.Summarize())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
