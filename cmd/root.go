package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/itsmostafa/treecut/internal/tabular"
	"github.com/itsmostafa/treecut/internal/taxtree"
	"github.com/itsmostafa/treecut/internal/version"
	"github.com/spf13/cobra"
)

var inputFile string
var columnSpec string
var delimiter string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "treecut",
	Short: "Index and split multi-level hierarchy tables",
	Long: `treecut builds a tree index over a flat hierarchy table (for example a
taxonomic lineage table mapping OTUs to ancestor ranks) and cuts it at an
arbitrary level, with per-node keep/expand/aggregate/remove overrides,
emitting leaf groupings in several output shapes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("treecut %s\n", version.String()))

	// Delimiter flag with env var fallback
	defaultDelim := ","
	if envDelim := os.Getenv("TREECUT_DELIM"); envDelim != "" {
		defaultDelim = envDelim
	}
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "Path to the hierarchy table CSV")
	rootCmd.PersistentFlags().StringVarP(&columnSpec, "columns", "c", "", "Comma-separated level columns, coarsest first, leaf column last")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delim", defaultDelim, "CSV field delimiter")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadIndex reads the CSV named by the persistent flags and builds a
// TreeIndex from it.
func loadIndex() (*taxtree.TreeIndex, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("--input is required")
	}
	if columnSpec == "" {
		return nil, fmt.Errorf("--columns is required")
	}
	featureOrder := strings.Split(columnSpec, ",")
	for i := range featureOrder {
		featureOrder[i] = strings.TrimSpace(featureOrder[i])
	}

	opts := tabular.Options{}
	if delimiter != "" {
		opts.Comma = []rune(delimiter)[0]
	}
	table, err := tabular.ReadFile(inputFile, featureOrder, opts)
	if err != nil {
		return nil, err
	}
	idx, err := taxtree.New(table)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded hierarchy table",
		"input", inputFile,
		"leaves", idx.LeafCount(),
		"height", idx.Height(),
	)
	return idx, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
