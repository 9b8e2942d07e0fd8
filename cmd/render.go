package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/itsmostafa/treecut/internal/taxtree"
)

var (
	// titleStyle for bold green headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("35"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// labelStyle for group and node labels
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	// idStyle for node ids
	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("35")).
			Padding(0, 1)
)

// renderSummary renders the tree shape report in a box.
func renderSummary(w io.Writer, s taxtree.Summary) {
	var lines []string
	lines = append(lines, fmt.Sprintf("%s %s", dimStyle.Render("Levels:"), titleStyle.Render(strings.Join(s.Levels, " > "))))
	lines = append(lines, fmt.Sprintf("%s %s", dimStyle.Render("Leaf column:"), s.LeafColumn))
	lines = append(lines, fmt.Sprintf("%s %d", dimStyle.Render("Height:"), s.Height))
	lines = append(lines, fmt.Sprintf("%s %d", dimStyle.Render("Leaves:"), s.LeafCount))
	for i, n := range s.NodesPerLevel {
		lines = append(lines, fmt.Sprintf("%s %d", dimStyle.Render(fmt.Sprintf("Nodes at %s:", s.Levels[i])), n))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// renderNodes renders a node listing, one line per node.
func renderNodes(w io.Writer, nodes []taxtree.Node) {
	for _, n := range nodes {
		fmt.Fprintf(w, "%s %s %s\n",
			idStyle.Render(n.ID),
			dimStyle.Render(fmt.Sprintf("L%d", n.Level)),
			labelStyle.Render(n.Label),
		)
	}
}

// renderGroups renders split groups with their member indices.
func renderGroups(w io.Writer, res *taxtree.SplitResult) {
	for _, g := range res.Groups() {
		idxs := make([]string, len(g.Indices))
		for i, idx := range g.Indices {
			idxs[i] = fmt.Sprintf("%d", idx)
		}
		fmt.Fprintf(w, "%s %s %s\n",
			labelStyle.Render(g.Label),
			dimStyle.Render(fmt.Sprintf("(%d leaves)", len(g.Indices))),
			strings.Join(idxs, " "),
		)
	}
}
