package tabular

import (
	"strings"
	"testing"

	"github.com/itsmostafa/treecut/internal/taxtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `OTU,Kingdom,Phylum,Genus,Abundance
OTU1,Bacteria,Firmicutes,Bacillus,12
OTU2,Bacteria,Firmicutes,Clostridium,3
OTU3,Bacteria,Bacteroidetes,Bacteroides,7
`

func TestRead(t *testing.T) {
	order := []string{"Kingdom", "Phylum", "Genus", "OTU"}

	t.Run("maps named columns in any header order", func(t *testing.T) {
		table, err := Read(strings.NewReader(sampleCSV), order, Options{})
		require.NoError(t, err)
		assert.Equal(t, 3, table.Height())
		assert.Equal(t, []string{"OTU1", "OTU2", "OTU3"}, table.LeafKeys())
	})

	t.Run("missing column fails", func(t *testing.T) {
		_, err := Read(strings.NewReader(sampleCSV), []string{"Kingdom", "Species", "OTU"}, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Species")
	})

	t.Run("custom delimiter", func(t *testing.T) {
		tsv := strings.ReplaceAll(sampleCSV, ",", "\t")
		table, err := Read(strings.NewReader(tsv), order, Options{Comma: '\t'})
		require.NoError(t, err)
		assert.Equal(t, 3, table.LeafCount())
	})

	t.Run("result splits like any other index", func(t *testing.T) {
		table, err := Read(strings.NewReader(sampleCSV), order, Options{})
		require.NoError(t, err)
		idx, err := taxtree.New(table)
		require.NoError(t, err)
		res, err := idx.SplitAt(2, taxtree.SplitOptions{})
		require.NoError(t, err)
		groups := res.List()
		assert.Equal(t, []int{1, 2}, groups["Firmicutes"])
		assert.Equal(t, []int{3}, groups["Bacteroidetes"])
	})
}

func TestReadFile(t *testing.T) {
	_, err := ReadFile("does-not-exist.csv", []string{"Phylum", "OTU"}, Options{})
	assert.Error(t, err)
}
