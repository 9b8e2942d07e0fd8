package taxtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHierarchyTable(t *testing.T) {
	order := []string{"Kingdom", "Phylum", "Genus", "OTU"}

	t.Run("valid table", func(t *testing.T) {
		table, err := NewHierarchyTable(order, [][]string{
			{"Bacteria", "Firmicutes", "Bacillus", "OTU1"},
			{"Bacteria", "Bacteroidetes", "Prevotella", "OTU2"},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, table.Height())
		assert.Equal(t, 2, table.LeafCount())
		assert.Equal(t, []string{"Kingdom", "Phylum", "Genus"}, table.Levels())
		assert.Equal(t, "OTU", table.LeafColumn())
	})

	t.Run("too few columns", func(t *testing.T) {
		_, err := NewHierarchyTable([]string{"OTU"}, nil)
		assert.Error(t, err)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := NewHierarchyTable(order, [][]string{
			{"Bacteria", "Firmicutes", "OTU1"},
		})
		assert.Error(t, err)
	})

	t.Run("missing values drop the row", func(t *testing.T) {
		table, err := NewHierarchyTable(order, [][]string{
			{"Bacteria", "Firmicutes", "Bacillus", "OTU1"},
			{"Bacteria", "NA", "Prevotella", "OTU2"},
			{"Bacteria", "Bacteroidetes", "", "OTU3"},
			{"Bacteria", "Bacteroidetes", "Bacteroides", "OTU4"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"OTU1", "OTU4"}, table.LeafKeys())
	})

	t.Run("duplicate leaf keeps first occurrence", func(t *testing.T) {
		table, err := NewHierarchyTable(order, [][]string{
			{"Bacteria", "Firmicutes", "Bacillus", "OTU1"},
			{"Bacteria", "Bacteroidetes", "Prevotella", "OTU1"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, table.LeafCount())
		assert.Equal(t, "Firmicutes", table.value(1, 2))
	})

	t.Run("empty after dropping", func(t *testing.T) {
		_, err := NewHierarchyTable(order, [][]string{
			{"Bacteria", "NA", "Bacillus", "OTU1"},
		})
		assert.ErrorIs(t, err, ErrEmptyHierarchy)
	})
}

func TestHierarchyTableIndex(t *testing.T) {
	order := []string{"Phylum", "OTU"}
	table, err := NewHierarchyTable(order, [][]string{
		{"Firmicutes", "a"},
		{"Firmicutes", "b"},
		{"Bacteroidetes", "c"},
	})
	require.NoError(t, err)

	// Indices are contiguous 1..N in row order.
	for i, key := range table.LeafKeys() {
		idx, ok := table.Index(key)
		require.True(t, ok)
		assert.Equal(t, i+1, idx)
	}
	_, ok := table.Index("missing")
	assert.False(t, ok)
}

func TestHierarchyTableSlice(t *testing.T) {
	order := []string{"Phylum", "OTU"}
	table, err := NewHierarchyTable(order, [][]string{
		{"Firmicutes", "a"},
		{"Firmicutes", "b"},
		{"Bacteroidetes", "c"},
		{"Bacteroidetes", "d"},
	})
	require.NoError(t, err)

	t.Run("renumbers from 1", func(t *testing.T) {
		sliced, err := table.Slice(2, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, sliced.LeafKeys())
		idx, ok := sliced.Index("b")
		require.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("bounds are clamped", func(t *testing.T) {
		sliced, err := table.Slice(0, 99)
		require.NoError(t, err)
		assert.Equal(t, 4, sliced.LeafCount())
	})

	t.Run("empty selection fails", func(t *testing.T) {
		_, err := table.Slice(3, 2)
		assert.ErrorIs(t, err, ErrEmptyHierarchy)
	})
}
