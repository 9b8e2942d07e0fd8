package taxtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTable(t *testing.T) {
	idx := testIndex(t)
	res, err := idx.SplitAt(2, SplitOptions{})
	require.NoError(t, err)

	rows := res.Table()
	require.Len(t, rows, 5)
	assert.Equal(t, GroupRow{
		Group:   "Firmicutes",
		NodeID:  res.Groups()[0].Node.ID,
		LeafKey: "OTU1",
		Index:   1,
	}, rows[0])

	// One row per (group, member); members ascend within a group.
	byGroup := make(map[string][]int)
	for _, row := range rows {
		byGroup[row.Group] = append(byGroup[row.Group], row.Index)
	}
	assert.Equal(t, res.List(), byGroup)
}

func TestSplitAggTable(t *testing.T) {
	idx := testIndex(t)
	res, err := idx.SplitAt(2, SplitOptions{})
	require.NoError(t, err)

	rows := res.AggTable()
	require.Len(t, rows, 2)
	assert.Equal(t, "Firmicutes", rows[0].Group)
	assert.Equal(t, "1,2,5", rows[0].Indices)
	assert.Equal(t, "OTU1,OTU2,OTU5", rows[0].LeafKeys)
	assert.Equal(t, "Bacteroidetes", rows[1].Group)
	assert.Equal(t, "3,4", rows[1].Indices)
	assert.Equal(t, "OTU3,OTU4", rows[1].LeafKeys)
}

func TestSplitToTreeIndex(t *testing.T) {
	idx := testIndex(t)

	t.Run("pure cut reduces to the level", func(t *testing.T) {
		res, err := idx.SplitAt(2, SplitOptions{})
		require.NoError(t, err)
		reduced, err := res.TreeIndex()
		require.NoError(t, err)

		assert.Equal(t, 2, reduced.Height())
		assert.Equal(t, []string{"Kingdom", "Phylum"}, reduced.Table().Levels())
		assert.Equal(t, "Group", reduced.Table().LeafColumn())
		assert.Equal(t, []string{"Firmicutes", "Bacteroidetes"}, reduced.Table().LeafKeys())
		// The reduced index derives its own catalog.
		assert.Len(t, reduced.NodesAt(1), 1)
		assert.Len(t, reduced.NodesAt(2), 2)
	})

	t.Run("aggregated ancestor pads missing levels with its label", func(t *testing.T) {
		firmicutes := nodeByLabel(t, idx, 2, "Firmicutes")
		res, err := idx.SplitAt(3, SplitOptions{
			Overrides: map[string]NodeState{firmicutes.ID: StateAggregated},
		})
		require.NoError(t, err)
		reduced, err := res.TreeIndex()
		require.NoError(t, err)

		assert.Equal(t, 3, reduced.Height())
		key, ok := reduced.Table().Index("Firmicutes")
		require.True(t, ok)
		assert.Equal(t, "Firmicutes", reduced.Table().value(key, 3))
	})

	t.Run("empty grouping cannot materialize", func(t *testing.T) {
		res, err := idx.SplitAt(2, SplitOptions{Start: 4, End: 2})
		require.NoError(t, err)
		_, err = res.TreeIndex()
		assert.ErrorIs(t, err, ErrEmptyHierarchy)
	})
}
