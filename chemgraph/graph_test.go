package chemgraph

import (
	"testing"

	chem "github.com/atomCAD/atomCAD-sub000"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborsAndFragments(t *testing.T) {
	//ethanol heavy atoms plus a lonely water oxygen, and one deleted bond
	bonds := []*chem.Bond{
		{At1: 1, At2: 0, Order: chem.Single},
		{At1: 1, At2: 2, Order: chem.Single},
		{At1: 2, At2: 3, Order: chem.Deleted},
	}
	g := New(4, bonds)
	require.Equal(t, 4, g.Len())
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, []int{1}, g.Neighbors(2))
	assert.Empty(t, g.Neighbors(3))
	assert.Equal(t, 2, g.Degree(1))
	assert.True(t, g.Bonded(0, 1))
	assert.True(t, g.Bonded(1, 0))
	assert.False(t, g.Bonded(2, 3), "deleted bonds are not edges")
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, g.Fragments())
}
