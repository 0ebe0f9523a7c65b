package top

import (
	"errors"
	"testing"

	chem "github.com/atomCAD/atomCAD-sub000"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//b is a bond given as {atom1, atom2, order}.
type b [3]int

func build(Te *testing.T, zs []int, bonds ...b) *Topology {
	Te.Helper()
	cb := make([]*chem.Bond, len(bonds))
	for i, v := range bonds {
		cb[i] = &chem.Bond{Index: i, At1: v[0], At2: v[1], Order: chem.BondOrder(v[2])}
	}
	T, err := FromStructure(zs, cb)
	require.NoError(Te, err)
	return T
}

type counts struct{ bonds, angles, torsions, inversions, pairs int }

func assertCounts(Te *testing.T, name string, T *Topology, want counts) {
	Te.Helper()
	nb, na, nt, ni, np := T.Counts()
	assert.Equal(Te, want, counts{nb, na, nt, ni, np}, name)
}

const (
	s = int(chem.Single)
	d = int(chem.Double)
	r = int(chem.Aromatic)
)

func TestSmallMolecules(Te *testing.T) {
	methane := build(Te, []int{6, 1, 1, 1, 1}, b{0, 1, s}, b{0, 2, s}, b{0, 3, s}, b{0, 4, s})
	assertCounts(Te, "methane", methane, counts{4, 6, 0, 0, 0})

	ethylene := build(Te, []int{6, 6, 1, 1, 1, 1}, b{0, 1, d}, b{0, 2, s}, b{0, 3, s}, b{1, 4, s}, b{1, 5, s})
	assertCounts(Te, "ethylene", ethylene, counts{5, 6, 4, 6, 4})

	ethane := build(Te, []int{6, 6, 1, 1, 1, 1, 1, 1}, b{0, 1, s}, b{0, 2, s}, b{0, 3, s}, b{0, 4, s}, b{1, 5, s}, b{1, 6, s}, b{1, 7, s})
	assertCounts(Te, "ethane", ethane, counts{7, 12, 9, 0, 9})

	water := build(Te, []int{8, 1, 1}, b{0, 1, s}, b{0, 2, s})
	assertCounts(Te, "water", water, counts{2, 1, 0, 0, 0})

	ammonia := build(Te, []int{7, 1, 1, 1}, b{0, 1, s}, b{0, 2, s}, b{0, 3, s})
	assertCounts(Te, "ammonia (sp3 N has no inversions)", ammonia, counts{3, 3, 0, 0, 0})
}

func TestBenzene(Te *testing.T) {
	zs := []int{6, 6, 6, 6, 6, 6, 1, 1, 1, 1, 1, 1}
	bonds := []b{}
	for i := 0; i < 6; i++ {
		bonds = append(bonds, b{i, (i + 1) % 6, r}, b{i, i + 6, s})
	}
	T := build(Te, zs, bonds...)
	assertCounts(Te, "benzene", T, counts{12, 18, 24, 18, 36})

	heavy := build(Te, zs[:6], b{0, 1, r}, b{1, 2, r}, b{2, 3, r}, b{3, 4, r}, b{4, 5, r}, b{5, 0, r})
	_, _, nt, ni, _ := heavy.Counts()
	assert.Equal(Te, 6, nt)
	assert.Equal(Te, 0, ni, "ring carbons with two bonds are not inversion centers")
}

func TestRings(Te *testing.T) {
	ring := func(n int) *Topology {
		zs := make([]int, n)
		bonds := make([]b, n)
		for i := 0; i < n; i++ {
			zs[i] = 6
			bonds[i] = b{i, (i + 1) % n, s}
		}
		return build(Te, zs, bonds...)
	}
	for n, torsions := range map[int]int{3: 0, 4: 4, 5: 5, 6: 6} {
		T := ring(n)
		nb, na, nt, _, _ := T.Counts()
		assert.Equal(Te, n, nb, "%d-ring bonds", n)
		assert.Equal(Te, n, na, "%d-ring angles", n)
		assert.Equal(Te, torsions, nt, "%d-ring torsions", n)
	}
}

func TestChains(Te *testing.T) {
	ccoc := build(Te, []int{6, 6, 8, 6}, b{0, 1, s}, b{1, 2, s}, b{2, 3, s})
	assertCounts(Te, "CCOC", ccoc, counts{3, 2, 1, 0, 1})
	assert.Equal(Te, Torsion{0, 1, 2, 3}, ccoc.Torsions[0])
	assert.Equal(Te, []Pair{{0, 3}}, ccoc.Pairs)

	branched := build(Te, []int{6, 6, 8, 6}, b{0, 1, s}, b{1, 2, s}, b{1, 3, s})
	assertCounts(Te, "CC(O)C", branched, counts{3, 3, 0, 0, 0})

	single := build(Te, []int{6})
	assertCounts(Te, "single atom", single, counts{0, 0, 0, 0, 0})
	empty := build(Te, nil)
	assertCounts(Te, "empty", empty, counts{0, 0, 0, 0, 0})
	two := build(Te, []int{6, 1}, b{0, 1, s})
	assertCounts(Te, "two atoms", two, counts{1, 0, 0, 0, 0})
}

func TestInversionCenters(Te *testing.T) {
	//N=C(H)H with N also bonded to 2 hydrogens
	sp2N := build(Te, []int{7, 6, 1, 1, 1, 1}, b{0, 1, d}, b{0, 2, s}, b{0, 3, s}, b{1, 4, s}, b{1, 5, s})
	centers := map[int]int{}
	for _, inv := range sp2N.Inversions {
		centers[inv.J]++
	}
	assert.Equal(Te, map[int]int{0: 3, 1: 3}, centers)

	aromaticC := build(Te, []int{6, 6, 6, 1}, b{0, 1, r}, b{0, 2, r}, b{0, 3, s})
	_, _, _, ni, _ := aromaticC.Counts()
	assert.Equal(Te, 3, ni)

	phosphine := build(Te, []int{15, 1, 1, 1}, b{0, 1, s}, b{0, 2, s}, b{0, 3, s})
	_, _, _, ni, _ = phosphine.Counts()
	assert.Equal(Te, 3, ni, "P with 3 bonds")

	phosphonium := build(Te, []int{15, 1, 1, 1, 1}, b{0, 1, s}, b{0, 2, s}, b{0, 3, s}, b{0, 4, s})
	_, _, _, ni, _ = phosphonium.Counts()
	assert.Equal(Te, 0, ni, "P with 4 bonds")
}

func TestInversionPermutations(Te *testing.T) {
	T := build(Te, []int{6, 8, 1, 1}, b{0, 1, d}, b{0, 2, s}, b{0, 3, s})
	require.Len(Te, T.Inversions, 3)
	out := map[int]int{}
	for _, inv := range T.Inversions {
		assert.Equal(Te, 0, inv.J)
		out[inv.L]++
		assert.ElementsMatch(Te, []int{1, 2, 3}, []int{inv.I, inv.K, inv.L})
	}
	assert.Equal(Te, map[int]int{1: 1, 2: 1, 3: 1}, out)
}

func TestIndexesAndOrders(Te *testing.T) {
	T := build(Te, []int{6, 6, 8, 1}, b{0, 1, d}, b{1, 2, s}, b{2, 3, s}, b{0, 3, int(chem.Deleted)})
	require.Len(Te, T.Bonds, 3, "deleted bonds are skipped")
	assert.Equal(Te, chem.Double, T.BondOrder(1, 0))
	assert.Equal(Te, chem.Single, T.BondOrder(1, 2))
	assert.Equal(Te, chem.Deleted, T.BondOrder(0, 3))
	n := T.Len()
	for _, a := range T.Angles {
		assert.True(Te, a.I < n && a.J < n && a.K < n)
		assert.NotEqual(Te, a.I, a.K)
	}
	for _, t := range T.Torsions {
		assert.True(Te, t.I < n && t.J < n && t.K < n && t.L < n)
		assert.NotEqual(Te, t.I, t.L)
	}
	for _, p := range T.Pairs {
		assert.Less(Te, p.I, p.J)
		assert.False(Te, T.Excluded(p.I, p.J))
	}
	assert.True(Te, T.Excluded(0, 2), "1-3 pair")
	assert.True(Te, T.Excluded(1, 0), "1-2 pair")
	assert.False(Te, T.Excluded(0, 3), "1-4 pair")
}

func TestInvalidBonds(Te *testing.T) {
	_, err := FromStructure([]int{6, 6}, []*chem.Bond{{At1: 0, At2: 2, Order: chem.Single}})
	assert.True(Te, errors.Is(err, chem.ErrInvalidMolecule))
	_, err = FromStructure([]int{6, 6}, []*chem.Bond{{At1: 0, At2: 1, Order: chem.Single}, {At1: 1, At2: 0, Order: chem.Double}})
	assert.True(Te, errors.Is(err, chem.ErrInvalidMolecule))
	_, err = FromStructure([]int{6}, []*chem.Bond{{At1: 0, At2: 0, Order: chem.Single}})
	assert.True(Te, errors.Is(err, chem.ErrInvalidMolecule))
}
