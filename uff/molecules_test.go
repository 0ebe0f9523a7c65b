/*
 * molecules_test.go, part of gochem.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package uff

import (
	"math"
	"testing"

	chem "github.com/atomCAD/atomCAD-sub000"
	"github.com/atomCAD/atomCAD-sub000/top"
	"github.com/stretchr/testify/require"
)

//bnd is a bond given as {atom1, atom2, order}.
type bnd [3]int

const (
	sgl = int(chem.Single)
	dbl = int(chem.Double)
	aro = int(chem.Aromatic)
)

//testMolecule is a small structure with its geometry.
type testMolecule struct {
	name  string
	zs    []int
	pos   []float64
	bonds []bnd
}

func (m testMolecule) topology(Te *testing.T) *top.Topology {
	Te.Helper()
	cb := make([]*chem.Bond, len(m.bonds))
	for i, v := range m.bonds {
		cb[i] = &chem.Bond{Index: i, At1: v[0], At2: v[1], Order: chem.BondOrder(v[2])}
	}
	T, err := top.FromStructure(m.zs, cb)
	require.NoError(Te, err, m.name)
	return T
}

func (m testMolecule) forceField(Te *testing.T, opts *Options) *ForceField {
	Te.Helper()
	F, err := New(m.topology(Te), opts)
	require.NoError(Te, err, m.name)
	return F
}

func benzene() testMolecule {
	m := testMolecule{name: "benzene"}
	for i := 0; i < 6; i++ {
		m.zs = append(m.zs, 6)
	}
	for i := 0; i < 6; i++ {
		m.zs = append(m.zs, 1)
	}
	for _, r := range []float64{1.39, 2.47} {
		for i := 0; i < 6; i++ {
			a := float64(i) * math.Pi / 3
			m.pos = append(m.pos, r*math.Cos(a), r*math.Sin(a), 0)
		}
	}
	for i := 0; i < 6; i++ {
		m.bonds = append(m.bonds, bnd{i, (i + 1) % 6, aro}, bnd{i, i + 6, sgl})
	}
	return m
}

//butane is a chain of 4 carbons with no hydrogens and the given C-C-C-C dihedral.
func butane(phi float64) testMolecule {
	return testMolecule{
		name: "butane",
		zs:   []int{6, 6, 6, 6},
		pos: []float64{
			-0.5, 1.46, 0,
			0, 0, 0,
			1.54, 0, 0,
			2.04, 1.46 * math.Cos(phi), 1.46 * math.Sin(phi),
		},
		bonds: []bnd{{0, 1, sgl}, {1, 2, sgl}, {2, 3, sgl}},
	}
}

func testMolecules() []testMolecule {
	return []testMolecule{
		{
			name: "methane",
			zs:   []int{6, 1, 1, 1, 1},
			pos: []float64{
				0, 0, 0,
				0.629, 0.629, 0.629,
				-0.629, -0.629, 0.629,
				-0.629, 0.629, -0.629,
				0.629, -0.629, -0.629,
			},
			bonds: []bnd{{0, 1, sgl}, {0, 2, sgl}, {0, 3, sgl}, {0, 4, sgl}},
		},
		{
			name: "ethane",
			zs:   []int{6, 6, 1, 1, 1, 1, 1, 1},
			pos: []float64{
				0, 0, 0.765,
				0, 0, -0.765,
				1.02, 0, 1.16,
				-0.51, 0.883, 1.16,
				-0.51, -0.883, 1.16,
				-1.02, 0, -1.16,
				0.51, -0.883, -1.16,
				0.51, 0.883, -1.16,
			},
			bonds: []bnd{{0, 1, sgl}, {0, 2, sgl}, {0, 3, sgl}, {0, 4, sgl}, {1, 5, sgl}, {1, 6, sgl}, {1, 7, sgl}},
		},
		{
			name: "ethylene",
			zs:   []int{6, 6, 1, 1, 1, 1},
			pos: []float64{
				0, 0, 0.667,
				0, 0, -0.667,
				0, 0.923, 1.238,
				0, -0.923, 1.238,
				0, 0.923, -1.238,
				0, -0.923, -1.238,
			},
			bonds: []bnd{{0, 1, dbl}, {0, 2, sgl}, {0, 3, sgl}, {1, 4, sgl}, {1, 5, sgl}},
		},
		{
			name:  "water",
			zs:    []int{8, 1, 1},
			pos:   []float64{0, 0, 0, 0.757, 0.586, 0, -0.757, 0.586, 0},
			bonds: []bnd{{0, 1, sgl}, {0, 2, sgl}},
		},
		{
			name: "ammonia",
			zs:   []int{7, 1, 1, 1},
			pos: []float64{
				0, 0, 0.1,
				0.94, 0, -0.27,
				-0.47, 0.814, -0.27,
				-0.47, -0.814, -0.27,
			},
			bonds: []bnd{{0, 1, sgl}, {0, 2, sgl}, {0, 3, sgl}},
		},
		{
			name: "formamide",
			zs:   []int{6, 8, 7, 1, 1, 1},
			pos: []float64{
				0, 0, 0,
				1.21, 0, 0,
				-0.68, 1.17, 0,
				-0.55, -0.95, 0,
				-1.69, 1.17, 0,
				-0.18, 2.04, 0,
			},
			bonds: []bnd{{0, 1, dbl}, {0, 2, sgl}, {0, 3, sgl}, {2, 4, sgl}, {2, 5, sgl}},
		},
		{
			name: "methanethiol",
			zs:   []int{6, 16, 1, 1, 1, 1},
			pos: []float64{
				0, 0, 0,
				1.82, 0, 0,
				2.15, 1.3, 0,
				-0.36, 1.03, 0,
				-0.36, -0.51, 0.89,
				-0.36, -0.51, -0.89,
			},
			bonds: []bnd{{0, 1, sgl}, {1, 2, sgl}, {0, 3, sgl}, {0, 4, sgl}, {0, 5, sgl}},
		},
		{
			name: "phosphine",
			zs:   []int{15, 1, 1, 1},
			pos: []float64{
				0, 0, 0.2,
				1.42, 0, -0.3,
				-0.71, 1.23, -0.3,
				-0.71, -1.23, -0.3,
			},
			bonds: []bnd{{0, 1, sgl}, {0, 2, sgl}, {0, 3, sgl}},
		},
		butane(65 * chem.Deg2Rad),
		benzene(),
	}
}
