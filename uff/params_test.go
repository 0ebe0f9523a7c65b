/*
 * params_test.go, part of gochem.
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func param(Te *testing.T, label string) *Params {
	p, ok := Lookup(label)
	require.True(Te, ok, "no parameters for %s", label)
	return p
}

func TestLookup(Te *testing.T) {
	c3 := param(Te, "C_3")
	assert.Equal(Te, "C_3", c3.Label)
	assert.InDelta(Te, 0.757, c3.R1, 1e-10)
	assert.InDelta(Te, 109.47, c3.Theta0, 1e-10)
	assert.InDelta(Te, 3.851, c3.X1, 1e-10)
	assert.InDelta(Te, 0.105, c3.D1, 1e-10)
	assert.InDelta(Te, 2.119, c3.V1, 1e-10)
	_, ok := Lookup("C_4")
	assert.False(Te, ok)
	_, ok = Lookup("")
	assert.False(Te, ok)
	labels := Labels()
	assert.Len(Te, labels, len(paramTable))
	seen := make(map[string]bool)
	for _, l := range labels {
		assert.False(Te, seen[l], "label %s repeated", l)
		seen[l] = true
	}
}

func TestBondParameters(Te *testing.T) {
	c3 := param(Te, "C_3")
	r0 := RestLength(1, c3, c3)
	assert.InDelta(Te, 1.514, r0, 1e-3)
	assert.InDelta(Te, 699.5918, BondForceConstant(r0, c3, c3), 0.1)
	cr, nr := param(Te, "C_R"), param(Te, "N_R")
	assert.InDelta(Te, 1.357, RestLength(AmideBondOrder, cr, nr), 1e-3)
	assert.InDelta(Te, 1.450, RestLength(1, nr, c3), 1e-3)
	//higher orders are shorter
	c2 := param(Te, "C_2")
	assert.Less(Te, RestLength(2, c2, c2), RestLength(1, c2, c2))
}

func TestAngleForceConstant(Te *testing.T) {
	cr, nr, c3 := param(Te, "C_R"), param(Te, "N_R"), param(Te, "C_3")
	k := AngleForceConstant(nr.Theta0*chem.Deg2Rad, AmideBondOrder, 1, cr, nr, c3, nil)
	assert.InDelta(Te, 211.0, k, 0.1)
	k = AngleForceConstant(c3.Theta0*chem.Deg2Rad, 1, 1, c3, c3, c3, RestLength)
	assert.Greater(Te, k, 50.0)
	assert.Less(Te, k, 500.0)
}

func TestVdwParameters(Te *testing.T) {
	c3, h := param(Te, "C_3"), param(Te, "H_")
	assert.InDelta(Te, c3.X1, VdwDistance(c3, c3), 1e-12)
	assert.InDelta(Te, math.Sqrt(c3.X1*h.X1), VdwDistance(c3, h), 1e-12)
	assert.InDelta(Te, math.Sqrt(c3.D1*h.D1), VdwWellDepth(h, c3), 1e-12)
}

func TestTorsionParameters(Te *testing.T) {
	c3, c2, o3, s3 := param(Te, "C_3"), param(Te, "C_2"), param(Te, "O_3"), param(Te, "S_3+2")
	cases := []struct {
		name    string
		bo      float64
		z2, z3  int
		h2, h3  int
		p2, p3  *Params
		endSP2  bool
		v       float64
		n       int
		cosTerm float64
	}{
		{"sp3-sp3", 1, 6, 6, 3, 3, c3, c3, false, 2.119, 3, -1},
		{"O-O", 1, 8, 8, 3, 3, o3, o3, false, 2, 2, -1},
		{"S-S", 1, 16, 16, 3, 3, s3, s3, false, 6.8, 2, -1},
		{"O-S", 1, 8, 16, 3, 3, o3, s3, false, math.Sqrt(2 * 6.8), 2, -1},
		{"O-O double", 2, 8, 8, 3, 3, o3, o3, false, math.Sqrt(o3.V1 * o3.V1), 3, -1},
		{"sp2-sp2 single", 1, 6, 6, 2, 2, c2, c2, false, 10, 2, 1},
		{"sp2-sp2 double", 2, 6, 6, 2, 2, c2, c2, false, 5 * c2.U1 * (1 + 4.18*math.Log(2)), 2, 1},
		{"sp2-sp3", 1, 6, 6, 2, 3, c2, c3, false, 1, 6, 1},
		{"sp2-sp3 end sp2", 1, 6, 6, 2, 3, c2, c3, true, 2, 3, -1},
		{"O sp3-C sp2", 1, 8, 6, 3, 2, o3, c2, false, 5 * math.Sqrt(o3.U1*c2.U1), 2, -1},
	}
	for _, c := range cases {
		v, n, cosTerm := torsionParams(c.bo, c.z2, c.z3, c.h2, c.h3, c.p2, c.p3, c.endSP2)
		assert.InDelta(Te, c.v, v, 1e-4, c.name)
		assert.Equal(Te, c.n, n, c.name)
		assert.InDelta(Te, c.cosTerm, cosTerm, 1e-10, c.name)
	}
}

func TestInversionParameters(Te *testing.T) {
	for _, z := range []int{6, 7, 8} {
		k, c0, c1, c2 := inversionParams(z, false)
		assert.InDelta(Te, 2.0, k, 1e-10)
		assert.Equal(Te, []float64{1, -1, 0}, []float64{c0, c1, c2})
	}
	k, _, _, _ := inversionParams(6, true)
	assert.InDelta(Te, 50.0/3, k, 1e-10)
	k, c0, c1, c2 := inversionParams(83, false)
	assert.InDelta(Te, 1.0, c0, 1e-10)
	assert.InDelta(Te, 0.0, c1, 1e-10)
	assert.InDelta(Te, 1.0, c2, 1e-10)
	assert.InDelta(Te, 22.0/2/3, k, 1e-10)
	w0 := 84.4339 * chem.Deg2Rad
	k, c0, c1, c2 = inversionParams(15, false)
	assert.InDelta(Te, -4*math.Cos(w0), c1, 1e-8)
	assert.InDelta(Te, 22/(c0+c1+c2)/3, k, 1e-8)
	//the energy of a group 15 center has its minimum at w0.
	p := InversionParams{ForceConstant: k, C0: c0, C1: c1, C2: c2}
	e, de := p.inversionTerms(math.Sin(w0))
	assert.InDelta(Te, 0.0, e, 1e-8)
	assert.InDelta(Te, 0.0, de, 1e-8)
}
