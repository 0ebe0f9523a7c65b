/*
 * terms_test.go, part of gochem.
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
	"math/rand"
	"testing"

	chem "github.com/atomCAD/atomCAD-sub000"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

//A term with its energy-only and energy+gradient functions.
type term struct {
	name   string
	energy func(pos []float64) float64
	eg     func(pos, grad []float64) float64
	base   []float64 //a reasonable geometry, perturbed to get the test geometries
}

const (
	fdStep   = 1e-5
	fdRelTol = 0.01
	fdAbsTol = 1e-5
)

//numericalGradient returns the central-difference gradient of energy at pos.
func numericalGradient(energy func([]float64) float64, pos []float64) []float64 {
	grad := make([]float64, len(pos))
	p := append([]float64(nil), pos...)
	for i := range p {
		orig := p[i]
		p[i] = orig + fdStep
		ep := energy(p)
		p[i] = orig - fdStep
		em := energy(p)
		p[i] = orig
		grad[i] = (ep - em) / (2 * fdStep)
	}
	return grad
}

//compareGradients fails the test if the analytical and numerical gradients differ
//by more than 1% in any component that is not close to zero in both.
func compareGradients(Te *testing.T, name string, analytical, numerical []float64) {
	Te.Helper()
	require.Equal(Te, len(numerical), len(analytical))
	for i, a := range analytical {
		n := numerical[i]
		diff := math.Abs(a - n)
		if math.Abs(a) < fdAbsTol && math.Abs(n) < fdAbsTol {
			assert.Less(Te, diff, fdAbsTol, "%s: component %d analytical %g numerical %g", name, i, a, n)
			continue
		}
		rel := diff / math.Max(math.Abs(a), math.Abs(n))
		assert.Less(Te, rel, fdRelTol, "%s: component %d analytical %g numerical %g", name, i, a, n)
	}
}

//perturbed returns n copies of base with each coordinate moved by up to amp, with a fixed seed.
func perturbed(base []float64, n int, amp float64, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	ret := make([][]float64, n)
	for k := range ret {
		p := append([]float64(nil), base...)
		for i := range p {
			p[i] += amp * (2*r.Float64() - 1)
		}
		ret[k] = p
	}
	return ret
}

func testTerms(Te *testing.T) []term {
	c3, c2, cr, nr := param(Te, "C_3"), param(Te, "C_2"), param(Te, "C_R"), param(Te, "N_R")
	h, o3, o2 := param(Te, "H_"), param(Te, "O_3"), param(Te, "O_2")
	r0 := RestLength(1, c3, c3)
	th0 := c3.Theta0 * chem.Deg2Rad
	ka := AngleForceConstant(th0, 1, 1, c3, c3, c3, nil)
	bent := []float64{1.5, 0, 0, 0, 0, 0, 0.1, 1.5, 0}
	straight := []float64{1.3, 0.1, 0, 0, 0, 0, -1.3, 0.1, 0}
	chain := []float64{0, 1.2, 0.1, 0, 0, 0, 1.5, 0, 0, 1.6, 0.7, 1.1}
	trigonal := []float64{1, 0, 0, 0, 0, 0, -0.5, 0.866, 0, -0.5, -0.866, 0.3}
	var terms []term
	addBond := func(name string, p BondParams) {
		terms = append(terms, term{name,
			func(pos []float64) float64 { return BondEnergy(&p, pos) },
			func(pos, grad []float64) float64 { return BondEnergyGradient(&p, pos, grad) },
			[]float64{0, 0, 0, r0 + 0.2, 0.1, -0.1}})
	}
	addAngle := func(name string, p *AngleParams, base []float64) {
		terms = append(terms, term{name,
			func(pos []float64) float64 { return AngleEnergy(p, pos) },
			func(pos, grad []float64) float64 { return AngleEnergyGradient(p, pos, grad) },
			base})
	}
	addTorsion := func(name string, p TorsionParams) {
		terms = append(terms, term{name,
			func(pos []float64) float64 { return TorsionEnergy(&p, pos) },
			func(pos, grad []float64) float64 { return TorsionEnergyGradient(&p, pos, grad) },
			chain})
	}
	addInversion := func(name string, p InversionParams) {
		terms = append(terms, term{name,
			func(pos []float64) float64 { return InversionEnergy(&p, pos) },
			func(pos, grad []float64) float64 { return InversionEnergyGradient(&p, pos, grad) },
			trigonal})
	}
	addBond("bond C_3-C_3", BondParams{I: 0, J: 1, RestLength: r0, ForceConstant: BondForceConstant(r0, c3, c3)})
	rh := RestLength(1, c3, h)
	addBond("bond C_3-H_", BondParams{I: 1, J: 0, RestLength: rh, ForceConstant: BondForceConstant(rh, c3, h)})
	addAngle("angle general", NewAngleParams(0, 1, 2, th0, ka, General), bent)
	addAngle("angle general 90", NewAngleParams(0, 1, 2, math.Pi/2, ka, General), bent)
	addAngle("angle amide", NewAngleParams(0, 1, 2, nr.Theta0*chem.Deg2Rad,
		AngleForceConstant(nr.Theta0*chem.Deg2Rad, AmideBondOrder, 1, cr, nr, c3, nil), General), []float64{0.8, 0.5, 0.1, -0.1, 0, 0, 0.3, -1.2, 0.2})
	addAngle("angle linear", NewAngleParams(0, 1, 2, math.Pi, ka, Linear), straight)
	addAngle("angle bent", NewAngleParams(0, 1, 2, math.Pi, ka, Bent), straight)
	addAngle("angle trigonal", NewAngleParams(0, 1, 2, 2*math.Pi/3, ka, Trigonal), []float64{1.3, 0.1, 0, 0, 0, 0, -0.3, -1.3, 0})
	addAngle("angle square", NewAngleParams(0, 1, 2, math.Pi/2, ka, SquarePlanar), []float64{1.3, 0.1, 0, 0, 0, 0, -0.3, -1.3, 0})
	addAngle("angle small", NewAngleParams(0, 1, 2, th0, ka, General), []float64{1.5, 0, 0, 0, 0, 0, 1.3, 0.5, 0})
	for _, c := range []struct {
		name   string
		bo     float64
		z2, z3 int
		h2, h3 int
		p2, p3 *Params
		endSP2 bool
	}{
		{"torsion sp3-sp3", 1, 6, 6, 3, 3, c3, c3, false},
		{"torsion sp2-sp2", 2, 6, 6, 2, 2, c2, c2, false},
		{"torsion sp2-sp3", 1, 6, 6, 2, 3, c2, c3, false},
		{"torsion sp2-sp3 end sp2", 1, 6, 6, 2, 3, c2, c3, true},
		{"torsion O-O", 1, 8, 8, 3, 3, o3, o3, false},
		{"torsion O sp3-C sp2", 1, 8, 6, 3, 2, o3, c2, false},
	} {
		v, n, cosTerm := torsionParams(c.bo, c.z2, c.z3, c.h2, c.h3, c.p2, c.p3, c.endSP2)
		addTorsion(c.name, TorsionParams{I: 0, J: 1, K: 2, L: 3, V: v, N: n, CosTerm: cosTerm})
	}
	for _, c := range []struct {
		name string
		z    int
		o    bool
	}{{"inversion C", 6, false}, {"inversion C=O", 6, true}, {"inversion N", 7, false}, {"inversion P", 15, false}, {"inversion Bi", 83, false}} {
		k, c0, c1, c2 := inversionParams(c.z, c.o)
		addInversion(c.name, InversionParams{I: 0, J: 1, K: 2, L: 3, ForceConstant: k, C0: c0, C1: c1, C2: c2})
	}
	vp := VdwParams{I: 0, J: 1, Distance: VdwDistance(c3, o2), Depth: VdwWellDepth(c3, o2)}
	terms = append(terms, term{"vdw C_3-O_2",
		func(pos []float64) float64 { return VdwEnergy(&vp, pos) },
		func(pos, grad []float64) float64 { return VdwEnergyGradient(&vp, pos, grad) },
		[]float64{0, 0, 0, 3.2, 0.5, -0.4}})
	return terms
}

func TestGradientsMatchFiniteDifferences(Te *testing.T) {
	for ti, t := range testTerms(Te) {
		geoms := perturbed(t.base, 12, 0.15, int64(ti+1))
		for gi, pos := range geoms {
			grad := make([]float64, len(pos))
			e := t.eg(pos, grad)
			assert.InDelta(Te, t.energy(pos), e, 1e-10, "%s geometry %d: energy with and without gradient", t.name, gi)
			compareGradients(Te, t.name, grad, numericalGradient(t.energy, pos))
		}
	}
}

//The gradient of any single interaction adds up to zero, and so does its torque.
func TestForceBalance(Te *testing.T) {
	for ti, t := range testTerms(Te) {
		for _, pos := range perturbed(t.base, 5, 0.2, int64(100+ti)) {
			grad := make([]float64, len(pos))
			t.eg(pos, grad)
			var f, torque r3.Vec
			for i := 0; i < len(pos)/3; i++ {
				g := position(grad, i)
				f = r3.Add(f, g)
				torque = r3.Add(torque, r3.Cross(position(pos, i), g))
			}
			assert.InDelta(Te, 0, r3.Norm(f), 1e-8, t.name)
			assert.InDelta(Te, 0, r3.Norm(torque), 1e-7, t.name)
		}
	}
}

//Gradients are accumulated, never overwritten.
func TestGradientAccumulation(Te *testing.T) {
	for _, t := range testTerms(Te) {
		g1 := make([]float64, len(t.base))
		t.eg(t.base, g1)
		g2 := append([]float64(nil), g1...)
		t.eg(t.base, g2)
		for i := range g1 {
			assert.InDelta(Te, 2*g1[i], g2[i], 1e-10, t.name)
		}
	}
}

//Two atoms at exactly the combined vdW distance have energy -D.
func TestVdwAtMinimum(Te *testing.T) {
	for _, pair := range [][2]string{{"C_3", "C_3"}, {"C_3", "H_"}, {"O_2", "N_R"}, {"Ar4+4", "Ar4+4"}} {
		pi, pj := param(Te, pair[0]), param(Te, pair[1])
		p := VdwParams{I: 0, J: 1, Distance: VdwDistance(pi, pj), Depth: VdwWellDepth(pi, pj)}
		pos := []float64{0, 0, 0, p.Distance, 0, 0}
		grad := make([]float64, 6)
		assert.InDelta(Te, -p.Depth, VdwEnergyGradient(&p, pos, grad), 1e-9)
		assert.InDelta(Te, 0, grad[0], 1e-9)
		//same, along a diagonal.
		u := r3.Unit(r3.Vec{X: 1, Y: -2, Z: 0.5})
		d := r3.Scale(p.Distance, u)
		pos = []float64{1, 1, 1, 1 + d.X, 1 + d.Y, 1 + d.Z}
		assert.InDelta(Te, -p.Depth, VdwEnergy(&p, pos), 1e-9)
	}
}

//torsionChain places 4 atoms with the dihedral phi (radians).
func torsionChain(phi float64) []float64 {
	return []float64{0, 1, 0, 0, 0, 0, 1, 0, 0, 1, math.Cos(phi), math.Sin(phi)}
}

func TestTorsionBarrier(Te *testing.T) {
	c3, c2 := param(Te, "C_3"), param(Te, "C_2")
	v, n, cosTerm := torsionParams(1, 6, 6, 3, 3, c3, c3, false)
	p := TorsionParams{I: 0, J: 1, K: 2, L: 3, V: v, N: n, CosTerm: cosTerm}
	eclipsed := TorsionEnergy(&p, torsionChain(0))
	staggered := TorsionEnergy(&p, torsionChain(math.Pi/3))
	assert.InDelta(Te, 0, staggered, 1e-9)
	assert.InDelta(Te, v, eclipsed-staggered, 1e-9)
	assert.InDelta(Te, 0, TorsionEnergy(&p, torsionChain(math.Pi)), 1e-9)
	//sp2-sp2 double bonds are planar: minima at 0 and 180.
	v, n, cosTerm = torsionParams(2, 6, 6, 2, 2, c2, c2, false)
	p = TorsionParams{I: 0, J: 1, K: 2, L: 3, V: v, N: n, CosTerm: cosTerm}
	assert.InDelta(Te, 0, TorsionEnergy(&p, torsionChain(0)), 1e-9)
	assert.InDelta(Te, 0, TorsionEnergy(&p, torsionChain(math.Pi)), 1e-9)
	assert.InDelta(Te, v, TorsionEnergy(&p, torsionChain(math.Pi/2)), 1e-9)
}

func TestAngleMinima(Te *testing.T) {
	c3 := param(Te, "C_3")
	r0 := RestLength(1, c3, c3)
	for _, c := range []struct {
		theta0 float64
		order  int
	}{{c3.Theta0 * chem.Deg2Rad, General}, {math.Pi, Linear}, {math.Pi, Bent}, {2 * math.Pi / 3, Trigonal}, {math.Pi / 2, SquarePlanar}} {
		ka := AngleForceConstant(c.theta0, 1, 1, c3, c3, c3, nil)
		p := NewAngleParams(0, 1, 2, c.theta0, ka, c.order)
		pos := []float64{r0, 0, 0, 0, 0, 0, r0 * math.Cos(c.theta0), r0 * math.Sin(c.theta0), 0}
		assert.InDelta(Te, 0, AngleEnergy(p, pos), 1e-6, "order %d", c.order)
		//displaced by 10 degrees
		t := c.theta0 - 10*chem.Deg2Rad
		pos = []float64{r0, 0, 0, 0, 0, 0, r0 * math.Cos(t), r0 * math.Sin(t), 0}
		assert.Greater(Te, AngleEnergy(p, pos), 0.0, "order %d", c.order)
	}
	//the Fourier expansion can't describe a natural angle of 180 degrees.
	p := NewAngleParams(0, 1, 2, math.Pi, 100, General)
	assert.Equal(Te, Linear, p.Order)
}

//The near-zero angle penalty grows as the angle closes, and vanishes above 30 degrees.
func TestAnglePenalty(Te *testing.T) {
	p := &AngleParams{ForceConstant: 0, Order: General}
	e40, _ := p.angleTerms(math.Cos(40 * chem.Deg2Rad))
	e20, _ := p.angleTerms(math.Cos(20 * chem.Deg2Rad))
	e5, _ := p.angleTerms(math.Cos(5 * chem.Deg2Rad))
	assert.Equal(Te, 0.0, e40)
	assert.Greater(Te, e20, 0.0)
	assert.Greater(Te, e5, e20)
	e0, de0 := p.angleTerms(1)
	assert.False(Te, math.IsNaN(e0) || math.IsInf(e0, 0))
	assert.False(Te, math.IsNaN(de0))
}

func TestInversionPlanar(Te *testing.T) {
	k, c0, c1, c2 := inversionParams(6, false)
	p := InversionParams{I: 0, J: 1, K: 2, L: 3, ForceConstant: k, C0: c0, C1: c1, C2: c2}
	planar := []float64{1, 0, 0, 0, 0, 0, -0.5, 0.866, 0, -0.5, -0.866, 0}
	assert.InDelta(Te, 0, InversionEnergy(&p, planar), 1e-9)
	out := []float64{1, 0, 0, 0, 0, 0, -0.5, 0.866, 0, -0.5, -0.866, 0.5}
	e := InversionEnergy(&p, out)
	assert.Greater(Te, e, 0.0)
	k, c0, c1, c2 = inversionParams(6, true)
	po := InversionParams{I: 0, J: 1, K: 2, L: 3, ForceConstant: k, C0: c0, C1: c1, C2: c2}
	assert.InDelta(Te, 50.0/6, InversionEnergy(&po, out)/e, 1e-9)
}

//Coincident or collinear atoms must give finite energies and gradients.
func TestDegenerateGeometries(Te *testing.T) {
	finite := func(name string, e float64, grad []float64) {
		assert.False(Te, math.IsNaN(e) || math.IsInf(e, 0), "%s energy %g", name, e)
		for i, g := range grad {
			assert.False(Te, math.IsNaN(g) || math.IsInf(g, 0), "%s gradient %d: %g", name, i, g)
		}
	}
	same := []float64{1, 2, 3, 1, 2, 3}
	bp := BondParams{I: 0, J: 1, RestLength: 1.5, ForceConstant: 700}
	grad := make([]float64, 6)
	e := BondEnergyGradient(&bp, same, grad)
	finite("bond", e, grad)
	assert.InDelta(Te, 0.5*700*(minDistance-1.5)*(minDistance-1.5), e, 1e-9)
	assert.NotEqual(Te, 0.0, grad[0], "coincident atoms should be pushed apart")
	vp := VdwParams{I: 0, J: 1, Distance: 3.8, Depth: 0.1}
	grad = make([]float64, 6)
	finite("vdw", VdwEnergyGradient(&vp, same, grad), grad)
	ap := NewAngleParams(0, 1, 2, 2, 100, General)
	for _, pos := range [][]float64{
		{1, 0, 0, 0, 0, 0, 2, 0, 0},  //zero angle
		{1, 0, 0, 0, 0, 0, -1, 0, 0}, //straight
		{0, 0, 0, 0, 0, 0, 1, 0, 0},  //zero length arm
	} {
		grad = make([]float64, 9)
		finite("angle", AngleEnergyGradient(ap, pos, grad), grad)
	}
	tp := TorsionParams{I: 0, J: 1, K: 2, L: 3, V: 2, N: 3, CosTerm: -1}
	grad = make([]float64, 12)
	finite("torsion", TorsionEnergyGradient(&tp, []float64{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 1, 0}, grad), grad)
	ip := InversionParams{I: 0, J: 1, K: 2, L: 3, ForceConstant: 2, C0: 1, C1: -1}
	grad = make([]float64, 12)
	finite("inversion", InversionEnergyGradient(&ip, []float64{1, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 1}, grad), grad)
}

func TestCosN(Te *testing.T) {
	for _, phi := range []float64{0, 0.3, 1, 1.7, 2.5, math.Pi} {
		for n := 0; n <= 6; n++ {
			c, dc := cosN(math.Cos(phi), n)
			assert.InDelta(Te, math.Cos(float64(n)*phi), c, 1e-12)
			if s := math.Sin(phi); math.Abs(s) > 1e-6 {
				assert.InDelta(Te, float64(n)*math.Sin(float64(n)*phi)/s, dc, 1e-9)
			}
		}
	}
}
