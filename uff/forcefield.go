/*
 * forcefield.go, part of gochem.
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
	"fmt"

	chem "github.com/atomCAD/atomCAD-sub000"
	"github.com/atomCAD/atomCAD-sub000/top"
)

//Terms is a set of energy terms of the force field.
type Terms uint8

const (
	BondTerms Terms = 1 << iota
	AngleTerms
	TorsionTerms
	InversionTerms
	VdwTerms
	AllTerms = BondTerms | AngleTerms | TorsionTerms | InversionTerms | VdwTerms
)

//Options controls how a ForceField is built and evaluated.
type Options struct {
	terms      Terms
	restLength RestLengthFunc
	amide      bool
	vdwCutoff  float64
	frozen     []int
}

//DefaultOptions returns options for the complete force field: all terms,
//the standard rest length, plain bond orders for amide bonds, and no vdW cutoff.
func DefaultOptions() *Options {
	return &Options{
		terms:      AllTerms,
		restLength: RestLength,
	}
}

//Terms returns the terms that will be evaluated, and sets them to a new value, if given.
func (O *Options) Terms(t ...Terms) Terms {
	if len(t) > 0 {
		O.terms = t[0]
	}
	return O.terms
}

//RestLength returns the function used to obtain bond rest lengths, and sets it
//to a new function, if a non-nil one is given.
func (O *Options) RestLength(f ...RestLengthFunc) RestLengthFunc {
	if len(f) > 0 && f[0] != nil {
		O.restLength = f[0]
	}
	return O.restLength
}

//AmideCorrection returns whether amide C-N bonds get the bond order 1.41
//(as RDKit does) instead of 1, and sets it to a new value, if given. It is
//off by default.
func (O *Options) AmideCorrection(b ...bool) bool {
	if len(b) > 0 {
		O.amide = b[0]
	}
	return O.amide
}

//VdwCutoff returns the cutoff for nonbonded interactions, in A, and sets it to
//a new value, if given. With a cutoff of 0 or less every nonbonded pair
//of the topology is evaluated. Otherwise, the pairs are searched at each
//evaluation with a spatial grid.
func (O *Options) VdwCutoff(c ...float64) float64 {
	if len(c) > 0 {
		O.vdwCutoff = c[0]
	}
	return O.vdwCutoff
}

//Frozen returns the atoms that will not move during a minimization, and sets
//them to a copy of the given slice, if given. In cutoff mode, vdW pairs where both
//atoms are frozen are not evaluated: they only add a constant to the energy.
//Without a cutoff this has no effect.
func (O *Options) Frozen(f ...[]int) []int {
	if len(f) > 0 {
		O.frozen = append([]int(nil), f[0]...)
	}
	return O.frozen
}

//ForceField is a UFF force field for one topology, with every
//interaction parameter precomputed. It is not modified by evaluations,
//so it can be shared and evaluated many times.
type ForceField struct {
	Bonds      []BondParams
	Angles     []AngleParams
	Torsions   []TorsionParams
	Inversions []InversionParams
	Vdw        []VdwParams //empty in cutoff mode

	labels []string
	params []*Params
	terms  Terms
	cutoff float64
	frozen []bool //nil if nothing is frozen
	top    *top.Topology
}

//New builds the force field for the topology T. It types every atom and obtains all the
//parameters, so an unsupported element gives an error, which wraps chem.ErrUnsupportedElement.
//A nil opts means DefaultOptions().
func New(T *top.Topology, opts *Options) (*ForceField, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	rest := opts.RestLength()
	if rest == nil {
		rest = RestLength
	}
	F := &ForceField{
		labels: make([]string, T.Len()),
		params: make([]*Params, T.Len()),
		terms:  opts.Terms(),
		cutoff: opts.VdwCutoff(),
		top:    T,
	}
	for i, z := range T.AtomicNumbers {
		label, err := AssignType(z, T.BondOrdersOf(i))
		if err != nil {
			return nil, chem.ErrDecorate(err, "uff.New")
		}
		p, ok := Lookup(label)
		if !ok {
			return nil, chem.NewError(chem.ErrUnsupportedElement, "uff.New", "No parameters for atom type %s (atom %d)", label, i)
		}
		F.labels[i] = label
		F.params[i] = p
	}
	bo := F.bondOrders(opts.AmideCorrection())
	order := func(i, j int) float64 {
		if o, ok := bo[[2]int{min(i, j), max(i, j)}]; ok {
			return o
		}
		return 1
	}
	for _, b := range T.Bonds {
		pi, pj := F.params[b.I], F.params[b.J]
		r0 := rest(order(b.I, b.J), pi, pj)
		F.Bonds = append(F.Bonds, BondParams{I: b.I, J: b.J, RestLength: r0, ForceConstant: BondForceConstant(r0, pi, pj)})
	}
	for _, a := range T.Angles {
		vertex := F.params[a.J]
		theta0 := vertex.Theta0 * chem.Deg2Rad
		k := AngleForceConstant(theta0, order(a.I, a.J), order(a.J, a.K), F.params[a.I], vertex, F.params[a.K], rest)
		if k <= 0 {
			continue
		}
		F.Angles = append(F.Angles, *NewAngleParams(a.I, a.J, a.K, theta0, k, angleOrder(Hybridization(F.labels[a.J]))))
	}
	F.buildTorsions(order)
	F.buildInversions()
	if F.cutoff <= 0 {
		for _, p := range T.Pairs {
			F.Vdw = append(F.Vdw, F.vdwPair(p.I, p.J))
		}
	}
	if len(opts.Frozen()) > 0 {
		mask, err := frozenMask(T.Len(), opts.Frozen())
		if err != nil {
			return nil, chem.ErrDecorate(err, "uff.New")
		}
		F.frozen = mask
	}
	return F, nil
}

func frozenMask(n int, frozen []int) ([]bool, error) {
	if len(frozen) == 0 {
		return nil, nil
	}
	mask := make([]bool, n)
	for _, i := range frozen {
		if i < 0 || i >= n {
			return nil, chem.NewError(chem.ErrInvalidFrozenSet, "uff.frozenMask", "Frozen atom %d out of range [0,%d)", i, n)
		}
		mask[i] = true
	}
	return mask, nil
}

//WithFrozen returns a force field that shares all the parameters of F, but
//skips the vdW pairs of frozen atoms in cutoff mode (see Options.Frozen).
//F is not modified. An index out of range gives an error that wraps
//chem.ErrInvalidFrozenSet.
func (F *ForceField) WithFrozen(frozen []int) (*ForceField, error) {
	mask, err := frozenMask(F.Len(), frozen)
	if err != nil {
		return nil, chem.ErrDecorate(err, "uff.WithFrozen")
	}
	G := *F
	G.frozen = mask
	return &G, nil
}

//coordination order of the angles around a vertex with the given hybridization.
func angleOrder(hyb int) int {
	switch hyb {
	case 1:
		return Linear
	case 2:
		return Trigonal
	case 6:
		return SquarePlanar
	}
	return General
}

//bondOrders returns the bond order of every bond, keyed by the sorted pair of
//atom indexes. Amide C-N bonds get AmideBondOrder, if amide is true.
func (F *ForceField) bondOrders(amide bool) map[[2]int]float64 {
	T := F.top
	bo := make(map[[2]int]float64, len(T.Bonds))
	for _, b := range T.Bonds {
		o := b.Order.Float()
		if amide && F.isAmide(b) {
			o = AmideBondOrder
		}
		bo[[2]int{min(b.I, b.J), max(b.I, b.J)}] = o
	}
	return bo
}

//isAmide returns true for a single bond between nitrogen and an sp2 or
//resonant carbon that is double bonded to an oxygen.
func (F *ForceField) isAmide(b top.Bond) bool {
	if b.Order != chem.Single {
		return false
	}
	zs := F.top.AtomicNumbers
	c, n := b.I, b.J
	if zs[c] == 7 {
		c, n = n, c
	}
	if zs[c] != 6 || zs[n] != 7 {
		return false
	}
	if l := F.labels[c]; l != "C_2" && l != "C_R" {
		return false
	}
	for _, o := range F.top.Neighbors(c) {
		if zs[o] == 8 && F.top.BondOrder(c, o) == chem.Double {
			return true
		}
	}
	return false
}

//Torsions are only kept when both central atoms are sp2 or sp3. The barrier
//is divided among all the torsions around the same central bond.
func (F *ForceField) buildTorsions(order func(i, j int) float64) {
	perBond := make(map[[2]int]int)
	for _, t := range F.top.Torsions {
		hj, hk := Hybridization(F.labels[t.J]), Hybridization(F.labels[t.K])
		if (hj != 2 && hj != 3) || (hk != 2 && hk != 3) {
			continue
		}
		zs := F.top.AtomicNumbers
		endSP2 := Hybridization(F.labels[t.I]) == 2 || Hybridization(F.labels[t.L]) == 2
		v, n, cosTerm := torsionParams(order(t.J, t.K), zs[t.J], zs[t.K], hj, hk, F.params[t.J], F.params[t.K], endSP2)
		F.Torsions = append(F.Torsions, TorsionParams{I: t.I, J: t.J, K: t.K, L: t.L, V: v, N: n, CosTerm: cosTerm})
		perBond[[2]int{min(t.J, t.K), max(t.J, t.K)}]++
	}
	for i := range F.Torsions {
		t := &F.Torsions[i]
		if c := perBond[[2]int{min(t.J, t.K), max(t.J, t.K)}]; c > 1 {
			t.V /= float64(c)
		}
	}
}

func (F *ForceField) buildInversions() {
	zs := F.top.AtomicNumbers
	for _, inv := range F.top.Inversions {
		cBoundToO := false
		if zs[inv.J] == 6 {
			for _, nb := range [3]int{inv.I, inv.K, inv.L} {
				if zs[nb] == 8 && Hybridization(F.labels[nb]) == 2 {
					cBoundToO = true
				}
			}
		}
		k, c0, c1, c2 := inversionParams(zs[inv.J], cBoundToO)
		F.Inversions = append(F.Inversions, InversionParams{I: inv.I, J: inv.J, K: inv.K, L: inv.L, ForceConstant: k, C0: c0, C1: c1, C2: c2})
	}
}

func (F *ForceField) vdwPair(i, j int) VdwParams {
	pi, pj := F.params[i], F.params[j]
	return VdwParams{I: i, J: j, Distance: VdwDistance(pi, pj), Depth: VdwWellDepth(pi, pj)}
}

//Len returns the number of atoms.
func (F *ForceField) Len() int {
	return len(F.labels)
}

//Labels returns the UFF atom type of each atom.
func (F *ForceField) Labels() []string {
	return append([]string(nil), F.labels...)
}

//Topology returns the topology the force field was built from.
func (F *ForceField) Topology() *top.Topology {
	return F.top
}

func (F *ForceField) checkLen(pos []float64, name string) {
	if len(pos) != 3*F.Len() {
		panic(fmt.Sprintf("uff: %s buffer has %d values, need %d", name, len(pos), 3*F.Len()))
	}
}

//Components is the energy of a structure split by term, in kcal/mol.
type Components struct {
	Bond, Angle, Torsion, Inversion, Vdw float64
}

//Total returns the sum of all the components.
func (C Components) Total() float64 {
	return C.Bond + C.Angle + C.Torsion + C.Inversion + C.Vdw
}

//EnergyAndGradients puts the gradient of the energy for the flat position buffer pos
//in grad, which is zeroed first, and returns the energy. Both buffers
//must have 3 values per atom.
func (F *ForceField) EnergyAndGradients(pos, grad []float64) float64 {
	F.checkLen(pos, "position")
	F.checkLen(grad, "gradient")
	for i := range grad {
		grad[i] = 0
	}
	return F.evaluate(pos, grad).Total()
}

//Energy returns the energy for the flat position buffer pos.
func (F *ForceField) Energy(pos []float64) float64 {
	F.checkLen(pos, "position")
	return F.evaluate(pos, nil).Total()
}

//EnergyComponents returns the energy for pos, split by term.
func (F *ForceField) EnergyComponents(pos []float64) Components {
	F.checkLen(pos, "position")
	return F.evaluate(pos, nil)
}

//evaluate adds the gradients to grad, unless it is nil.
func (F *ForceField) evaluate(pos, grad []float64) Components {
	var c Components
	if F.terms&BondTerms != 0 {
		for i := range F.Bonds {
			if grad == nil {
				c.Bond += BondEnergy(&F.Bonds[i], pos)
			} else {
				c.Bond += BondEnergyGradient(&F.Bonds[i], pos, grad)
			}
		}
	}
	if F.terms&AngleTerms != 0 {
		for i := range F.Angles {
			if grad == nil {
				c.Angle += AngleEnergy(&F.Angles[i], pos)
			} else {
				c.Angle += AngleEnergyGradient(&F.Angles[i], pos, grad)
			}
		}
	}
	if F.terms&TorsionTerms != 0 {
		for i := range F.Torsions {
			if grad == nil {
				c.Torsion += TorsionEnergy(&F.Torsions[i], pos)
			} else {
				c.Torsion += TorsionEnergyGradient(&F.Torsions[i], pos, grad)
			}
		}
	}
	if F.terms&InversionTerms != 0 {
		for i := range F.Inversions {
			if grad == nil {
				c.Inversion += InversionEnergy(&F.Inversions[i], pos)
			} else {
				c.Inversion += InversionEnergyGradient(&F.Inversions[i], pos, grad)
			}
		}
	}
	if F.terms&VdwTerms != 0 {
		c.Vdw = F.vdw(pos, grad)
	}
	return c
}

func (F *ForceField) vdw(pos, grad []float64) float64 {
	var e float64
	pair := func(p *VdwParams) {
		if grad == nil {
			e += VdwEnergy(p, pos)
		} else {
			e += VdwEnergyGradient(p, pos, grad)
		}
	}
	if F.cutoff <= 0 {
		for i := range F.Vdw {
			pair(&F.Vdw[i])
		}
		return e
	}
	if F.Len() < 2 {
		return 0
	}
	NewGrid(pos, F.cutoff).Pairs(pos, F.cutoff, func(i, j int) {
		if F.top.Excluded(i, j) || (F.frozen != nil && F.frozen[i] && F.frozen[j]) {
			return
		}
		p := F.vdwPair(i, j)
		pair(&p)
	})
	return e
}
