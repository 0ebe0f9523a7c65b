/*
 * topology.go, part of gochem.
 *
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package top

import (
	chem "github.com/atomCAD/atomCAD-sub000"
	"github.com/atomCAD/atomCAD-sub000/chemgraph"
)

//Bond is a bonded pair, kept as given in the input.
type Bond struct {
	I, J  int
	Order chem.BondOrder
}

//Angle is the angle I-J-K, with J as the vertex.
type Angle struct {
	I, J, K int
}

//Torsion is the dihedral I-J-K-L around the central bond J-K.
type Torsion struct {
	I, J, K, L int
}

//Inversion is an out-of-plane term for the center J. I, K and L are its
//neighbors, and L is the one whose bond is measured against the plane of the other two.
type Inversion struct {
	I, J, K, L int
}

//Pair is a nonbonded pair, with I < J.
type Pair struct {
	I, J int
}

//Topology contains every bonded and nonbonded interaction of a structure.
//It is not modified after it's built, so it can be shared freely.
type Topology struct {
	AtomicNumbers []int
	Bonds         []Bond
	Angles        []Angle
	Torsions      []Torsion
	Inversions    []Inversion
	Pairs         []Pair

	graph    *chemgraph.Graph
	orders   map[[2]int]chem.BondOrder
	excluded map[[2]int]bool //1-2 and 1-3 pairs
}

//group 15 elements that can be inversion centers. Nitrogen is handled as a C/N/O center.
var group15 = []int{15, 33, 51, 83}

func key(i, j int) [2]int {
	if i < j {
		return [2]int{i, j}
	}
	return [2]int{j, i}
}

//FromMolecule builds the topology of mol. The molecule is validated first.
//Deleted bonds are ignored.
func FromMolecule(mol *chem.Molecule) (*Topology, error) {
	if err := mol.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "top.FromMolecule")
	}
	return FromStructure(mol.AtomicNumbers(), mol.Bonds)
}

//FromStructure builds the topology of the atoms with the given atomic
//numbers and bonds. Bond indexes must be in range, no atom can be bonded to
//itself, and no pair can be bonded twice.
func FromStructure(atomicNumbers []int, bonds []*chem.Bond) (*Topology, error) {
	n := len(atomicNumbers)
	T := &Topology{
		AtomicNumbers: append([]int(nil), atomicNumbers...),
		orders:        make(map[[2]int]chem.BondOrder, len(bonds)),
		excluded:      make(map[[2]int]bool),
	}
	for _, b := range bonds {
		if b.Order == chem.Deleted {
			continue
		}
		if b.At1 < 0 || b.At2 < 0 || b.At1 >= n || b.At2 >= n || b.At1 == b.At2 {
			return nil, chem.NewError(chem.ErrInvalidMolecule, "top.FromStructure", "invalid bond %d-%d for %d atoms", b.At1, b.At2, n)
		}
		k := key(b.At1, b.At2)
		if _, ok := T.orders[k]; ok {
			return nil, chem.NewError(chem.ErrInvalidMolecule, "top.FromStructure", "atoms %d and %d bonded more than once", k[0], k[1])
		}
		T.orders[k] = b.Order
		T.Bonds = append(T.Bonds, Bond{I: b.At1, J: b.At2, Order: b.Order})
	}
	T.graph = chemgraph.New(n, bonds)
	T.buildAngles()
	T.buildTorsions()
	T.buildInversions()
	T.buildPairs()
	return T, nil
}

//Len returns the number of atoms.
func (T *Topology) Len() int {
	return len(T.AtomicNumbers)
}

//Neighbors returns the atoms bonded to atom i, in increasing order.
func (T *Topology) Neighbors(i int) []int {
	return T.graph.Neighbors(i)
}

//Graph returns the bond graph.
func (T *Topology) Graph() *chemgraph.Graph {
	return T.graph
}

//BondOrder returns the order of the bond between i and j, or chem.Deleted
//if they are not bonded.
func (T *Topology) BondOrder(i, j int) chem.BondOrder {
	return T.orders[key(i, j)]
}

//BondOrdersOf returns the orders of the bonds of atom i, following the order of Neighbors.
func (T *Topology) BondOrdersOf(i int) []chem.BondOrder {
	nb := T.Neighbors(i)
	ret := make([]chem.BondOrder, len(nb))
	for k, j := range nb {
		ret[k] = T.BondOrder(i, j)
	}
	return ret
}

//Excluded returns true if i and j are 1-2 or 1-3 neighbors (or i==j),
//i.e. if they can't form a nonbonded pair.
func (T *Topology) Excluded(i, j int) bool {
	if i == j {
		return true
	}
	return T.excluded[key(i, j)]
}

//every unordered pair of neighbors of each atom gives an angle.
func (T *Topology) buildAngles() {
	for j := 0; j < T.Len(); j++ {
		nb := T.Neighbors(j)
		for a := 0; a < len(nb); a++ {
			T.excluded[key(j, nb[a])] = true
			for b := a + 1; b < len(nb); b++ {
				T.Angles = append(T.Angles, Angle{I: nb[a], J: j, K: nb[b]})
				T.excluded[key(nb[a], nb[b])] = true
			}
		}
	}
}

//Torsions are enumerated around every bond, in input order. When both ends
//are the same atom (3-membered rings) the torsion is skipped. This is a special
//case for that ring size, not general ring handling.
func (T *Topology) buildTorsions() {
	for _, b := range T.Bonds {
		j, k := b.I, b.J
		for _, i := range T.Neighbors(j) {
			if i == k {
				continue
			}
			for _, l := range T.Neighbors(k) {
				if l == j || l == i {
					continue
				}
				T.Torsions = append(T.Torsions, Torsion{I: i, J: j, K: k, L: l})
			}
		}
	}
}

//IsInversionCenter returns true if atom i gets out-of-plane terms: C, N or O with
//a double or aromatic bond, or a group 15 element (P, As, Sb, Bi) with three bonds.
//Either way, the atom needs exactly three neighbors.
func (T *Topology) IsInversionCenter(i int) bool {
	nb := T.Neighbors(i)
	if len(nb) != 3 {
		return false
	}
	z := T.AtomicNumbers[i]
	if z >= 6 && z <= 8 {
		for _, o := range T.BondOrdersOf(i) {
			if o == chem.Double || o == chem.Aromatic {
				return true
			}
		}
		return false
	}
	for _, g := range group15 {
		if z == g {
			return true
		}
	}
	return false
}

//Each center gives three inversions, each neighbor being the out-of-plane atom once.
func (T *Topology) buildInversions() {
	for j := 0; j < T.Len(); j++ {
		if !T.IsInversionCenter(j) {
			continue
		}
		nb := T.Neighbors(j)
		T.Inversions = append(T.Inversions,
			Inversion{I: nb[0], J: j, K: nb[1], L: nb[2]},
			Inversion{I: nb[0], J: j, K: nb[2], L: nb[1]},
			Inversion{I: nb[1], J: j, K: nb[2], L: nb[0]},
		)
	}
}

//All pairs that are not 1-2 or 1-3. No distance cutoff.
func (T *Topology) buildPairs() {
	n := T.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if T.excluded[[2]int{i, j}] {
				continue
			}
			T.Pairs = append(T.Pairs, Pair{I: i, J: j})
		}
	}
}

//Counts returns the number of bonds, angles, torsions, inversions and nonbonded pairs.
func (T *Topology) Counts() (bonds, angles, torsions, inversions, pairs int) {
	return len(T.Bonds), len(T.Angles), len(T.Torsions), len(T.Inversions), len(T.Pairs)
}
