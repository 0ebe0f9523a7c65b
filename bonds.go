/*
 * bonds.go, part of gochem.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"log"
	"sort"

	v3 "github.com/atomCAD/atomCAD-sub000/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//BondOrder is the integer code for the order of a bond.
type BondOrder int

const (
	Deleted   BondOrder = iota //ignored everywhere
	Single
	Double
	Triple
	Quadruple
	Aromatic
	Dative
	Metallic
)

var bondOrderNames = [...]string{"deleted", "single", "double", "triple", "quadruple", "aromatic", "dative", "metallic"}

func (o BondOrder) String() string {
	if o < 0 || int(o) >= len(bondOrderNames) {
		return "unknown"
	}
	return bondOrderNames[o]
}

//Float returns the bond order as used by the force field: 1.5 for
//aromatic bonds, 2 and 3 for double and triple bonds, 0 for deleted bonds
//and 1 for everything else (single, quadruple, dative, metallic).
func (o BondOrder) Float() float64 {
	switch o {
	case Deleted:
		return 0
	case Double:
		return 2
	case Triple:
		return 3
	case Aromatic:
		return 1.5
	}
	return 1
}

//Bond joins the atoms with indexes At1 and At2.
type Bond struct {
	Index int
	At1   int
	At2   int
	Order BondOrder
	Dist  float64 //only set by AssignBonds
}

//Cross returns the index of the atom at the other side of the bond.
func (B *Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

//Key returns the indexes of the bonded atoms, smallest first.
func (B *Bond) Key() [2]int {
	if B.At1 < B.At2 {
		return [2]int{B.At1, B.At2}
	}
	return [2]int{B.At2, B.At1}
}

//BondsOf returns the bonds (not deleted) that involve the atom with index i.
func (M *Molecule) BondsOf(i int) []*Bond {
	ret := make([]*Bond, 0, 4)
	for _, b := range M.Bonds {
		if b.Order == Deleted {
			continue
		}
		if b.At1 == i || b.At2 == i {
			ret = append(ret, b)
		}
	}
	return ret
}

//AssignBonds replaces the bonds of mol with single bonds assigned
//based on a simple distance criterium, similar to that described in DOI:10.1186/1758-2946-3-33
//Atoms that end up with more bonds than allowed for their element lose the longest ones.
func AssignBonds(mol *Molecule) error {
	// might get slow for
	//large systems. It's really not thought
	//for proteins or macromolecules.
	if mol.Coords == nil || mol.Coords.NVecs() != mol.Len() {
		return NewError(ErrInvalidMolecule, "AssignBonds", "no coordinates or wrong number of coordinates")
	}
	mol.FillIndexes()
	t3 := v3.Zeros(1)
	tot := mol.Len()
	perAtom := make([][]*Bond, tot)
	for i := 0; i < tot; i++ {
		t1 := mol.Coords.VecView(i)
		cov1 := symbolCovrad[mol.Atom(i).Symbol]
		if cov1 == 0 {
			return NewError(ErrUnsupportedElement, "AssignBonds", "Couldn't find the covalent radii for %s %d", mol.Atom(i).Symbol, i)
		}
		for j := i + 1; j < tot; j++ {
			t2 := mol.Coords.VecView(j)
			cov2 := symbolCovrad[mol.Atom(j).Symbol]
			if cov2 == 0 {
				return NewError(ErrUnsupportedElement, "AssignBonds", "Couldn't find the covalent radii for %s %d", mol.Atom(j).Symbol, j)
			}
			t3.Sub(t2, t1)
			d := t3.Norm(2)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{At1: i, At2: j, Dist: d, Order: Single}
				perAtom[i] = append(perAtom[i], b)
				perAtom[j] = append(perAtom[j], b)
			}
		}
	}
	//Now we check that no atom has too many bonds.
	removed := make(map[*Bond]bool)
	for i := 0; i < tot; i++ {
		max := symbolMaxBonds[mol.Atom(i).Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		kept := make([]*Bond, 0, len(perAtom[i]))
		for _, b := range perAtom[i] {
			if !removed[b] {
				kept = append(kept, b)
			}
		}
		sort.Slice(kept, func(k, l int) bool { return kept[k].Dist < kept[l].Dist })
		for _, b := range kept[min(max, len(kept)):] {
			log.Printf("AssignBonds: removing bond %d-%d (%.3f A), atom %d has too many bonds", b.At1, b.At2, b.Dist, i)
			removed[b] = true
		}
	}
	bonds := make([]*Bond, 0, tot)
	for i := 0; i < tot; i++ {
		for _, b := range perAtom[i] {
			if b.At1 == i && !removed[b] {
				b.Index = len(bonds)
				bonds = append(bonds, b)
			}
		}
	}
	mol.Bonds = bonds
	return nil
}
