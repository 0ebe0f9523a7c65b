/*
 * chem.go, part of gochem.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"sort"
	"strconv"
	"strings"

	v3 "github.com/atomCAD/atomCAD-sub000/v3"
)

//Atom contains the information of one atom except for its coordinates,
//which are kept in a matrix.
type Atom struct {
	Name   string
	Symbol string
	Z      int //atomic number
	Index  int //position of the atom in its molecule
}

//NewAtom returns an atom of the element with the given symbol.
//The symbol is not case sensitive.
func NewAtom(symbol string) (*Atom, error) {
	z, err := Symbol2Z(symbol)
	if err != nil {
		return nil, errDecorate(err, "NewAtom")
	}
	return &Atom{Name: symbols[z], Symbol: symbols[z], Z: z}, nil
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

//Molecule is the structure the rest of the library works on: atoms, bonds
//between them (by index) and one set of coordinates.
type Molecule struct {
	Atoms  []*Atom
	Bonds  []*Bond
	Coords *v3.Matrix
}

//NewMolecule builds a molecule from atoms, coordinates and bonds, fills the
//indexes of atoms and bonds, and checks that everything is consistent.
//bonds can be nil.
func NewMolecule(ats []*Atom, coords *v3.Matrix, bonds []*Bond) (*Molecule, error) {
	M := &Molecule{Atoms: ats, Bonds: bonds, Coords: coords}
	M.FillIndexes()
	if err := M.Validate(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return M, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the ith atom. It panics if i is out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//FillIndexes sets the Index field of every atom and bond to its position
//in the corresponding slice.
func (M *Molecule) FillIndexes() {
	for i, a := range M.Atoms {
		a.Index = i
	}
	for i, b := range M.Bonds {
		b.Index = i
	}
}

//AtomicNumbers returns the atomic numbers of all atoms, in order.
func (M *Molecule) AtomicNumbers() []int {
	ret := make([]int, M.Len())
	for i, a := range M.Atoms {
		ret[i] = a.Z
	}
	return ret
}

//AddBond adds a bond of the given order between the atoms with indexes i and j,
//and returns it. It doesn't check for duplicates, Validate does.
func (M *Molecule) AddBond(i, j int, order BondOrder) *Bond {
	b := &Bond{Index: len(M.Bonds), At1: i, At2: j, Order: order}
	M.Bonds = append(M.Bonds, b)
	return b
}

//Validate checks that the coordinates match the atoms, that every bond joins
//two different existing atoms, that no pair of atoms is bonded twice, and that
//every atom has an atomic number in the periodic table.
func (M *Molecule) Validate() error {
	if M.Coords != nil && M.Coords.NVecs() != M.Len() {
		return NewError(ErrInvalidMolecule, "Validate", "%d atoms but %d coordinates", M.Len(), M.Coords.NVecs())
	}
	for i, a := range M.Atoms {
		if a == nil {
			return NewError(ErrInvalidMolecule, "Validate", "atom %d is nil", i)
		}
		if a.Z < 1 || a.Z > len(symbols)-1 {
			return NewError(ErrUnsupportedElement, "Validate", "atom %d has atomic number %d", i, a.Z)
		}
	}
	seen := make(map[[2]int]bool, len(M.Bonds))
	for _, b := range M.Bonds {
		if b.At1 < 0 || b.At2 < 0 || b.At1 >= M.Len() || b.At2 >= M.Len() {
			return NewError(ErrInvalidMolecule, "Validate", "bond %d-%d out of range for %d atoms", b.At1, b.At2, M.Len())
		}
		if b.At1 == b.At2 {
			return NewError(ErrInvalidMolecule, "Validate", "atom %d bonded to itself", b.At1)
		}
		key := b.Key()
		if seen[key] {
			return NewError(ErrInvalidMolecule, "Validate", "atoms %d and %d bonded more than once", key[0], key[1])
		}
		seen[key] = true
	}
	return nil
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	ret := &Molecule{Atoms: make([]*Atom, M.Len()), Bonds: make([]*Bond, len(M.Bonds))}
	for i, a := range M.Atoms {
		ret.Atoms[i] = a.Copy()
	}
	for i, b := range M.Bonds {
		nb := *b
		ret.Bonds[i] = &nb
	}
	if M.Coords != nil {
		ret.Coords = v3.Zeros(M.Coords.NVecs())
		ret.Coords.Copy(M.Coords)
	}
	return ret
}

//Formula returns the element counts of the molecule in Hill order
//(C, H, then the rest alphabetically), e.g. "C2H6O".
func (M *Molecule) Formula() string {
	counts := make(map[string]int)
	for _, a := range M.Atoms {
		counts[a.Symbol]++
	}
	order := make([]string, 0, len(counts))
	if _, ok := counts["C"]; ok {
		order = append(order, "C")
		if _, ok := counts["H"]; ok {
			order = append(order, "H")
		}
	}
	rest := make([]string, 0, len(counts))
	for s := range counts {
		if isInString(order, s) {
			continue
		}
		rest = append(rest, s)
	}
	sort.Strings(rest)
	order = append(order, rest...)
	var b strings.Builder
	for _, s := range order {
		b.WriteString(s)
		if counts[s] > 1 {
			b.WriteString(strconv.Itoa(counts[s]))
		}
	}
	return b.String()
}
