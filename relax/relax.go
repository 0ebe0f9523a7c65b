/*
 * relax.go, part of gochem.
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

package relax

import (
	"sort"

	chem "github.com/atomCAD/atomCAD-sub000"
	"github.com/atomCAD/atomCAD-sub000/minimize"
	"github.com/atomCAD/atomCAD-sub000/top"
	"github.com/atomCAD/atomCAD-sub000/uff"
)

//FreezeMode tells how a selection of atoms is turned into the set of frozen atoms.
type FreezeMode int

const (
	FreezeNone     FreezeMode = iota //every atom moves, the selection is ignored
	FreezeSelected                   //the selected atoms don't move
	FreeSelected                     //only the selected atoms move
)

func (m FreezeMode) String() string {
	switch m {
	case FreezeNone:
		return "FreezeNone"
	case FreezeSelected:
		return "FreezeSelected"
	case FreeSelected:
		return "FreeSelected"
	}
	return "FreezeMode(?)"
}

//Frozen returns the sorted indexes of the atoms, out of n, that are frozen for the
//selection sel and the mode given. Indexes in sel outside [0,n) give an error
//that wraps chem.ErrInvalidFrozenSet.
func Frozen(n int, sel []int, mode FreezeMode) ([]int, error) {
	if mode == FreezeNone {
		return nil, nil
	}
	selected := make([]bool, n)
	for _, i := range sel {
		if i < 0 || i >= n {
			return nil, chem.NewError(chem.ErrInvalidFrozenSet, "relax.Frozen", "Selected atom %d out of range [0,%d)", i, n)
		}
		selected[i] = true
	}
	var want bool
	switch mode {
	case FreezeSelected:
		want = true
	case FreeSelected:
		want = false
	default:
		return nil, chem.NewError(chem.ErrInvalidFrozenSet, "relax.Frozen", "Unknown freeze mode %d", int(mode))
	}
	frozen := make([]int, 0, n)
	for i, s := range selected {
		if s == want {
			frozen = append(frozen, i)
		}
	}
	sort.Ints(frozen)
	return frozen, nil
}

//ForceField builds the UFF force field for mol. A nil ffopts means uff.DefaultOptions().
func ForceField(mol *chem.Molecule, ffopts *uff.Options) (*uff.ForceField, error) {
	T, err := top.FromMolecule(mol)
	if err != nil {
		return nil, chem.ErrDecorate(err, "relax.ForceField")
	}
	F, err := uff.New(T, ffopts)
	if err != nil {
		return nil, chem.ErrDecorate(err, "relax.ForceField")
	}
	return F, nil
}

//Molecule minimizes the UFF energy of mol, with the atoms given by sel and mode
//frozen. mol is not modified: the relaxed geometry is returned in a copy.
//Nil options mean the defaults. Nothing is evaluated if the molecule or the
//frozen set are invalid.
func Molecule(mol *chem.Molecule, sel []int, mode FreezeMode, ffopts *uff.Options, opts *minimize.Options) (*chem.Molecule, *minimize.Result, error) {
	if mol.Len() > 0 && mol.Coords == nil {
		return nil, nil, chem.NewError(chem.ErrInvalidMolecule, "relax.Molecule", "Molecule without coordinates")
	}
	frozen, err := Frozen(mol.Len(), sel, mode)
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "relax.Molecule")
	}
	F, err := ForceField(mol, ffopts)
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "relax.Molecule")
	}
	//in cutoff mode the pairs of frozen atoms are skipped.
	F, err = F.WithFrozen(frozen)
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "relax.Molecule")
	}
	ret := mol.Copy()
	var pos []float64
	if ret.Coords != nil {
		pos = ret.Coords.Raw()
	}
	res, err := minimize.LBFGS(F, pos, frozen, opts)
	if err != nil {
		return nil, nil, chem.ErrDecorate(err, "relax.Molecule")
	}
	return ret, res, nil
}

//XYZFile reads the xyz file in, assigns single bonds to it based on distances,
//relaxes it with the default force field and writes the result to the xyz file out.
//The status of the minimization goes in the comment line of out.
func XYZFile(in, out string, opts *minimize.Options) (*minimize.Result, error) {
	mol, err := chem.XYZRead(in)
	if err != nil {
		return nil, chem.ErrDecorate(err, "relax.XYZFile")
	}
	if err := chem.AssignBonds(mol); err != nil {
		return nil, chem.ErrDecorate(err, "relax.XYZFile")
	}
	relaxed, res, err := Molecule(mol, nil, FreezeNone, nil, opts)
	if err != nil {
		return nil, chem.ErrDecorate(err, "relax.XYZFile")
	}
	if err := chem.XYZWrite(out, relaxed, res.Status); err != nil {
		return nil, chem.ErrDecorate(err, "relax.XYZFile")
	}
	return res, nil
}
