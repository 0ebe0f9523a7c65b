/*
 * typer.go, part of gochem.
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
	chem "github.com/atomCAD/atomCAD-sub000"
)

//Elements with one label regardless of their bonds.
var fixedTypes = map[int]string{
	1: "H_", 2: "He4+4", 3: "Li", 4: "Be3+2", 9: "F_", 10: "Ne4+4",
	11: "Na", 12: "Mg3+2", 13: "Al3", 14: "Si3", 17: "Cl", 18: "Ar4+4",
	19: "K_", 20: "Ca6+2", 21: "Sc3+3", 23: "V_3+5", 24: "Cr6+3", 25: "Mn6+2",
	27: "Co6+3", 28: "Ni4+2", 29: "Cu3+1", 30: "Zn3+2", 31: "Ga3+3", 32: "Ge3",
	33: "As3+3", 34: "Se3+2", 35: "Br", 36: "Kr4+4",
	37: "Rb", 38: "Sr6+2", 39: "Y_3+3", 40: "Zr3+4", 41: "Nb3+5", 43: "Tc6+5",
	44: "Ru6+2", 45: "Rh6+3", 46: "Pd4+2", 47: "Ag1+1", 48: "Cd3+2", 49: "In3+3",
	50: "Sn3", 51: "Sb3+3", 52: "Te3+2", 53: "I_", 54: "Xe4+4",
	55: "Cs", 56: "Ba6+2", 57: "La3+3", 72: "Hf3+4", 73: "Ta3+5", 76: "Os6+6",
	77: "Ir6+3", 78: "Pt4+2", 79: "Au4+3", 80: "Hg1+2", 81: "Tl3+3", 82: "Pb3",
	83: "Bi3+3", 84: "Po3+2", 85: "At", 86: "Rn4+4",
	87: "Fr", 88: "Ra6+2", 89: "Ac6+3", 90: "Th6+4", 91: "Pa6+4", 92: "U_6+4",
	93: "Np6+4", 94: "Pu6+4", 95: "Am6+4", 96: "Cm6+3", 97: "Bk6+3", 98: "Cf6+3",
	99: "Es6+3", 100: "Fm6+3", 101: "Md6+3", 102: "No6+3", 103: "Lw6+3",
}

//bondSummary is what the typer needs to know about the bonds of an atom.
type bondSummary struct {
	n        int     //bonds, not counting deleted ones
	doubles  int
	triple   bool
	aromatic bool
	valence  float64 //sum of bond orders
}

func summarize(bonds []chem.BondOrder) bondSummary {
	var s bondSummary
	for _, o := range bonds {
		if o == chem.Deleted {
			continue
		}
		s.n++
		s.valence += o.Float()
		switch o {
		case chem.Double:
			s.doubles++
		case chem.Triple:
			s.triple = true
		case chem.Aromatic:
			s.aromatic = true
		}
	}
	return s
}

//hybridization character for C, N and O: R, 1, 2 or 3.
func (s bondSummary) hybChar() string {
	switch {
	case s.aromatic:
		return "R"
	case s.triple || s.doubles >= 2:
		return "1"
	case s.doubles == 1:
		return "2"
	}
	return "3"
}

//AssignType returns the UFF label for an atom with atomic number z and
//bonds of the given orders. Only the bonds of the atom itself are considered.
//Deleted bonds are ignored. Atomic numbers outside 1-103 give an error
//that wraps chem.ErrUnsupportedElement.
func AssignType(z int, bonds []chem.BondOrder) (string, error) {
	if z < 1 || z > chem.MaxZ {
		return "", chem.NewError(chem.ErrUnsupportedElement, "uff.AssignType", "No UFF atom type for atomic number %d", z)
	}
	if l, ok := fixedTypes[z]; ok {
		return l, nil
	}
	s := summarize(bonds)
	switch z {
	case 5:
		if s.aromatic || s.doubles > 0 || s.triple || s.n == 2 {
			return "B_2", nil
		}
		return "B_3", nil
	case 6:
		return "C_" + s.hybChar(), nil
	case 7:
		return "N_" + s.hybChar(), nil
	case 8:
		return "O_" + s.hybChar(), nil
	case 15:
		if s.valence >= 5 || s.n >= 5 {
			return "P_3+5", nil
		}
		return "P_3+3", nil
	case 16:
		switch {
		case s.aromatic:
			return "S_R", nil
		case s.n == 1 && s.doubles == 1:
			return "S_2", nil
		case s.valence >= 6 || s.n >= 5:
			return "S_3+6", nil
		case s.valence >= 3:
			return "S_3+4", nil
		}
		return "S_3+2", nil
	case 22:
		if s.n > 4 {
			return "Ti6+4", nil
		}
		return "Ti3+4", nil
	case 26:
		if s.n > 4 {
			return "Fe6+2", nil
		}
		return "Fe3+2", nil
	case 42:
		if s.n > 4 {
			return "Mo6+6", nil
		}
		return "Mo3+6", nil
	case 74:
		switch {
		case s.n > 4:
			return "W_6+6", nil
		case s.valence > 4:
			return "W_3+6", nil
		}
		return "W_3+4", nil
	case 75:
		if s.n > 4 {
			return "Re6+5", nil
		}
		return "Re3+7", nil
	}
	if z >= 58 && z <= 71 {
		return chem.Z2Symbol(z) + "6+3", nil
	}
	//Can't happen if the tables above cover 1-103.
	return "", chem.NewError(chem.ErrUnsupportedElement, "uff.AssignType", "No UFF atom type for atomic number %d", z)
}

//Hybridization returns the hybridization digit encoded in the third character of a
//label: 1 for sp, 2 for sp2 (and R, resonant), 3 for sp3, 4, 5 or 6 for the metal geometries,
//and 0 for labels without one (H_, halogens, alkali metals).
func Hybridization(label string) int {
	if len(label) < 3 {
		return 0
	}
	c := label[2]
	switch {
	case c == 'R':
		return 2
	case c >= '0' && c <= '9':
		return int(c - '0')
	}
	return 0
}
