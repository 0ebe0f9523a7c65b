/*
 * atomicdata.go, part of gochem.
 *
 *
 * Copyright 2014 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

import "strings"

//Element symbols indexed by atomic number. Index 0 is a placeholder.
var symbols = [...]string{"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
}

var symbolZ = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for i, s := range symbols[1:] {
		m[strings.ToLower(s)] = i + 1
	}
	return m
}()

//Symbol2Z returns the atomic number for an element symbol, which
//is not case sensitive.
func Symbol2Z(symbol string) (int, error) {
	z, ok := symbolZ[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return 0, NewError(ErrUnsupportedElement, "Symbol2Z", "unknown element symbol %q", symbol)
	}
	return z, nil
}

//Z2Symbol returns the element symbol for an atomic number, or
//an empty string if z is not in the periodic table.
func Z2Symbol(z int) string {
	if z < 1 || z >= len(symbols) {
		return ""
	}
	return symbols[z]
}

//MaxZ is the largest atomic number known to the library.
const MaxZ = len(symbols) - 1

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" and a few others are present
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 I altered this one. Since H always has only one bond, it doesn't matter if I set a longer radius, the extra bonds will get eliminated later.
	"Li": 1.28,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Al": 1.21,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"Ge": 1.20,
	"As": 1.19,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//A map for checking that atoms don't
//have too many bonds. A value of 0 means
//undefined, i.e. that this atom shouldn't
//be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}
