/*
 * files.go, part of gochem.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/atomCAD/atomCAD-sub000/v3"
)

//XYZRead reads the xyz file with name xyzname and returns a molecule
//without bonds. Use AssignBonds, or add the bonds by hand, before
//building a force field from it.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	mol, err := XYZReadFrom(xyzfile)
	if err != nil {
		return nil, errDecorate(err, "XYZRead "+xyzname)
	}
	return mol, nil
}

//XYZReadFrom reads one xyz frame from r.
func XYZReadFrom(r io.Reader) (*Molecule, error) {
	xyz := bufio.NewScanner(r)
	if !xyz.Scan() {
		return nil, NewError(ErrInvalidMolecule, "XYZReadFrom", "Ill formatted XYZ file: empty")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil || natoms < 0 {
		return nil, NewError(ErrInvalidMolecule, "XYZReadFrom", "Ill formatted XYZ file: bad atom count %q", xyz.Text())
	}
	xyz.Scan() //We dont care about this line
	ats := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, NewError(ErrInvalidMolecule, "XYZReadFrom", "expected %d atoms, found %d", natoms, i)
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, NewError(ErrInvalidMolecule, "XYZReadFrom", "Line number %d ill formed", i+3)
		}
		ats[i], err = NewAtom(fields[0])
		if err != nil {
			return nil, errDecorate(err, "XYZReadFrom")
		}
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, NewError(ErrInvalidMolecule, "XYZReadFrom", "Line number %d: %s", i+3, err.Error())
			}
		}
	}
	if err := xyz.Err(); err != nil {
		return nil, err
	}
	var mcoords *v3.Matrix //nil for an empty file
	if natoms > 0 {
		mcoords, _ = v3.NewMatrix(coords)
	}
	return NewMolecule(ats, mcoords, nil)
}

//XYZWrite writes the molecule mol in an XYZ file with name xyzname which will
//be created for that. If the file exist it will be overwriten.
func XYZWrite(xyzname string, mol *Molecule, comment string) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := XYZWriteTo(out, mol, comment); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	return out.Close()
}

//XYZWriteTo writes mol as one xyz frame to w. comment goes in the
//second line and must not contain newlines.
func XYZWriteTo(w io.Writer, mol *Molecule, comment string) error {
	if mol.Coords == nil || mol.Coords.NVecs() != mol.Len() {
		return NewError(ErrInvalidMolecule, "XYZWriteTo", "no coordinates or wrong number of coordinates")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-4d\n", mol.Len())
	fmt.Fprintf(bw, "%s\n", strings.ReplaceAll(comment, "\n", " "))
	for i, a := range mol.Atoms {
		_, err := fmt.Fprintf(bw, "%-2s  %12.6f %12.6f %12.6f\n", a.Symbol, mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
