/*
 * doc.go, part of gochem.
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

/*Package chem is the main package of this library. It provides the atom, bond and molecule
structures that the force field and the minimizer consume, facilities for reading and writing
XYZ files, a simple distance-based bond assignment and some geometric helpers.


	**Capabilities**


    Holds a structure as atoms (atomic number and symbol), bonds with an integer
	bond order code, and an N x 3 coordinate matrix (see the v3 package).

    Reads/writes XYZ files.

    Assigns single bonds from interatomic distances and covalent radii, for
	structures that come without a bond list.

    Measures distances, angles and dihedrals, and rotates sets of coordinates
	about an arbitrary axis.

The UFF force field lives in the uff package, the interaction lists it uses are
built by the top package, and the L-BFGS minimizer is in the minimize package. The relax
package puts everything together.

Errors returned by this module are of type *CError. They wrap one of the kinds
ErrUnsupportedElement, ErrInvalidFrozenSet, ErrInvalidMolecule, ErrDegenerateGeometry
or ErrNonConvergence, so they can be classified with errors.Is.

Coordinates are kept in a v3.Matrix, where each row is one point in space. The row-major
backing slice of a matrix obtained from v3.Zeros or v3.NewMatrix is the flat 3N
position buffer used by the force field.*/
package chem
