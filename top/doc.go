/*
 * doc.go, part of gochem.
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

/*
Package top builds the interaction lists (the force-field "topology", not to be
confused with the bond graph) of a molecule: bonds, angles, torsions, inversions
and nonbonded pairs. The lists depend only on connectivity, never on geometry, and
are built once per structure.

Interactions refer to atoms by their index in the molecule.
*/
package top
