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

//Package relax puts together the pieces needed to relax a chem.Molecule with
//the UFF force field: topology, force field, frozen atoms and minimizer.
//
//Molecule relaxes a copy of a molecule in one call. A Session keeps the force
//field of a structure to relax it many times with a small budget, which is what
//an editor needs to relax a structure while atoms are being dragged. A Recorder
//keeps the energies of a run for plotting and can write its states to an stf
//trajectory.
package relax
