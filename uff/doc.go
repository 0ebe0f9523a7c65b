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

//Package uff implements the Universal Force Field (Rappé et al., JACS 114, 10024, 1992)
//for energy minimization. It contains the parameter table, an atom typer that works
//only from connectivity, the five energy terms (bond stretch, angle bend, torsion,
//inversion and van der Waals), each with an analytical gradient, and the ForceField,
//which precomputes every interaction of a topology once and then evaluates energies
//and gradients over flat position buffers (x0,y0,z0,x1,...).
package uff
