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

//Package minimize finds local minima of smooth functions of atomic coordinates,
//such as the energy of a uff.ForceField, with the L-BFGS method.
//
//Positions are flat buffers (x0,y0,z0,x1,...). Atoms can be frozen, in which
//case their coordinates are never changed. The energy of the accepted steps
//never increases, so a run that stops early still returns a structure at
//least as good as the starting one. A run can be watched step by step with
//an Observer.
package minimize
