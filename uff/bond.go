/*
 * bond.go, part of gochem.
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
	"gonum.org/v1/gonum/spatial/r3"
)

//BondParams is a precomputed harmonic bond stretch between atoms I and J.
type BondParams struct {
	I, J          int
	RestLength    float64 //A
	ForceConstant float64 //kcal/mol A^2
}

//bondDistance returns the clamped I-J distance and the unit vector from I to J.
//Coincident atoms get the X axis as direction, so the gradient still separates them.
func bondDistance(pos []float64, i, j int) (float64, r3.Vec) {
	d := r3.Sub(position(pos, j), position(pos, i))
	r := r3.Norm(d)
	u := r3.Vec{X: 1}
	if r > 0 {
		u = r3.Scale(1/r, d)
	}
	if r < minDistance {
		r = minDistance
	}
	return r, u
}

//BondEnergy returns 1/2 k (r-r0)^2 for the bond.
func BondEnergy(p *BondParams, pos []float64) float64 {
	r, _ := bondDistance(pos, p.I, p.J)
	dr := r - p.RestLength
	return 0.5 * p.ForceConstant * dr * dr
}

//BondEnergyGradient returns the bond energy, and adds its gradient to grad.
func BondEnergyGradient(p *BondParams, pos, grad []float64) float64 {
	r, u := bondDistance(pos, p.I, p.J)
	dr := r - p.RestLength
	g := r3.Scale(p.ForceConstant*dr, u)
	accumulate(grad, p.J, g)
	accumulate(grad, p.I, r3.Scale(-1, g))
	return 0.5 * p.ForceConstant * dr * dr
}
