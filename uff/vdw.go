/*
 * vdw.go, part of gochem.
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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//VdwParams is a precomputed Lennard-Jones 12-6 pair.
type VdwParams struct {
	I, J     int
	Distance float64 //x, minimum of the potential (A)
	Depth    float64 //D, well depth (kcal/mol)
}

func vdwTerms(p *VdwParams, r float64) (e, dEdr float64) {
	q := p.Distance / r
	q6 := math.Pow(q, 6)
	q12 := q6 * q6
	e = p.Depth * (q12 - 2*q6)
	dEdr = 12 * p.Depth / r * (q6 - q12)
	return e, dEdr
}

//VdwEnergy returns D[(x/r)^12 - 2(x/r)^6] for the pair.
func VdwEnergy(p *VdwParams, pos []float64) float64 {
	r, _ := bondDistance(pos, p.I, p.J)
	e, _ := vdwTerms(p, r)
	return e
}

//VdwEnergyGradient returns the energy of the pair, and adds its gradient to grad.
func VdwEnergyGradient(p *VdwParams, pos, grad []float64) float64 {
	r, u := bondDistance(pos, p.I, p.J)
	e, dEdr := vdwTerms(p, r)
	g := r3.Scale(dEdr, u)
	accumulate(grad, p.J, g)
	accumulate(grad, p.I, r3.Scale(-1, g))
	return e
}
