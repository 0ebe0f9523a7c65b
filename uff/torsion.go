/*
 * torsion.go, part of gochem.
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

//TorsionParams is a precomputed torsion I-J-K-L around the J-K bond.
//The energy is V/2 (1 - cos(n phi0) cos(n phi)), with cos(n phi0) stored as CosTerm.
type TorsionParams struct {
	I, J, K, L int
	V          float64 //barrier, already divided among the torsions sharing the J-K bond
	N          int
	CosTerm    float64
}

//torsionGeometry returns the cosine of the dihedral and its derivatives with respect to
//the positions of the 4 atoms. ok is false if 3 consecutive atoms are collinear.
func torsionGeometry(p *TorsionParams, pos []float64) (cos float64, g [4]r3.Vec, ok bool) {
	pi, pj, pk, pl := position(pos, p.I), position(pos, p.J), position(pos, p.K), position(pos, p.L)
	r1 := r3.Sub(pi, pj)
	r2 := r3.Sub(pk, pj)
	r3v := r3.Sub(pj, pk)
	r4 := r3.Sub(pl, pk)
	t1 := r3.Cross(r1, r2)
	t2 := r3.Cross(r3v, r4)
	cos, dt1, dt2, ok := cosineGradients(t1, t2)
	if !ok {
		return cos, g, false
	}
	g[0] = r3.Cross(r2, dt1)
	g[3] = r3.Cross(dt2, r3v)
	g[1] = r3.Sub(r3.Cross(r4, dt2), r3.Add(r3.Cross(r2, dt1), r3.Cross(dt1, r1)))
	g[2] = r3.Sub(r3.Cross(dt1, r1), r3.Add(r3.Cross(r4, dt2), r3.Cross(dt2, r3v)))
	return cos, g, true
}

//TorsionEnergy returns the torsional energy.
func TorsionEnergy(p *TorsionParams, pos []float64) float64 {
	cos, _, _ := torsionGeometry(p, pos)
	cn, _ := cosN(cos, p.N)
	return 0.5 * p.V * (1 - p.CosTerm*cn)
}

//TorsionEnergyGradient returns the torsional energy, and adds its gradient to grad.
//If the dihedral is undefined, it is taken as 90 degrees and no gradient is added.
func TorsionEnergyGradient(p *TorsionParams, pos, grad []float64) float64 {
	cos, g, ok := torsionGeometry(p, pos)
	cn, dcn := cosN(cos, p.N)
	e := 0.5 * p.V * (1 - p.CosTerm*cn)
	if !ok {
		return e
	}
	de := -0.5 * p.V * p.CosTerm * dcn
	for n, at := range [4]int{p.I, p.J, p.K, p.L} {
		accumulate(grad, at, r3.Scale(de, g[n]))
	}
	return e
}
