/*
 * inversion.go, part of gochem.
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

//InversionParams is a precomputed out-of-plane term with J as the center.
//The Wilson angle w is the angle between the J-L bond and the I-J-K plane.
//The energy is K(C0 + C1 cos w + C2 cos 2w).
type InversionParams struct {
	I, J, K, L    int
	ForceConstant float64
	C0, C1, C2    float64
}

//inversionGeometry returns sin w, the sine of the Wilson angle, and its
//derivatives with respect to the positions of I, K and L. The derivative
//for J is minus their sum.
func inversionGeometry(p *InversionParams, pos []float64) (s float64, gi, gk, gl r3.Vec, ok bool) {
	pj := position(pos, p.J)
	a := r3.Sub(position(pos, p.I), pj)
	c := r3.Sub(position(pos, p.K), pj)
	l := r3.Sub(position(pos, p.L), pj)
	m := r3.Cross(a, c)
	nm, nl := r3.Norm(m), r3.Norm(l)
	if nm < appzero || nl < appzero {
		return 0, gi, gk, gl, false
	}
	n := r3.Scale(1/nm, m)
	ul := r3.Scale(1/nl, l)
	s = clamp(r3.Dot(n, ul), -1, 1)
	gl = r3.Scale(1/nl, r3.Sub(n, r3.Scale(s, ul)))
	w := r3.Scale(1/nm, r3.Sub(ul, r3.Scale(s, n)))
	gi = r3.Cross(c, w)
	gk = r3.Cross(w, a)
	return s, gi, gk, gl, true
}

//energy and dE/d(sin w).
func (p *InversionParams) inversionTerms(s float64) (float64, float64) {
	cosW := math.Sqrt(math.Max(1-s*s, 0))
	cos2W := 1 - 2*s*s
	e := p.ForceConstant * (p.C0 + p.C1*cosW + p.C2*cos2W)
	de := p.ForceConstant * (-p.C1*s/math.Max(cosW, appzero) - 4*p.C2*s)
	return e, de
}

//InversionEnergy returns the inversion energy of one permutation.
func InversionEnergy(p *InversionParams, pos []float64) float64 {
	s, _, _, _, _ := inversionGeometry(p, pos)
	e, _ := p.inversionTerms(s)
	return e
}

//InversionEnergyGradient returns the inversion energy of one permutation, and adds its
//gradient to grad. A center with collinear neighbors is taken as planar, with no gradient.
func InversionEnergyGradient(p *InversionParams, pos, grad []float64) float64 {
	s, gi, gk, gl, ok := inversionGeometry(p, pos)
	e, de := p.inversionTerms(s)
	if !ok {
		return e
	}
	gi, gk, gl = r3.Scale(de, gi), r3.Scale(de, gk), r3.Scale(de, gl)
	accumulate(grad, p.I, gi)
	accumulate(grad, p.K, gk)
	accumulate(grad, p.L, gl)
	accumulate(grad, p.J, r3.Scale(-1, r3.Add(gi, r3.Add(gk, gl))))
	return e
}
