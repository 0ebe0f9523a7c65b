/*
 * vec.go, part of gochem.
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

//Distances below this are clamped, to avoid singular directions.
const minDistance = 0.01

//Norms below this are considered zero.
const appzero = 1e-8

//position returns the coordinates of atom i from the flat position buffer.
func position(pos []float64, i int) r3.Vec {
	return r3.Vec{X: pos[3*i], Y: pos[3*i+1], Z: pos[3*i+2]}
}

//accumulate adds g to the gradient of atom i.
func accumulate(grad []float64, i int, g r3.Vec) {
	grad[3*i] += g.X
	grad[3*i+1] += g.Y
	grad[3*i+2] += g.Z
}

//cosN returns cos(n phi) given x=cos(phi), as the Chebyshev polynomial T_n(x).
//It also returns d cos(n phi) / d cos(phi) = n U_{n-1}(x), which is finite for every phi.
func cosN(x float64, n int) (float64, float64) {
	if n == 0 {
		return 1, 0
	}
	tPrev, t := 1.0, x //T_0, T_1
	uPrev, u := 0.0, 1.0 //U_-1, U_0
	for k := 1; k < n; k++ {
		tPrev, t = t, 2*x*t-tPrev
		uPrev, u = u, 2*x*u-uPrev
	}
	return t, float64(n) * u
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

//cosineGradients returns the derivatives of cos(a,b) with respect to a and b.
func cosineGradients(a, b r3.Vec) (cos float64, da, db r3.Vec, ok bool) {
	na, nb := r3.Norm(a), r3.Norm(b)
	if na < appzero || nb < appzero {
		return 0, r3.Vec{}, r3.Vec{}, false
	}
	ua, ub := r3.Scale(1/na, a), r3.Scale(1/nb, b)
	cos = clamp(r3.Dot(ua, ub), -1, 1)
	da = r3.Scale(1/na, r3.Sub(ub, r3.Scale(cos, ua)))
	db = r3.Scale(1/nb, r3.Sub(ua, r3.Scale(cos, ub)))
	return cos, da, db, true
}
