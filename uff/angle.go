/*
 * angle.go, part of gochem.
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

//Coordination orders of the angle bend term.
const (
	General      = 0 //three-term Fourier series around Theta0
	Linear       = 1
	Bent         = 2
	Trigonal     = 3
	SquarePlanar = 4
)

//Below 30 degrees the angle term adds a steep penalty.
const penaltySteepness = 20.0

var penaltyAngle = math.Acos(angleCorrectionThreshold)

//AngleParams is a precomputed angle bend I-J-K, with J as the vertex.
//For the General order, the energy is K(C0 + C1 cos t + C2 cos 2t).
//For the others it is K/n^2 (1 - cos(n t)), with the sign of the cosine
//reversed for the linear case, so the minimum lies at 180 degrees.
type AngleParams struct {
	I, J, K       int
	ForceConstant float64
	Order         int
	C0, C1, C2    float64
}

//NewAngleParams returns the parameters for an angle with natural value theta0 (radians),
//force constant k and the given coordination order. If a general angle has a natural
//value too close to 180 degrees for the Fourier expansion, it is treated as linear.
func NewAngleParams(i, j, k int, theta0, fc float64, order int) *AngleParams {
	p := &AngleParams{I: i, J: j, K: k, ForceConstant: fc, Order: order}
	if order != General {
		return p
	}
	sin0 := math.Sin(theta0)
	cos0 := math.Cos(theta0)
	if sin0*sin0 < appzero {
		p.Order = Linear
		return p
	}
	p.C2 = 1 / (4 * sin0 * sin0)
	p.C1 = -4 * p.C2 * cos0
	p.C0 = p.C2 * (2*cos0*cos0 + 1)
	return p
}

//angleTerms returns the energy and dE/dcos(theta) for the given cosine.
func (p *AngleParams) angleTerms(cos float64) (float64, float64) {
	var e, de float64
	switch p.Order {
	case General:
		c2, dc2 := cosN(cos, 2)
		e = p.ForceConstant * (p.C0 + p.C1*cos + p.C2*c2)
		de = p.ForceConstant * (p.C1 + p.C2*dc2)
	case Linear:
		e = p.ForceConstant * (1 + cos)
		de = p.ForceConstant
	default:
		n := float64(p.Order)
		cn, dcn := cosN(cos, p.Order)
		e = p.ForceConstant / (n * n) * (1 - cn)
		de = -p.ForceConstant / (n * n) * dcn
	}
	if cos > angleCorrectionThreshold {
		theta := math.Acos(cos)
		sin := math.Max(math.Sin(theta), appzero)
		u := theta - penaltyAngle
		ex := math.Exp(-penaltySteepness * u)
		e += ex - 1 + penaltySteepness*u
		dEdTheta := penaltySteepness * (1 - ex)
		de += -dEdTheta / sin
	}
	return e, de
}

//AngleEnergy returns the energy of the angle bend.
func AngleEnergy(p *AngleParams, pos []float64) float64 {
	vj := position(pos, p.J)
	a := r3.Sub(position(pos, p.I), vj)
	b := r3.Sub(position(pos, p.K), vj)
	cos, _, _, _ := cosineGradients(a, b)
	e, _ := p.angleTerms(cos)
	return e
}

//AngleEnergyGradient returns the energy of the angle bend, and adds its gradient to grad.
//When one of the arms has zero length the angle is undefined. The energy is then
//the one at 90 degrees, and no gradient is added.
func AngleEnergyGradient(p *AngleParams, pos, grad []float64) float64 {
	vj := position(pos, p.J)
	a := r3.Sub(position(pos, p.I), vj)
	b := r3.Sub(position(pos, p.K), vj)
	cos, da, db, ok := cosineGradients(a, b)
	e, de := p.angleTerms(cos)
	if !ok {
		return e
	}
	gi := r3.Scale(de, da)
	gk := r3.Scale(de, db)
	accumulate(grad, p.I, gi)
	accumulate(grad, p.K, gk)
	accumulate(grad, p.J, r3.Scale(-1, r3.Add(gi, gk)))
	return e
}
