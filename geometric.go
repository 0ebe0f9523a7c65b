/*
 * geometric.go, part of gochem.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"math"

	v3 "github.com/atomCAD/atomCAD-sub000/v3"
	"gonum.org/v1/gonum/mat"
)

//Distance returns the distance between the single vectors a and b.
func Distance(a, b *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.Sub(a, b)
	return d.Norm(2)
}

//Angle takes 2 vectors and calculate the angle in radians between them
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	return math.Acos(argument)
}

//BondAngle returns the angle in radians a-b-c, with b as the vertex.
func BondAngle(a, b, c *v3.Matrix) float64 {
	ba := v3.Zeros(1)
	bc := v3.Zeros(1)
	ba.Sub(a, b)
	bc.Sub(c, b)
	return Angle(ba, bc)
}

//Dihedral calculates the dihedral between the points a, b, c, d, where the first plane
//is defined by abc and the second by bcd. The result is in (-pi, pi].
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	for _, point := range []*v3.Matrix{a, b, c, d} {
		if point == nil {
			panic(PanicMsg("Dihedral: nil point"))
		}
	}
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	n1 := v3.Zeros(1)
	n2 := v3.Zeros(1)
	n1.Cross(bma, cmb)
	n2.Cross(cmb, dmc)
	m := v3.Zeros(1)
	m.Cross(n1, cmb)
	x := n1.Dot(n2)
	y := m.Dot(n2) / cmb.Norm(2)
	return -math.Atan2(y, x)
}

//RotateAbout rotates the coordinates in coordsorig around the axis defined by ax1 and ax2
//by angle radians, and returns the result in a new matrix. The original is not touched.
func RotateAbout(coordsorig, ax1, ax2 *v3.Matrix, angle float64) (*v3.Matrix, error) {
	axis := v3.Zeros(1)
	axis.Sub(ax2, ax1)
	if axis.Norm(2) == 0 {
		return nil, NewError(ErrDegenerateGeometry, "RotateAbout", "the two points defining the axis coincide")
	}
	axis.Unit(axis)
	R := RotationMatrix(axis.At(0, 0), axis.At(0, 1), axis.At(0, 2), angle)
	coords := v3.Zeros(coordsorig.NVecs())
	coords.SubVec(coordsorig, ax1)
	//row vectors, so we multiply by the transpose
	rotated := v3.Zeros(coords.NVecs())
	rotated.Mul(coords, R.T())
	rotated.AddVec(rotated, ax1)
	return rotated, nil
}

//RotationMatrix returns the 3x3 matrix for a rotation of angle radians
//around the unit vector (x, y, z), using the Rodrigues formula.
func RotationMatrix(x, y, z, angle float64) *mat.Dense {
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	return mat.NewDense(3, 3, []float64{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	})
}

//Translate adds the vector t to every point in coords.
func Translate(coords, t *v3.Matrix) {
	coords.AddVec(coords, t)
}
