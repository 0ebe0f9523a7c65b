/*
 * gocoords.go, part of gochem.
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

package v3

import (
	"fmt"
	"math"
	"strings"
)

//AddVec adds the vector vec to each vector of A and puts the result in F.
func (F *Matrix) AddVec(A, vec *Matrix) {
	F.addOrSubVec(A, vec, 1)
}

//SubVec subtracts the vector vec from each vector of A and puts the result in F.
func (F *Matrix) SubVec(A, vec *Matrix) {
	F.addOrSubVec(A, vec, -1)
}

func (F *Matrix) addOrSubVec(A, vec *Matrix, sign float64) {
	n := A.NVecs()
	if vec.NVecs() != 1 || F.NVecs() != n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+sign*vec.At(0, j))
		}
	}
}

//Cross puts the cross product of the single vectors a and b in F.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	x := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	y := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	z := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, x)
	F.Set(0, 1, y)
	F.Set(0, 2, z)
}

//Unit puts in F the unit vector in the direction of the single vector A.
//A zero vector gives a zero vector.
func (F *Matrix) Unit(A *Matrix) {
	norm := A.Norm(2)
	if norm == 0 {
		F.Zero()
		return
	}
	F.Scale(1/norm, A)
}

//SomeVecs puts in F the vectors of A with indexes in clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.SetRow(key, A.RawRowView(val))
	}
}

//SetVecs sets the vectors of F with indexes in clist to the vectors of A,
//in order.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.SetRow(val, A.RawRowView(key))
	}
}

//MaxDisplacement returns the largest distance between corresponding vectors of F and A.
func (F *Matrix) MaxDisplacement(A *Matrix) float64 {
	if F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	max := 0.0
	for i := 0; i < F.NVecs(); i++ {
		dx := F.At(i, 0) - A.At(i, 0)
		dy := F.At(i, 1) - A.At(i, 1)
		dz := F.At(i, 2) - A.At(i, 2)
		max = math.Max(max, math.Sqrt(dx*dx+dy*dy+dz*dz))
	}
	return max
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < F.NVecs(); i++ {
		fmt.Fprintf(&b, "%10.5f %10.5f %10.5f\n", F.At(i, 0), F.At(i, 1), F.At(i, 2))
	}
	return b.String()
}
