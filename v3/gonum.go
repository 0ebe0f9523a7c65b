/*
 * gonum.go, part of gochem.
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

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a Dense with 3 columns in a Matrix. It panics
//if A doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The matrix uses data as its backing slice, it doesn't copy it.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d or zero", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
//vecs must be positive, as gonum doesn't allow empty matrices.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vectors (rows) in the matrix.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Len is the same as NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

//VecView returns a view of the ith vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from vector i and spanning r vectors.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

//Norm returns the norm of the matrix. For a single vector and n=2
//this is the euclidean length.
func (F *Matrix) Norm(n float64) float64 {
	return mat.Norm(F.Dense, n)
}

//Dot returns the dot product of two single vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrShape)
	}
	return F.At(0, 0)*B.At(0, 0) + F.At(0, 1)*B.At(0, 1) + F.At(0, 2)*B.At(0, 2)
}

//Raw returns the backing slice of F, which must be contiguous (i.e.
//not a view of some rows of a larger matrix). It panics otherwise.
func (F *Matrix) Raw() []float64 {
	raw := F.RawMatrix()
	if raw.Stride != 3 {
		panic(ErrNotContiguous)
	}
	return raw.Data[:raw.Rows*3]
}

//Flat returns a new slice with the coordinates of F, row after row.
func (F *Matrix) Flat() []float64 {
	n := F.NVecs()
	ret := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		ret = append(ret, F.At(i, 0), F.At(i, 1), F.At(i, 2))
	}
	return ret
}

//SetFlat copies the coordinates in data, row after row, into F.
func (F *Matrix) SetFlat(data []float64) {
	n := F.NVecs()
	if len(data) != 3*n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		F.SetRow(i, data[3*i:3*i+3])
	}
}

//Error is the error type of the v3 package.
//the same as chem.Error but avoid circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix   = PanicMsg("v3: A Matrix should have 3 columns")
	ErrNoCrossProduct = PanicMsg("v3: Invalid matrix for cross product")
	ErrShape          = PanicMsg("v3: Dimension mismatch")
	ErrNotContiguous  = PanicMsg("v3: Matrix data is not contiguous")
)
