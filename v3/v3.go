/*
 * v3.go, part of kinfp
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package v3 implements a Matrix type representing a row-major Nx3 matrix,
//used to represent the cartesian coordinates of sets of atoms. It is based
//on gonum's Dense type, restricted to 3 columns, plus the vector operations
//needed for pocket geometry (1x3 row vectors are just Nx3 matrices with N=1).
package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Matrix is a set of vectors in 3D space. The underlying implementation is
//a gonum mat.Dense with 3 columns.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewVecs returns a Matrix whose data is data. The number of vectors is
//len(data)/3, and it returns an error if len(data) is not divisible by 3.
func NewVecs(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l%cols != 0 {
		return nil, fmt.Errorf("kinfp/v3: input slice lenght %d not divisible by %d", l, cols)
	}
	r := l / cols
	return &Matrix{mat.NewDense(r, cols, data)}, nil
}

//Vec returns a 1x3 Matrix with the components x, y and z. It is a
//convenience for building single points/vectors.
func Vec(x, y, z float64) *Matrix {
	return &Matrix{mat.NewDense(1, 3, []float64{x, y, z})}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes to the view
//affect the original matrix. Panics if out of range.
func (F *Matrix) VecView(i int) *Matrix {
	if i >= F.NVecs() {
		panic("kinfp/v3: vector requested out of range")
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//Copy returns a fresh copy of the matrix.
func (F *Matrix) Copy() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

//Sub puts in the receiver the element-wise difference a-b. The three
//matrices must have the same number of vectors.
func (F *Matrix) Sub(a, b *Matrix) {
	F.Dense.Sub(a.Dense, b.Dense)
}

//Add puts in the receiver the element-wise sum a+b.
func (F *Matrix) Add(a, b *Matrix) {
	F.Dense.Add(a.Dense, b.Dense)
}

//Scale puts in the receiver the matrix a scaled by v.
func (F *Matrix) Scale(v float64, a *Matrix) {
	F.Dense.Scale(v, a.Dense)
}

//Dot returns the dot product between the first vector of the receiver
//and the first vector of b.
func (F *Matrix) Dot(b *Matrix) float64 {
	var d float64
	for i := 0; i < 3; i++ {
		d += F.At(0, i) * b.At(0, i)
	}
	return d
}

//Norm returns the Euclidean norm of the first vector of the receiver.
func (F *Matrix) Norm() float64 {
	return math.Sqrt(F.Dot(F))
}

//Unit puts in the receiver the first vector of a scaled to unit lenght.
//It panics if a is the zero vector.
func (F *Matrix) Unit(a *Matrix) {
	n := a.Norm()
	if n <= appzero {
		panic("kinfp/v3: attempted to normalize the zero vector")
	}
	F.Scale(1/n, a)
}

//Cross puts in the receiver the cross product of the first vectors of a and b.
func (F *Matrix) Cross(a, b *Matrix) {
	ax, ay, az := a.At(0, 0), a.At(0, 1), a.At(0, 2)
	bx, by, bz := b.At(0, 0), b.At(0, 1), b.At(0, 2)
	F.Set(0, 0, ay*bz-az*by)
	F.Set(0, 1, az*bx-ax*bz)
	F.Set(0, 2, ax*by-ay*bx)
}

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors!
func Angle(v1, v2 *Matrix) float64 {
	normproduct := v1.Norm() * v2.Norm()
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//Dist returns the Euclidean distance between the first vectors of a and b.
func Dist(a, b *Matrix) float64 {
	var d float64
	for i := 0; i < 3; i++ {
		t := a.At(0, i) - b.At(0, i)
		d += t * t
	}
	return math.Sqrt(d)
}

//Mean returns a new 1x3 vector with the unweighted mean of the given points,
//or nil if no points are given. Nil points are skipped.
func Mean(points []*Matrix) *Matrix {
	m := Zeros(1)
	n := 0
	for _, v := range points {
		if v == nil {
			continue
		}
		m.Add(m, v)
		n++
	}
	if n == 0 {
		return nil
	}
	m.Scale(1/float64(n), m)
	return m
}

//RotatedAbout returns v rotated by angle radians about the axis axis
//(Rodrigues rotation). The axis needs not be normalized. The rotation
//follows the right-hand rule.
func RotatedAbout(v, axis *Matrix, angle float64) *Matrix {
	k := Zeros(1)
	k.Unit(axis)
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	kxv := Zeros(1)
	kxv.Cross(k, v)
	kdotv := k.Dot(v)
	r := Zeros(1)
	t := Zeros(1)
	t.Scale(cos, v)
	r.Add(r, t)
	t.Scale(sin, kxv)
	r.Add(r, t)
	t.Scale(kdotv*(1-cos), k)
	r.Add(r, t)
	return r
}
