// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements functions to check matrices and results of frame analyses
package tests

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// RelErr returns the relative error |a - b| / |b|; or |a - b| if b is zero
func RelErr(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a - b)
	}
	return math.Abs(a-b) / math.Abs(b)
}

// CheckRel compares val and correct using a relative tolerance
func CheckRel(tst *testing.T, msg string, tol, val, correct float64) {
	err := RelErr(val, correct)
	if chk.Verbose {
		io.Pf("%s = %v (correct = %v) relerr = %v\n", msg, val, correct, err)
	}
	if math.IsNaN(val) || err > tol {
		tst.Errorf("%s failed: %v != %v; relative error = %v > %v", msg, val, correct, err, tol)
	}
}

// MaxAbs returns the maximum absolute value in a matrix
func MaxAbs(a [][]float64) (res float64) {
	for i := range a {
		for j := range a[i] {
			res = math.Max(res, math.Abs(a[i][j]))
		}
	}
	return
}

// CheckSymmetric checks that a square matrix is symmetric. tol is relative to the largest component
func CheckSymmetric(tst *testing.T, msg string, tol float64, a [][]float64) {
	ref := MaxAbs(a)
	if ref == 0 {
		ref = 1
	}
	for i := range a {
		if len(a[i]) != len(a) {
			tst.Errorf("%s is not square: row %d has %d columns; nrows = %d", msg, i, len(a[i]), len(a))
			return
		}
		for j := i + 1; j < len(a); j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol*ref {
				tst.Errorf("%s is not symmetric: %s[%d][%d]=%v != %s[%d][%d]=%v", msg, msg, i, j, a[i][j], msg, j, i, a[j][i])
				return
			}
		}
	}
	if chk.Verbose {
		io.Pf("%s is symmetric\n", msg)
	}
}

// CheckNull checks that a * u is zero. tol is relative to max|a| max|u|
func CheckNull(tst *testing.T, msg string, tol float64, a [][]float64, u []float64) {
	umax := 0.0
	for _, v := range u {
		umax = math.Max(umax, math.Abs(v))
	}
	ref := MaxAbs(a) * umax
	if ref == 0 {
		ref = 1
	}
	for i := range a {
		s := 0.0
		for j := range a[i] {
			s += a[i][j] * u[j]
		}
		if math.Abs(s) > tol*ref {
			tst.Errorf("%s: (a u)[%d] = %v is not zero", msg, i, s)
			return
		}
	}
	if chk.Verbose {
		io.Pf("%s: a u = 0\n", msg)
	}
}

// Slices converts a gonum matrix into a [][]float64 matrix
func Slices(m mat.Matrix) (a [][]float64) {
	r, c := m.Dims()
	a = utl.Alloc(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a[i][j] = m.At(i, j)
		}
	}
	return
}
