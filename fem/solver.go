// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// PivotTol is the tolerance on the pivots of the factorisation relative to max|K_ii|
// below which the reduced stiffness matrix is considered singular
const PivotTol = 1e-12

// LinSol solves the reduced system K・u = f
type LinSol interface {
	Name() string                                             // name of solver
	Solve(K *mat.Dense, f []float64) (u []float64, err error) // solves system; returns ErrSingular if K is singular
}

// linsolAllocators holds all available linear solvers
var linsolAllocators = make(map[string]func() LinSol)

// SetLinSol sets a new linear solver allocator
func SetLinSol(name string, alloc func() LinSol) {
	if _, ok := linsolAllocators[name]; ok {
		chk.Panic("cannot set linear solver %q because name exists already", name)
	}
	linsolAllocators[name] = alloc
}

// GetLinSol returns a new linear solver
func GetLinSol(name string) (LinSol, error) {
	if alloc, ok := linsolAllocators[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("cannot find linear solver named %q", name)
}

// register solvers
func init() {
	SetLinSol("lu", func() LinSol { return new(LinSolLU) })
	SetLinSol("cholesky", func() LinSol { return new(LinSolCholesky) })
	SetLinSol("inverse", func() LinSol { return new(LinSolInverse) })
}

// LinSolLU solves the system by means of a LU factorisation with partial pivoting
type LinSolLU struct {
	lu mat.LU
}

// Name returns the name of solver
func (o *LinSolLU) Name() string { return "lu" }

// Solve solves K・u = f
func (o *LinSolLU) Solve(K *mat.Dense, f []float64) (u []float64, err error) {
	n, err := checkSystem(K, f)
	if err != nil {
		return
	}
	if err = factorLU(&o.lu, K); err != nil {
		return
	}
	var x mat.VecDense
	if err = o.lu.SolveVecTo(&x, false, mat.NewVecDense(n, clone(f))); err != nil {
		return nil, conditionErr(err)
	}
	return x.RawVector().Data, nil
}

// LinSolCholesky solves the system by means of a Cholesky factorisation. K must be symmetric
// positive-definite
type LinSolCholesky struct {
	ch mat.Cholesky
}

// Name returns the name of solver
func (o *LinSolCholesky) Name() string { return "cholesky" }

// Solve solves K・u = f
func (o *LinSolCholesky) Solve(K *mat.Dense, f []float64) (u []float64, err error) {
	n, err := checkSystem(K, f)
	if err != nil {
		return
	}
	S := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			S.SetSym(i, j, 0.5*(K.At(i, j)+K.At(j, i)))
		}
	}
	if ok := o.ch.Factorize(S); !ok {
		return nil, ErrSingular
	}
	var U mat.TriDense
	o.ch.UTo(&U)
	tol := PivotTol * maxDiag(K)
	for i := 0; i < n; i++ {
		if uii := U.At(i, i); uii*uii < tol {
			return nil, ErrSingular
		}
	}
	var x mat.VecDense
	if err = o.ch.SolveVecTo(&x, mat.NewVecDense(n, clone(f))); err != nil {
		return nil, conditionErr(err)
	}
	return x.RawVector().Data, nil
}

// LinSolInverse solves the system by computing the inverse of K
type LinSolInverse struct {
	lu mat.LU
}

// Name returns the name of solver
func (o *LinSolInverse) Name() string { return "inverse" }

// Solve solves K・u = f
func (o *LinSolInverse) Solve(K *mat.Dense, f []float64) (u []float64, err error) {
	n, err := checkSystem(K, f)
	if err != nil {
		return
	}
	if err = factorLU(&o.lu, K); err != nil {
		return
	}
	var Ki mat.Dense
	if err = Ki.Inverse(K); err != nil {
		return nil, conditionErr(err)
	}
	x := mat.NewVecDense(n, nil)
	x.MulVec(&Ki, mat.NewVecDense(n, clone(f)))
	return x.RawVector().Data, nil
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// checkSystem checks dimensions of system
func checkSystem(K *mat.Dense, f []float64) (n int, err error) {
	if K == nil {
		return 0, ErrNotAssembled
	}
	r, c := K.Dims()
	if r != c || r != len(f) {
		return 0, chk.Err("system dimensions are incompatible: K is %d×%d and len(f) = %d", r, c, len(f))
	}
	return r, nil
}

// factorLU factorises K and checks the pivots
func factorLU(lu *mat.LU, K *mat.Dense) (err error) {
	lu.Factorize(K)
	var U mat.TriDense
	lu.UTo(&U)
	n, _ := K.Dims()
	tol := PivotTol * maxDiag(K)
	for i := 0; i < n; i++ {
		if math.Abs(U.At(i, i)) < tol {
			return ErrSingular
		}
	}
	return
}

// conditionErr converts gonum condition errors into ErrSingular
func conditionErr(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return ErrSingular
	}
	return err
}

// maxDiag returns max|K_ii|
func maxDiag(K *mat.Dense) (res float64) {
	n, _ := K.Dims()
	for i := 0; i < n; i++ {
		res = math.Max(res, math.Abs(K.At(i, i)))
	}
	return
}

// clone returns a copy of a slice
func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
