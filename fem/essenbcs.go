// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Reduced holds the system obtained by removing the fixed degrees of freedom.
//  The global system is partitioned according to free (f) and essential/fixed (e) equations:
//      _           _
//     |  Kff  Kfe  | / uf \   / Ff \
//     |            | |    | = |    |
//     |_ Kef  Kee _| \ ue /   \ Fe /
//
//  Fixed displacements are zero (ue = 0), thus:  Kff・uf = Ff
type Reduced struct {
	Ny    int        // total number of equations
	Free  []int      // free equations (sorted)
	Fixed []int      // fixed equations (sorted)
	K     *mat.Dense // [nfree][nfree] Kff; nil if there are no free equations
	F     []float64  // [nfree] Ff
	Eq2r  []int      // [ny] equation => position in reduced system; -1 if fixed
}

// Nfree returns the number of free equations
func (o *Reduced) Nfree() int { return len(o.Free) }

// Expand returns the full vector with zeros at fixed equations
func (o *Reduced) Expand(uf []float64) (u []float64) {
	u = make([]float64, o.Ny)
	for r, eq := range o.Free {
		if r < len(uf) {
			u[eq] = uf[r]
		}
	}
	return
}

// ApplyBoundaryConditions removes the rows and columns of fixed degrees of freedom from the
// assembled stiffness matrix K and force vector F
func (o *Engine) ApplyBoundaryConditions(K *mat.Dense, F []float64) (red *Reduced, err error) {

	// check
	if K == nil || F == nil {
		return nil, ErrNotAssembled
	}
	ny := len(o.Model.Nodes) * inp.NdofNode
	if r, c := K.Dims(); r != ny || c != ny || len(F) != ny {
		return nil, chk.Err("K (%d×%d) and F (%d) are incompatible with %d degrees of freedom", r, c, len(F), ny)
	}

	// equations
	red = &Reduced{Ny: ny, Eq2r: make([]int, ny)}
	for i, n := range o.Model.Nodes {
		for k, fixed := range n.FixedDOF.Flags() {
			eq := i*inp.NdofNode + k
			if fixed {
				red.Fixed = append(red.Fixed, eq)
				red.Eq2r[eq] = -1
				continue
			}
			red.Eq2r[eq] = len(red.Free)
			red.Free = append(red.Free, eq)
		}
	}

	// reduced system
	nf := len(red.Free)
	red.F = make([]float64, nf)
	if nf == 0 {
		return
	}
	red.K = mat.NewDense(nf, nf, nil)
	for r, I := range red.Free {
		red.F[r] = F[I]
		for c, J := range red.Free {
			red.K.Set(r, c, K.At(I, J))
		}
	}
	return
}
