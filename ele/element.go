// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements frame finite elements
package ele

import "gonum.org/v1/gonum/mat"

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() int                        // returns the element Id
	SetEqs(eqs [][]int) (err error) // set equations [nnode][ndof]

	// assembly
	AddToKb(Kb *mat.Dense) (err error) // adds element K to global stiffness matrix Kb

	// post-processing
	Recover(Y []float64) (res *StressStrain, err error) // recovers strains, stresses and end forces from global displacements Y
}
