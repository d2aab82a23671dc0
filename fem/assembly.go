// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"sort"

	"github.com/nakanishi-coder/gofea/ele"
	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// SetElems allocates all elements and sets their equations. Derived element data (length and
// local axes) are recomputed and stored in the model
func (o *Engine) SetElems() (err error) {
	o.Elems = make([]ele.Element, len(o.Model.Elements))
	for i, e := range o.Model.Elements {

		// get element info
		info, err := ele.GetInfo(e)
		if err != nil {
			return chk.Err("get element information failed:\n%v", err)
		}

		// allocate element
		elem, err := ele.New(e, o.Index)
		if err != nil {
			return err
		}

		// equations: eq = 6 × index of node + dof
		eqs := make([][]int, len(e.NodeIds))
		for m, nid := range e.NodeIds {
			idx, err := o.Index.NodeIdx(nid)
			if err != nil {
				return err
			}
			if info.Ndof(m) != inp.NdofNode {
				return chk.Err("element %d: node %d must have %d DOFs; got %d", e.Id, nid, inp.NdofNode, info.Ndof(m))
			}
			eqs[m] = make([]int, info.Ndof(m))
			for k := range eqs[m] {
				eqs[m][k] = idx*inp.NdofNode + k
			}
		}
		if err = elem.SetEqs(eqs); err != nil {
			return err
		}
		o.Elems[i] = elem
	}
	return
}

// AssembleStiffness allocates all elements and assembles the global stiffness matrix [ny][ny]
func (o *Engine) AssembleStiffness() (K *mat.Dense, err error) {
	if o.Ny == 0 {
		return nil, chk.Err("model has no nodes")
	}
	if err = o.SetElems(); err != nil {
		return nil, err
	}
	K = mat.NewDense(o.Ny, o.Ny, nil)
	for _, elem := range o.Elems {
		if err = elem.AddToKb(K); err != nil {
			return nil, err
		}
	}
	return
}

// AssembleForces assembles the global force vector [ny]. Loads on the same node are summed
func (o *Engine) AssembleForces() (F []float64, err error) {
	F = make([]float64, o.Ny)
	for _, l := range o.Model.Loads {
		idx, err := o.Index.NodeIdx(l.NodeId)
		if err != nil {
			return nil, fmt.Errorf("load %d: %w", l.Id, err)
		}
		eq := idx * inp.NdofNode
		F[eq+0] += l.Force.X
		F[eq+1] += l.Force.Y
		F[eq+2] += l.Force.Z
		F[eq+3] += l.Moment.X
		F[eq+4] += l.Moment.Y
		F[eq+5] += l.Moment.Z
	}
	return
}

// postprocess computes nodal results, element results and reactions from the full solution U
func (o *Engine) postprocess(K *mat.Dense, U []float64, red *Reduced) (res *Result, err error) {

	// nodes
	nn := len(o.Model.Nodes)
	res = &Result{
		NodeIds:         make([]int, nn),
		Displacements:   make([]inp.Vec3, nn),
		Rotations:       make([]inp.Vec3, nn),
		Reactions:       make([]inp.Vec3, nn),
		ReactionMoments: make([]inp.Vec3, nn),
		NumDofs:         o.Ny,
		NumFree:         red.Nfree(),
		FixedDofs:       append([]int{}, red.Fixed...),
		U:               U,
	}
	sort.Ints(res.FixedDofs)
	uvec := mat.NewVecDense(o.Ny, U)
	for i, n := range o.Model.Nodes {
		eq := i * inp.NdofNode
		res.NodeIds[i] = n.Id
		res.Displacements[i] = inp.Vec3{X: U[eq], Y: U[eq+1], Z: U[eq+2]}
		res.Rotations[i] = inp.Vec3{X: U[eq+3], Y: U[eq+4], Z: U[eq+5]}

		// reactions: R = K・U at fixed nodes
		if n.IsFixed() {
			var r [inp.NdofNode]float64
			for k := 0; k < inp.NdofNode; k++ {
				r[k] = mat.Dot(K.RowView(eq+k), uvec)
			}
			res.Reactions[i] = inp.Vec3{X: r[0], Y: r[1], Z: r[2]}
			res.ReactionMoments[i] = inp.Vec3{X: r[3], Y: r[4], Z: r[5]}
		}
	}

	// elements
	ne := len(o.Elems)
	res.ElementIds = make([]int, ne)
	res.AxialForces = make([]float64, ne)
	res.Moments = make([]Moment, ne)
	res.Stresses = make([]float64, ne)
	res.Strains = make([]float64, ne)
	res.EndForces = make([][]float64, ne)
	for i, elem := range o.Elems {
		ss, err := elem.Recover(U)
		if err != nil {
			return nil, err
		}
		res.ElementIds[i] = elem.Id()
		res.AxialForces[i] = ss.AxialForce
		res.Moments[i] = Moment{My: ss.BendingY, Mz: ss.BendingZ}
		res.Stresses[i] = ss.Total
		res.Strains[i] = ss.AxialStrain
		res.EndForces[i] = ss.EndForces
	}
	return
}
