// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"fmt"
	"math"

	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// errors
var (
	ErrZeroLength = chk.Err("element has zero length")
	ErrDispLength = chk.Err("displacement vector of beam must have 12 components")
)

// tolerances
const (
	MinLength  = 1e-12 // elements shorter than this are degenerate
	AxisTol    = 1e-6  // tolerance to detect elements parallel to the global y- or z-axes
	NuBeam     = 12    // number of unknowns of a beam: 2 nodes × 6 DOFs
	NdofBeam   = 6     // number of DOFs per node
	NnodesBeam = 2     // number of nodes of a beam
)

// Beam represents a 3D structural beam element (Euler-Bernoulli, linear elastic)
//
//                       ,o--------o    ,x
//                     ,' |     ,' |  ,'
//       y           ,'       ,'   |,'
//        ^        ,'       ,'    ,|
//        |      ,'       ,'    ,  |
//        |    ,'       ,'    ,    |
//        |  ,'       ,'  | ,      |
//        |,'       ,'   (1) - - - o
//        o--------o    ,        ,'       Props:          Nodes:
//        |        |  ,        ,'          E, ν, A         0, 1
//        |        |,        ,'            Iy, Iz, J
//        |       ,|       ,'
//        |     ,  |     ,'               DOFs per node:
//        |   ,    |   ,'                  ux, uy, uz, rx, ry, rz
//        | ,      | ,'
//       (0)-------o' --------> z
//
//  Local DOF order per node: [axial, shear-y, shear-z, torsion, bend-y, bend-z]
type Beam struct {

	// basic data
	Elem *inp.Element // the element data
	X    [2]inp.Vec3  // nodal coordinates
	Nu   int          // total number of unknowns

	// parameters and properties
	Mat *inp.Material // material: E and ν
	Sec *inp.Section  // cross section: A, Iy, Iz and J
	L   float64       // (derived) length of beam

	// unit vectors aligned with beam element
	e0 inp.Vec3 // unit vector aligned with local x-axis
	e1 inp.Vec3 // unit vector aligned with local y-axis
	e2 inp.Vec3 // unit vector aligned with local z-axis

	// matrices
	T  *mat.Dense // global-to-local transformation matrix [nu][nu]
	Kl *mat.Dense // local K matrix
	K  *mat.Dense // global K matrix

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad
	ue []float64 // global displacements of element
}

// register element
func init() {

	// information allocator
	name := "beam"
	SetInfoFunc(name, func(e *inp.Element) *Info {
		var info Info
		info.Dofs = make([][]string, NnodesBeam)
		for m := 0; m < NnodesBeam; m++ {
			info.Dofs[m] = inp.DofKeys
		}
		return &info
	})

	// element allocator
	SetAllocator(name, func(e *inp.Element, n1, n2 *inp.Node, mat *inp.Material, sec *inp.Section) (Element, error) {
		return NewBeam(e, n1, n2, mat, sec)
	})
}

// NewBeam allocates a new beam between nodes n1 and n2. It computes the length and local axes
// and stores them in e as well
func NewBeam(e *inp.Element, n1, n2 *inp.Node, mt *inp.Material, sec *inp.Section) (o *Beam, err error) {
	o = new(Beam)
	o.Elem = e
	o.X = [2]inp.Vec3{n1.Position, n2.Position}
	o.Nu = NuBeam
	o.Mat = mt
	o.Sec = sec
	o.T = mat.NewDense(o.Nu, o.Nu, nil)
	o.Kl = mat.NewDense(o.Nu, o.Nu, nil)
	o.K = mat.NewDense(o.Nu, o.Nu, nil)
	o.ue = make([]float64, o.Nu)
	if err = o.Recompute(); err != nil {
		return nil, err
	}
	return
}

// Id returns the element Id
func (o *Beam) Id() int { return o.Elem.Id }

// Length returns the length of the beam
func (o *Beam) Length() float64 { return o.L }

// Axis returns the local triad
func (o *Beam) Axis() inp.Axes { return inp.Axes{X: o.e0, Y: o.e1, Z: o.e2} }

// LocalStiffness returns the stiffness matrix in the local system [12][12]
func (o *Beam) LocalStiffness() *mat.Dense { return o.Kl }

// Transformation returns the global-to-local transformation matrix [12][12]
func (o *Beam) Transformation() *mat.Dense { return o.T }

// GlobalStiffness returns the stiffness matrix in the global system [12][12]
func (o *Beam) GlobalStiffness() *mat.Dense { return o.K }

// SetEqs set equations [2][6]. Format of eqs == format of info.Dofs
func (o *Beam) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != NnodesBeam {
		return chk.Err("beam %d: equations must be given for %d nodes; got %d", o.Id(), NnodesBeam, len(eqs))
	}
	o.Umap = make([]int, o.Nu)
	for m := 0; m < NnodesBeam; m++ {
		if len(eqs[m]) != NdofBeam {
			return chk.Err("beam %d: node %d must have %d equations; got %d", o.Id(), m, NdofBeam, len(eqs[m]))
		}
		for i := 0; i < NdofBeam; i++ {
			r := i + m*NdofBeam
			o.Umap[r] = eqs[m][i]
		}
	}
	return
}

// AddToKb adds element K to global stiffness matrix Kb
func (o *Beam) AddToKb(Kb *mat.Dense) (err error) {
	if o.Umap == nil {
		return chk.Err("beam %d: equations are not set", o.Id())
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Set(I, J, Kb.At(I, J)+o.K.At(i, j))
		}
	}
	return
}

// Recover computes strains, stresses and end forces from the global displacement vector Y
func (o *Beam) Recover(Y []float64) (res *StressStrain, err error) {
	for i, I := range o.Umap {
		if I >= len(Y) {
			return nil, chk.Err("beam %d: equation %d is out of range; len(Y)=%d", o.Id(), I, len(Y))
		}
		o.ue[i] = Y[I]
	}
	return o.StressStrain(o.ue)
}

// Recompute re-computes length, local system and matrices after coordinates or properties
// are externally changed
func (o *Beam) Recompute() (err error) {

	// length
	d := o.X[1].Sub(o.X[0])
	o.L = d.Norm()
	if o.L <= MinLength {
		return fmt.Errorf("beam %d: %w", o.Id(), ErrZeroLength)
	}

	// unit vectors aligned with beam element
	o.e0 = d.Scale(1.0 / o.L)
	switch {

	// parallel to y
	case math.Abs(d.X) < AxisTol && math.Abs(d.Z) < AxisTol:
		o.e2 = inp.UnitX

	default:
		v := o.e0.Cross(inp.UnitZ)
		if nv, ok := v.Normalize(); ok && v.Norm() >= AxisTol {
			o.e2 = nv.Cross(o.e0)
		} else { // parallel to z
			o.e2 = inp.UnitX
		}
	}
	o.e1 = o.e2.Cross(o.e0)

	// derived element data
	o.Elem.Length = o.L
	o.Elem.LocalAxis = &inp.Axes{X: o.e0, Y: o.e1, Z: o.e2}

	// global to local transformation matrix
	for k := 0; k < 4; k++ {
		for j, e := range []inp.Vec3{o.e0, o.e1, o.e2} {
			o.T.Set(3*k+j, 3*k+0, e.X)
			o.T.Set(3*k+j, 3*k+1, e.Y)
			o.T.Set(3*k+j, 3*k+2, e.Z)
		}
	}

	// constants
	EIz := o.Mat.E * o.Sec.Iz
	EIy := o.Mat.E * o.Sec.Iy
	GJ := o.Mat.G() * o.Sec.J
	EA := o.Mat.E * o.Sec.A
	l := o.L
	ll := l * l
	lll := l * ll

	// stiffness matrix in local system
	o.Kl.Zero()
	o.Kl.Set(0, 0, EA/l)
	o.Kl.Set(0, 6, -EA/l)

	o.Kl.Set(1, 1, 12.0*EIz/lll)
	o.Kl.Set(1, 5, 6.0*EIz/ll)
	o.Kl.Set(1, 7, -12.0*EIz/lll)
	o.Kl.Set(1, 11, 6.0*EIz/ll)

	o.Kl.Set(2, 2, 12.0*EIy/lll)
	o.Kl.Set(2, 4, -6.0*EIy/ll)
	o.Kl.Set(2, 8, -12.0*EIy/lll)
	o.Kl.Set(2, 10, -6.0*EIy/ll)

	o.Kl.Set(3, 3, GJ/l)
	o.Kl.Set(3, 9, -GJ/l)

	o.Kl.Set(4, 2, -6.0*EIy/ll)
	o.Kl.Set(4, 4, 4.0*EIy/l)
	o.Kl.Set(4, 8, 6.0*EIy/ll)
	o.Kl.Set(4, 10, 2.0*EIy/l)

	o.Kl.Set(5, 1, 6.0*EIz/ll)
	o.Kl.Set(5, 5, 4.0*EIz/l)
	o.Kl.Set(5, 7, -6.0*EIz/ll)
	o.Kl.Set(5, 11, 2.0*EIz/l)

	o.Kl.Set(6, 0, -EA/l)
	o.Kl.Set(6, 6, EA/l)

	o.Kl.Set(7, 1, -12.0*EIz/lll)
	o.Kl.Set(7, 5, -6.0*EIz/ll)
	o.Kl.Set(7, 7, 12.0*EIz/lll)
	o.Kl.Set(7, 11, -6.0*EIz/ll)

	o.Kl.Set(8, 2, -12.0*EIy/lll)
	o.Kl.Set(8, 4, 6.0*EIy/ll)
	o.Kl.Set(8, 8, 12.0*EIy/lll)
	o.Kl.Set(8, 10, 6.0*EIy/ll)

	o.Kl.Set(9, 3, -GJ/l)
	o.Kl.Set(9, 9, GJ/l)

	o.Kl.Set(10, 2, -6.0*EIy/ll)
	o.Kl.Set(10, 4, 2.0*EIy/l)
	o.Kl.Set(10, 8, 6.0*EIy/ll)
	o.Kl.Set(10, 10, 4.0*EIy/l)

	o.Kl.Set(11, 1, 6.0*EIz/ll)
	o.Kl.Set(11, 5, 2.0*EIz/l)
	o.Kl.Set(11, 7, -6.0*EIz/ll)
	o.Kl.Set(11, 11, 4.0*EIz/l)

	// stiffness matrix in global system
	o.K.Product(o.T.T(), o.Kl, o.T) // K := trans(T) * Kl * T
	return
}

// StressStrain holds the results of the recovery of one element
type StressStrain struct {
	AxialStrain float64   // ε = (u₂ - u₁) / L
	AxialStress float64   // σ = E ε
	AxialForce  float64   // N = σ A
	BendingY    float64   // max |Mz| at the ends (paired with Iz)
	BendingZ    float64   // max |My| at the ends (paired with Iy)
	StressY     float64   // bending stress BendingY cy / Iz
	StressZ     float64   // bending stress BendingZ cz / Iy
	Combined    float64   // √(StressY² + StressZ²)
	Total       float64   // |AxialStress| + Combined
	LocalDisp   []float64 // [12] displacements in local system
	EndForces   []float64 // [12] end forces in local system: Kl uₗ
}

// StressStrain computes strains, stresses and end forces from the 12 global displacements of
// the element (node 1 then node 2; ux, uy, uz, rx, ry, rz each)
func (o *Beam) StressStrain(u []float64) (res *StressStrain, err error) {
	if len(u) != o.Nu {
		return nil, fmt.Errorf("beam %d: %w; got %d", o.Id(), ErrDispLength, len(u))
	}
	res = &StressStrain{
		LocalDisp: make([]float64, o.Nu),
		EndForces: make([]float64, o.Nu),
	}

	// local displacements: uₗ = T u
	ul := res.LocalDisp
	mat.NewVecDense(o.Nu, ul).MulVec(o.T, mat.NewVecDense(o.Nu, u))

	// axial
	res.AxialStrain = (ul[6] - ul[0]) / o.L
	res.AxialStress = o.Mat.E * res.AxialStrain
	res.AxialForce = res.AxialStress * o.Sec.A

	// end forces: f = Kl uₗ
	f := res.EndForces
	mat.NewVecDense(o.Nu, f).MulVec(o.Kl, mat.NewVecDense(o.Nu, ul))
	res.BendingY = math.Max(math.Abs(f[5]), math.Abs(f[11]))
	res.BendingZ = math.Max(math.Abs(f[4]), math.Abs(f[10]))

	// bending stresses
	cy, cz := o.Sec.Fibers()
	res.StressY = res.BendingY * cy / o.Sec.Iz
	res.StressZ = res.BendingZ * cz / o.Sec.Iy
	res.Combined = math.Sqrt(res.StressY*res.StressY + res.StressZ*res.StressZ)
	res.Total = math.Abs(res.AxialStress) + res.Combined
	return
}
