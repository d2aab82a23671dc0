// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/nakanishi-coder/gofea/inp"

// Moment holds the largest end moments of an element
//  My -- max |local Mz| at the ends; paired with Iz and the extreme fibre distance cy
//  Mz -- max |local My| at the ends; paired with Iy and the extreme fibre distance cz
type Moment struct {
	My float64 `json:"my"`
	Mz float64 `json:"mz"`
}

// Result holds the results of a static analysis
type Result struct {

	// nodes (same order as Model.Nodes)
	NodeIds         []int      `json:"nodeIds"`
	Displacements   []inp.Vec3 `json:"displacements"`   // translations
	Rotations       []inp.Vec3 `json:"rotations"`       // rotations
	Reactions       []inp.Vec3 `json:"reactions"`       // reaction forces; zero at free nodes
	ReactionMoments []inp.Vec3 `json:"reactionMoments"` // reaction moments; zero at free nodes

	// elements (same order as Model.Elements)
	ElementIds  []int       `json:"elementIds"`
	AxialForces []float64   `json:"axialForces"` // N = σ A
	Moments     []Moment    `json:"moments"`     // largest end moments
	Stresses    []float64   `json:"stresses"`    // total stress |σaxial| + √(σy² + σz²)
	Strains     []float64   `json:"strains"`     // axial strain
	EndForces   [][]float64 `json:"endForces"`   // [nele][12] end forces in local system

	// equations
	NumDofs   int       `json:"numDofs"`   // total number of degrees of freedom
	NumFree   int       `json:"numFree"`   // number of free degrees of freedom
	FixedDofs []int     `json:"fixedDofs"` // fixed equations (sorted)
	U         []float64 `json:"u"`         // [NumDofs] all displacements and rotations
}

// ElementStress holds the total stress of one element
type ElementStress struct {
	ElementId int     `json:"elementId"`
	Stress    float64 `json:"stress"`
}

// StressData returns the total stress of all elements
func (o *Result) StressData() (res []ElementStress) {
	res = make([]ElementStress, len(o.ElementIds))
	for i, id := range o.ElementIds {
		res[i] = ElementStress{id, o.Stresses[i]}
	}
	return
}

// StressRange returns the minimum and maximum total stresses. Returns zeros if there are no elements
func (o *Result) StressRange() (min, max float64) {
	for i, s := range o.Stresses {
		if i == 0 || s < min {
			min = s
		}
		if i == 0 || s > max {
			max = s
		}
	}
	return
}

// NodeDisp returns the displacement of a node by id
func (o *Result) NodeDisp(id int) (u inp.Vec3, ok bool) {
	for i, nid := range o.NodeIds {
		if nid == id {
			return o.Displacements[i], true
		}
	}
	return
}

// MaxDisp returns the node id and magnitude of the largest translation
func (o *Result) MaxDisp() (id int, val float64) {
	for i, u := range o.Displacements {
		if n := u.Norm(); i == 0 || n > val {
			id, val = o.NodeIds[i], n
		}
	}
	return
}
