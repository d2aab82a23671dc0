// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// Values holds the main results of a beam problem
type Values struct {
	Moment       float64 `json:"moment"`       // maximum bending moment [N·m]
	Stress       float64 `json:"stress"`       // maximum normal stress [Pa]
	Strain       float64 `json:"strain"`       // axial strain
	Displacement float64 `json:"displacement"` // displacement of control point [m]
}

// SimpleTension returns the solution of a bar with length L pulled by P
//  σ = P/A, ε = σ/E and δ = ε L
func SimpleTension(P, A, E, L float64) (v Values) {
	v.Stress = P / A
	v.Strain = v.Stress / E
	v.Displacement = v.Strain * L
	return
}

// Cantilever returns the solution of a cantilever with length L and a transverse load P at
// the free end. c is the extreme fibre distance paired with I
//  M = P L, σ = M c / I and δ = P L³ / (3 E I) at the free end
func Cantilever(P, L, E, I, c float64) (v Values) {
	v.Moment = P * L
	v.Stress = v.Moment * c / I
	v.Displacement = P * L * L * L / (3.0 * E * I)
	return
}

// ThreePointBending returns the solution of a simply supported beam with span L and a
// transverse load P at the middle
//  M = P L / 4, σ = M c / I and δ = P L³ / (48 E I) at the middle
func ThreePointBending(P, L, E, I, c float64) (v Values) {
	v.Moment = P * L / 4.0
	v.Stress = v.Moment * c / I
	v.Displacement = P * L * L * L / (48.0 * E * I)
	return
}
