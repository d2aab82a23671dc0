// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Material holds linear elastic material data
type Material struct {
	Id   int     `json:"id"`             // unique identifier
	Name string  `json:"name"`           // name of material
	E    float64 `json:"elasticModulus"` // Young's modulus [Pa]
	Nu   float64 `json:"poissonRatio"`   // Poisson's ratio
	Rho  float64 `json:"density"`        // density [kg/m³]
	Fy   float64 `json:"yieldStrength"`  // yield strength [Pa]
}

// G returns the shear modulus E / (2(1+ν))
func (o *Material) G() float64 { return o.E / (2.0 * (1.0 + o.Nu)) }

// String returns a short description of this material
func (o *Material) String() string {
	return io.Sf("material %d %q: E=%g ν=%g ρ=%g fy=%g", o.Id, o.Name, o.E, o.Nu, o.Rho, o.Fy)
}

// Section holds cross-sectional properties of a beam
//
//  FiberY is the distance from the neutral axis to the extreme fibre used together with Iz
//  (bending caused by loads along the local y-axis); FiberZ is used together with Iy.
//  When they are zero, an equivalent rectangle is computed from A, Iy and Iz.
type Section struct {
	Id     int     `json:"id"`                      // unique identifier
	Name   string  `json:"name"`                    // name of section
	A      float64 `json:"area"`                    // cross-sectional area [m²]
	Iy     float64 `json:"momentOfInertiaY"`        // second moment of area about local y [m⁴]
	Iz     float64 `json:"momentOfInertiaZ"`        // second moment of area about local z [m⁴]
	J      float64 `json:"torsionalConstant"`       // torsional constant [m⁴]
	FiberY float64 `json:"extremeFiberY,omitempty"` // extreme fibre distance paired with Iz [m]
	FiberZ float64 `json:"extremeFiberZ,omitempty"` // extreme fibre distance paired with Iy [m]
}

// Fibers returns the extreme fibre distances (cy, cz)
func (o *Section) Fibers() (cy, cz float64) {
	if o.FiberY > 0 && o.FiberZ > 0 {
		return o.FiberY, o.FiberZ
	}
	aspect := math.Sqrt(o.Iy / o.Iz) // h/b
	wid := math.Sqrt(o.A / aspect)
	hei := o.A / wid
	cy, cz = hei/2.0, wid/2.0
	if o.FiberY > 0 {
		cy = o.FiberY
	}
	if o.FiberZ > 0 {
		cz = o.FiberZ
	}
	return
}

// String returns a short description of this section
func (o *Section) String() string {
	return io.Sf("section %d %q: A=%g Iy=%g Iz=%g J=%g", o.Id, o.Name, o.A, o.Iy, o.Iz, o.J)
}
