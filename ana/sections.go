// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions of beams, a cross-section calculator and
// verification cases for the frame solver
package ana

import (
	"math"

	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes cross-sectional moments of inertia and other properties
//
//          y (local)
//          ^
//          |
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//                                    ___    | |     ___
//   ^ y       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> z  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
//  Iz is the major moment of inertia (loads along y); Iy is the minor one
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A  float64 // cross-sectional area
	Iz float64 // moment of inertia about local z (major)
	Iy float64 // moment of inertia about local y (minor)
	J  float64 // torsional constant
	Cy float64 // extreme fibre distance along y
	Cz float64 // extreme fibre distance along z
}

// Init initialises structure and computes moment of inertia
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		if wid <= 0 || hei <= 0 {
			return chk.Err("rectangle: width and height must be positive; got b=%g h=%g", wid, hei)
		}
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.Iz = b * h3 / 12.0
		o.Iy = b3 * h / 12.0
		if b == h {
			o.J = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.J = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}
		o.Cy, o.Cz = hei/2.0, wid/2.0

	case "I-beam":
		if wid <= 0 || hei <= 0 || tf <= 0 || tw <= 0 || 2.0*tf >= hei || tw >= wid {
			return chk.Err("I-beam: invalid dimensions b=%g h=%g tf=%g tw=%g", wid, hei, tf, tw)
		}
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.Iz = b*h3/12.0 - (b-tw)*l3/12.0
		o.Iy = l*tw3/12.0 + tf*b3/6.0
		o.J = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0
		o.Cy, o.Cz = hei/2.0, wid/2.0

	case "circle":
		if rad <= 0 {
			return chk.Err("circle: radius must be positive; got %g", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Iz = math.Pi * r2 * r2 / 4.0
		o.Iy = o.Iz
		o.J = o.Iz + o.Iy
		o.Cy, o.Cz = rad, rad

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// ToSection returns the section data with explicit extreme fibre distances
func (o *CrossSection) ToSection(id int, name string) inp.Section {
	return inp.Section{
		Id:     id,
		Name:   name,
		A:      o.A,
		Iy:     o.Iy,
		Iz:     o.Iz,
		J:      o.J,
		FiberY: o.Cy,
		FiberZ: o.Cz,
	}
}

// String returns a short description of the cross-section
func (o *CrossSection) String() string {
	return io.Sf("%s: A=%g m² Iy=%g m⁴ Iz=%g m⁴ J=%g m⁴ cy=%g m cz=%g m", o.Type, o.A, o.Iy, o.Iz, o.J, o.Cy, o.Cz)
}

// Material holds parameters of some reference materials in SI units
type Material struct {
	Type string  // type of material; e.g. "steel"
	Desc string  // description
	E    float64 // Young's modulus [Pa]
	Nu   float64 // Poisson's coefficient
	G    float64 // shear modulus [Pa]
	Rho  float64 // density [kg/m³]
	Fy   float64 // yield strength [Pa]; zero if not applicable
}

// Init initialises material parameters
func (o *Material) Init(typ string) (err error) {
	o.Type = typ
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E, o.Nu, o.Rho, o.Fy = 200e9, 0.32, 7850, 250e6
	case "steel-ss400":
		o.Desc = "Steel: structural SS400"
		o.E, o.Nu, o.Rho, o.Fy = 200e9, 0.3, 7850, 235e6
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E, o.Nu, o.Rho, o.Fy = 73.1e9, 0.35, 2790, 414e6
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E, o.Nu, o.Rho = 22.1e9, 0.15, 2380
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E, o.Nu, o.Rho = 30e9, 0.15, 2380
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E, o.Nu, o.Rho = 13.1e9, 0.29, 470
	default:
		return chk.Err("material type %q is unavailable", typ)
	}
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}
