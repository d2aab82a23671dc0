// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "math"

// Vec3 is a point or a vector in 3D
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Unit vectors along the global axes
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// Add returns o + b
func (o Vec3) Add(b Vec3) Vec3 { return Vec3{o.X + b.X, o.Y + b.Y, o.Z + b.Z} }

// Sub returns o - b
func (o Vec3) Sub(b Vec3) Vec3 { return Vec3{o.X - b.X, o.Y - b.Y, o.Z - b.Z} }

// Scale returns s * o
func (o Vec3) Scale(s float64) Vec3 { return Vec3{s * o.X, s * o.Y, s * o.Z} }

// Dot returns the scalar product o・b
func (o Vec3) Dot(b Vec3) float64 { return o.X*b.X + o.Y*b.Y + o.Z*b.Z }

// Cross returns the vector product o × b
func (o Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		o.Y*b.Z - o.Z*b.Y,
		o.Z*b.X - o.X*b.Z,
		o.X*b.Y - o.Y*b.X,
	}
}

// Norm returns the Euclidean norm
func (o Vec3) Norm() float64 { return math.Sqrt(o.Dot(o)) }

// Dist returns the distance between points o and b
func (o Vec3) Dist(b Vec3) float64 { return b.Sub(o).Norm() }

// Normalize returns the unit vector along o. ok is false for the zero vector,
// in which case the zero vector is returned
func (o Vec3) Normalize() (u Vec3, ok bool) {
	n := o.Norm()
	if n == 0 {
		return Vec3{}, false
	}
	return o.Scale(1.0 / n), true
}

// Array returns the components as a slice
func (o Vec3) Array() []float64 { return []float64{o.X, o.Y, o.Z} }
