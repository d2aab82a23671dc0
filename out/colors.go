// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of frame analyses: stress colouring, reports and an archive
// of results
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Color holds red, green and blue components in [0, 1]
type Color struct {
	R, G, B float64
}

// DefaultColor is used when all stresses are equal
var DefaultColor = Color{0.4, 0.4, 0.4}

// Hex returns the colour as "#rrggbb"
func (o Color) Hex() string {
	c := func(v float64) int { return int(math.Round(255 * math.Max(0, math.Min(1, v)))) }
	return io.Sf("#%02x%02x%02x", c(o.R), c(o.G), c(o.B))
}

// ColormapFunc maps a normalised value in [0, 1] to a colour
type ColormapFunc func(v float64) Color

// colormaps holds all available colour maps
var colormaps = map[string]ColormapFunc{
	"rainbow":   Rainbow,
	"heat":      Heat,
	"viridis":   Viridis,
	"grayscale": Grayscale,
}

// Colormaps returns the names of all available colour maps
func Colormaps() []string {
	return []string{"rainbow", "heat", "viridis", "grayscale"}
}

// GetColormap returns a colour map by name; "" means "rainbow"
func GetColormap(name string) (ColormapFunc, error) {
	if name == "" {
		return Rainbow, nil
	}
	if fcn, ok := colormaps[name]; ok {
		return fcn, nil
	}
	return nil, chk.Err("colour map %q is not available", name)
}

// Rainbow goes from blue (v=0) to red (v=1) through green
func Rainbow(v float64) Color {
	return hsl((1.0-v)*240.0/360.0, 1, 0.5)
}

// Heat goes from black to red, yellow and white. Values above 0.75 are white
func Heat(v float64) Color {
	switch {
	case v < 0.25:
		return Color{v * 4, 0, 0}
	case v < 0.5:
		return Color{1, (v - 0.25) * 4, 0}
	case v < 0.75:
		return Color{1, 1, (v - 0.5) * 4}
	}
	return Color{1, 1, 1}
}

// Viridis is a polynomial approximation of the viridis colour map
func Viridis(v float64) Color {
	return Color{
		clamp(-0.5 + 1.4*v - 0.9*v*v),
		clamp(v * v * v),
		clamp(1.0 - 1.5*v + 0.5*v*v),
	}
}

// Grayscale goes from black to white
func Grayscale(v float64) Color {
	return Color{v, v, v}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// hsl converts hue, saturation and lightness in [0, 1] to RGB
func hsl(h, s, l float64) Color {
	if s == 0 {
		return Color{l, l, l}
	}
	var q float64
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{hue2rgb(p, q, h+1.0/3.0), hue2rgb(p, q, h), hue2rgb(p, q, h-1.0/3.0)}
}

func hue2rgb(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*6*(2.0/3.0-t)
	}
	return p
}

func clamp(v float64) float64 { return math.Max(0, math.Min(1, v)) }
