// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/nakanishi-coder/gofea/fem"

	"github.com/cpmech/gosl/chk"
)

// ElementStressData holds the stress of an element prepared for display
type ElementStressData struct {
	ElementId  int     `json:"elementId"`
	Stress     float64 `json:"stress"`     // total stress [Pa]
	Normalized float64 `json:"normalized"` // (σ - min) / (max - min); 0 if max == min
	Color      string  `json:"color"`      // "#rrggbb"
}

// Normalize returns (s - min) / (max - min); or 0 if max == min
func Normalize(s, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (s - min) / (max - min)
}

// StressData normalises element stresses and assigns colours
//  colormap -- "rainbow", "heat", "viridis" or "grayscale"; "" means "rainbow"
func StressData(elementIds []int, stresses []float64, colormap string) (res []ElementStressData, err error) {
	if len(elementIds) != len(stresses) {
		return nil, chk.Err("number of element ids (%d) and stresses (%d) must be equal", len(elementIds), len(stresses))
	}
	cmap, err := GetColormap(colormap)
	if err != nil {
		return nil, err
	}
	var min, max float64
	for i, s := range stresses {
		if i == 0 || s < min {
			min = s
		}
		if i == 0 || s > max {
			max = s
		}
	}
	res = make([]ElementStressData, len(stresses))
	for i, s := range stresses {
		res[i] = ElementStressData{ElementId: elementIds[i], Stress: s, Color: DefaultColor.Hex()}
		if max != min {
			res[i].Normalized = Normalize(s, min, max)
			res[i].Color = cmap(res[i].Normalized).Hex()
		}
	}
	return
}

// ResultStressData returns the display data of all elements of a result
func ResultStressData(res *fem.Result, colormap string) ([]ElementStressData, error) {
	if res == nil {
		return []ElementStressData{}, nil
	}
	return StressData(res.ElementIds, res.Stresses, colormap)
}
