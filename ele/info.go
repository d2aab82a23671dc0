// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds the degrees of freedom of an element type
type Info struct {
	Dofs [][]string // solution variables PER NODE. ex for 2 nodes: [["ux", "uy", "uz", "rx", "ry", "rz"], [...]]
}

// Ndof returns the number of degrees of freedom of node m
func (o *Info) Ndof(m int) int { return len(o.Dofs[m]) }
