// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"fmt"

	"github.com/Konstantin8105/errors"
)

// Validate checks the model before analysis and returns all problems found as one error tree.
// The solver assumes a model that passed this check
func (o *Model) Validate() error {
	et := errors.New("model is not valid")

	// minimum contents
	if len(o.Nodes) < 2 {
		et.Add(fmt.Errorf("at least 2 nodes are required; got %d", len(o.Nodes)))
	}
	if len(o.Elements) < 1 {
		et.Add(fmt.Errorf("at least 1 element is required"))
	}
	if len(o.Materials) < 1 {
		et.Add(fmt.Errorf("at least 1 material is required"))
	}
	if len(o.Sections) < 1 {
		et.Add(fmt.Errorf("at least 1 section is required"))
	}
	if len(o.Loads) < 1 {
		et.Add(fmt.Errorf("at least 1 load is required"))
	}

	// nodes
	nodes := make(map[int]bool)
	nfixed := 0
	for _, n := range o.Nodes {
		if nodes[n.Id] {
			et.Add(fmt.Errorf("node id %d is repeated", n.Id))
		}
		nodes[n.Id] = true
		if n.IsFixed() {
			nfixed++
		}
	}
	if len(o.Nodes) > 0 && nfixed == 0 {
		et.Add(fmt.Errorf("at least 1 fixed node is required"))
	}

	// materials and sections
	mats := make(map[int]bool)
	for _, m := range o.Materials {
		if mats[m.Id] {
			et.Add(fmt.Errorf("material id %d is repeated", m.Id))
		}
		mats[m.Id] = true
		if m.E <= 0 {
			et.Add(fmt.Errorf("material %d: elastic modulus must be positive; got %g", m.Id, m.E))
		}
		if m.Nu <= -1 || m.Nu >= 0.5 {
			et.Add(fmt.Errorf("material %d: Poisson's ratio must be in (-1, 0.5); got %g", m.Id, m.Nu))
		}
	}
	secs := make(map[int]bool)
	for _, s := range o.Sections {
		if secs[s.Id] {
			et.Add(fmt.Errorf("section id %d is repeated", s.Id))
		}
		secs[s.Id] = true
		if s.A <= 0 || s.Iy <= 0 || s.Iz <= 0 || s.J <= 0 {
			et.Add(fmt.Errorf("section %d: A, Iy, Iz and J must be all positive", s.Id))
		}
	}

	// elements
	elems := make(map[int]bool)
	for _, e := range o.Elements {
		if elems[e.Id] {
			et.Add(fmt.Errorf("element id %d is repeated", e.Id))
		}
		elems[e.Id] = true
		if e.NodeIds[0] == e.NodeIds[1] {
			et.Add(fmt.Errorf("element %d: start and end nodes are the same (%d)", e.Id, e.NodeIds[0]))
		}
		for _, nid := range e.NodeIds {
			if !nodes[nid] {
				et.Add(fmt.Errorf("element %d: %w: node %d", e.Id, ErrMissingRef, nid))
			}
		}
		if !mats[e.MaterialId] {
			et.Add(fmt.Errorf("element %d: %w: material %d", e.Id, ErrMissingRef, e.MaterialId))
		}
		if !secs[e.SectionId] {
			et.Add(fmt.Errorf("element %d: %w: section %d", e.Id, ErrMissingRef, e.SectionId))
		}
	}

	// loads
	for _, l := range o.Loads {
		if !nodes[l.NodeId] {
			et.Add(fmt.Errorf("load %d: %w: node %d", l.Id, ErrMissingRef, l.NodeId))
		}
	}

	if et.IsError() {
		return et
	}
	return nil
}
