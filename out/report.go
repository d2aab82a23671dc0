// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"fmt"
	goio "io"

	"github.com/nakanishi-coder/gofea/fem"
	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
)

// Report writes a text summary of a static analysis: model statistics, nodal displacements,
// reactions at fixed nodes and element results
func Report(w goio.Writer, model *inp.Model, res *fem.Result, colormap string) (err error) {
	if model == nil || res == nil {
		return chk.Err("model and result must not be nil")
	}
	if len(res.NodeIds) != len(model.Nodes) || len(res.ElementIds) != len(model.Elements) {
		return chk.Err("result (%d nodes, %d elements) does not match model (%d nodes, %d elements)",
			len(res.NodeIds), len(res.ElementIds), len(model.Nodes), len(model.Elements))
	}
	data, err := ResultStressData(res, colormap)
	if err != nil {
		return
	}

	var b bytes.Buffer
	line := func() { fmt.Fprintf(&b, "%s\n", bytes.Repeat([]byte("-"), 100)) }

	// model
	s := model.Stats()
	fmt.Fprintf(&b, "LINEAR STATIC ANALYSIS\n")
	line()
	fmt.Fprintf(&b, "nodes = %d  elements = %d  materials = %d  sections = %d  loads = %d\n",
		s.Nodes, s.Elements, s.Materials, s.Sections, s.Loads)
	fmt.Fprintf(&b, "dofs = %d  free = %d  fixed = %d\n", res.NumDofs, res.NumFree, len(res.FixedDofs))

	// nodes
	line()
	fmt.Fprintf(&b, "%6s %14s %14s %14s %14s %14s %14s\n", "node", "ux", "uy", "uz", "rx", "ry", "rz")
	for i, id := range res.NodeIds {
		u, r := res.Displacements[i], res.Rotations[i]
		fmt.Fprintf(&b, "%6d %14.6e %14.6e %14.6e %14.6e %14.6e %14.6e\n", id, u.X, u.Y, u.Z, r.X, r.Y, r.Z)
	}

	// reactions
	line()
	fmt.Fprintf(&b, "%6s %14s %14s %14s %14s %14s %14s\n", "node", "Rx", "Ry", "Rz", "Mx", "My", "Mz")
	for i, n := range model.Nodes {
		if !n.IsFixed() {
			continue
		}
		f, m := res.Reactions[i], res.ReactionMoments[i]
		fmt.Fprintf(&b, "%6d %14.6e %14.6e %14.6e %14.6e %14.6e %14.6e\n", n.Id, f.X, f.Y, f.Z, m.X, m.Y, m.Z)
	}

	// elements
	line()
	fmt.Fprintf(&b, "%6s %14s %14s %14s %14s %14s %8s\n", "elem", "N", "My", "Mz", "sigma", "eps", "color")
	for i, id := range res.ElementIds {
		m := res.Moments[i]
		fmt.Fprintf(&b, "%6d %14.6e %14.6e %14.6e %14.6e %14.6e %8s\n", id, res.AxialForces[i], m.My, m.Mz,
			res.Stresses[i], res.Strains[i], data[i].Color)
	}

	// summary
	line()
	min, max := res.StressRange()
	nid, umax := res.MaxDisp()
	fmt.Fprintf(&b, "stress range = [%.6e, %.6e]\n", min, max)
	fmt.Fprintf(&b, "max displacement = %.6e at node %d\n", umax, nid)

	_, err = w.Write(b.Bytes())
	return
}
