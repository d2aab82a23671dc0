// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/nakanishi-coder/gofea/ana"
	"github.com/nakanishi-coder/gofea/fem"
	"github.com/nakanishi-coder/gofea/inp"
	"github.com/nakanishi-coder/gofea/out"
	"github.com/nakanishi-coder/gofea/tests"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rs/zerolog"
)

func readModel(tst *testing.T, fn string) *inp.Model {
	mf, err := inp.ReadModelFile(fn)
	if err != nil {
		tst.Fatalf("ReadModelFile failed:\n%v", err)
	}
	if err = mf.Model.Validate(); err != nil {
		tst.Fatalf("Validate failed:\n%v", err)
	}
	return mf.Model
}

func run(tst *testing.T, m *inp.Model, linsol string) *fem.Result {
	s := inp.DefaultSettings()
	s.LinSol = linsol
	e, err := fem.NewEngine(m, s)
	if err != nil {
		tst.Fatalf("NewEngine failed:\n%v", err)
	}
	e.ShowMsg = chk.Verbose
	res, err := e.SolveStatic()
	if err != nil {
		tst.Fatalf("SolveStatic failed:\n%v", err)
	}
	return res
}

// rotate rotates v about the unit axis k by θ (Rodrigues)
func rotate(v, k inp.Vec3, θ float64) inp.Vec3 {
	c, s := math.Cos(θ), math.Sin(θ)
	return v.Scale(c).Add(k.Cross(v).Scale(s)).Add(k.Scale(k.Dot(v) * (1 - c)))
}

func Test_frame01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("frame01. space frame from file")

	m := readModel(tst, "data/spaceframe.feamodel")
	s := m.Stats()
	chk.Int(tst, "nodes", s.Nodes, 8)
	chk.Int(tst, "elements", s.Elements, 9)
	chk.Int(tst, "free dofs", s.FreeDofs, 24)
	res := run(tst, m, "lu")

	// vertical columns and the oblique brace
	col := m.Elements[0].LocalAxis
	chk.Array(tst, "column: x", 1e-15, col.X.Array(), []float64{0, 1, 0})
	chk.Array(tst, "column: z", 1e-15, col.Z.Array(), []float64{1, 0, 0})
	brace := m.Elements[8].LocalAxis
	chk.Float64(tst, "brace: length", 1e-15, m.Elements[8].Length, math.Sqrt(34))
	chk.Float64(tst, "brace: x・z", 1e-15, brace.X.Dot(brace.Z), 0)
	chk.Float64(tst, "brace: x・y", 1e-15, brace.X.Dot(brace.Y), 0)

	// equilibrium of forces and moments about the origin
	var sumF, sumM inp.Vec3
	for _, l := range m.Loads {
		n := m.Nodes[l.NodeId-1]
		sumF = sumF.Add(l.Force)
		sumM = sumM.Add(n.Position.Cross(l.Force)).Add(l.Moment)
	}
	for i, n := range m.Nodes {
		sumF = sumF.Add(res.Reactions[i])
		sumM = sumM.Add(n.Position.Cross(res.Reactions[i])).Add(res.ReactionMoments[i])
	}
	io.Pforan("ΣF = %v  ΣM = %v\n", sumF, sumM)
	chk.Float64(tst, "|ΣF|", 1e-6, sumF.Norm(), 0)
	chk.Float64(tst, "|ΣM|", 1e-5, sumM.Norm(), 0)

	// file round trip gives the same solution
	fn := filepath.Join(tst.TempDir(), "copy.feamodel")
	if err := inp.WriteModelFile(fn, m, "copy"); err != nil {
		tst.Errorf("WriteModelFile failed:\n%v", err)
		return
	}
	res2 := run(tst, readModel(tst, fn), "lu")
	chk.Array(tst, "U", 1e-17, res2.U, res.U)
}

func Test_frame02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("frame02. rotation of the whole space frame")

	m := readModel(tst, "data/spaceframe.feamodel")
	ref := run(tst, m, "lu")

	k, _ := inp.Vec3{X: 1, Y: 2, Z: 3}.Normalize()
	θ := 0.7
	rot := m.Clone()
	for _, n := range rot.Nodes {
		n.Position = rotate(n.Position, k, θ)
	}
	for _, l := range rot.Loads {
		l.Force = rotate(l.Force, k, θ)
		l.Moment = rotate(l.Moment, k, θ)
	}
	res := run(tst, rot, "lu")

	// axisymmetric section: the response rotates with the structure
	for i := range m.Nodes {
		u := rotate(ref.Displacements[i], k, θ)
		r := rotate(ref.Rotations[i], k, θ)
		chk.Array(tst, io.Sf("u%d", i), 1e-10, res.Displacements[i].Array(), u.Array())
		chk.Array(tst, io.Sf("θ%d", i), 1e-10, res.Rotations[i].Array(), r.Array())
		tests.CheckRel(tst, io.Sf("|R%d|", i), 1e-8, res.Reactions[i].Norm(), ref.Reactions[i].Norm())
	}
	for i := range m.Elements {
		chk.Float64(tst, io.Sf("N%d", i), 1e-6, res.AxialForces[i], ref.AxialForces[i])
	}
}

func Test_frame03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("frame03. solvers, verification, report and archive")

	m := readModel(tst, "data/spaceframe.feamodel")

	// all solvers in parallel
	var jobs []fem.Job
	for _, name := range []string{"lu", "cholesky", "inverse"} {
		s := inp.DefaultSettings()
		s.LinSol = name
		jobs = append(jobs, fem.Job{Name: name, Model: m, Settings: s})
	}
	results := fem.SolveMany(context.Background(), jobs, 0, zerolog.Nop())
	for _, r := range results {
		if r.Err != nil {
			tst.Errorf("%s failed:\n%v", r.Name, r.Err)
			return
		}
	}
	umax := 0.0
	for _, v := range results[0].Result.U {
		umax = math.Max(umax, math.Abs(v))
	}
	for _, r := range results[1:] {
		for i, v := range r.Result.U {
			chk.Float64(tst, io.Sf("%s: u%d", r.Name, i), 1e-8*umax, v, results[0].Result.U[i])
		}
	}

	// verification cases
	for _, div := range []int{2, 8} {
		for _, o := range ana.Run(context.Background(), ana.Cases(div), ana.Tolerance, 0, zerolog.Nop()) {
			if o.Err != nil || !o.Comparison.Pass {
				tst.Errorf("%s (%d divisions) failed: %+v %v", o.Case.Name, div, o.Comparison, o.Err)
			}
		}
	}

	// report
	var b bytes.Buffer
	if err := out.Report(&b, results[0].Model, results[0].Result, "heat"); err != nil {
		tst.Errorf("Report failed:\n%v", err)
		return
	}
	io.Pf("%s", b.String())

	// archive
	arc, err := out.OpenArchive("sqlite", filepath.Join(tst.TempDir(), "frame.db"))
	if err != nil {
		tst.Errorf("OpenArchive failed:\n%v", err)
		return
	}
	defer arc.Close()
	if err = arc.AutoMigrate(); err != nil {
		tst.Errorf("AutoMigrate failed:\n%v", err)
		return
	}
	id, err := arc.Save("spaceframe", "", results[0].Model, jobs[0].Settings, results[0].Result)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	rec, err := arc.Load(id)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	chk.Int(tst, "elements", rec.Run.NumElements, 9)
	if rec.Model.Elements[8].LocalAxis == nil {
		tst.Errorf("archived model must keep local axes")
	}
	chk.Array(tst, "U", 1e-17, rec.Result.U, results[0].Result.U)
}
