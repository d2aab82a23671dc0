// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nakanishi-coder/gofea/fem"
	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func solveFrame(tst *testing.T) (*inp.Model, *fem.Result) {
	m, _ := inp.Preset("frame")
	e, err := fem.NewEngine(m, nil)
	if err != nil {
		tst.Fatalf("NewEngine failed:\n%v", err)
	}
	res, err := e.SolveStatic()
	if err != nil {
		tst.Fatalf("SolveStatic failed:\n%v", err)
	}
	return m, res
}

func Test_colors01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colors01. colour maps")

	chk.String(tst, Rainbow(0).Hex(), "#0000ff")
	chk.String(tst, Rainbow(0.5).Hex(), "#00ff00")
	chk.String(tst, Rainbow(1).Hex(), "#ff0000")

	chk.String(tst, Heat(0).Hex(), "#000000")
	chk.String(tst, Heat(0.25).Hex(), "#ff0000")
	chk.String(tst, Heat(0.5).Hex(), "#ffff00")
	chk.String(tst, Heat(0.9).Hex(), "#ffffff")

	c := Viridis(0)
	chk.Array(tst, "viridis(0)", 1e-15, []float64{c.R, c.G, c.B}, []float64{0, 0, 1})
	c = Viridis(1)
	chk.Array(tst, "viridis(1)", 1e-15, []float64{c.R, c.G, c.B}, []float64{0, 1, 0})

	chk.String(tst, Grayscale(1).Hex(), "#ffffff")
	chk.String(tst, DefaultColor.Hex(), "#666666")

	for _, name := range append(Colormaps(), "") {
		if _, err := GetColormap(name); err != nil {
			tst.Errorf("GetColormap(%q) failed:\n%v", name, err)
		}
	}
	if _, err := GetColormap("jet"); err == nil {
		tst.Errorf("GetColormap must fail with unknown name")
	}
}

func Test_stress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stress01. element stress data")

	data, err := StressData([]int{4, 5, 6}, []float64{10, 20, 30}, "rainbow")
	if err != nil {
		tst.Errorf("StressData failed:\n%v", err)
		return
	}
	io.Pforan("%+v\n", data)
	chk.Int(tst, "id", data[1].ElementId, 5)
	chk.Array(tst, "normalized", 1e-15, []float64{data[0].Normalized, data[1].Normalized, data[2].Normalized}, []float64{0, 0.5, 1})
	chk.String(tst, data[0].Color, "#0000ff")
	chk.String(tst, data[2].Color, "#ff0000")

	// equal stresses
	data, _ = StressData([]int{1, 2}, []float64{7, 7}, "heat")
	chk.Float64(tst, "normalized", 1e-17, data[1].Normalized, 0)
	chk.String(tst, data[1].Color, DefaultColor.Hex())
	chk.Float64(tst, "Normalize", 1e-17, Normalize(3, 2, 2), 0)

	// errors
	if _, err = StressData([]int{1}, []float64{1, 2}, ""); err == nil {
		tst.Errorf("StressData must fail with incompatible slices")
	}
	if _, err = StressData([]int{1}, []float64{1}, "jet"); err == nil {
		tst.Errorf("StressData must fail with unknown colour map")
	}

	// from result
	data, err = ResultStressData(nil, "")
	if err != nil || len(data) != 0 {
		tst.Errorf("ResultStressData must return empty data without result")
	}
	_, res := solveFrame(tst)
	data, err = ResultStressData(res, "viridis")
	if err != nil {
		tst.Errorf("ResultStressData failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(data)", len(data), 3)
	min, max := res.StressRange()
	for i, d := range data {
		chk.Float64(tst, "stress", 1e-17, d.Stress, res.Stresses[i])
		chk.Float64(tst, "normalized", 1e-15, d.Normalized, (d.Stress-min)/(max-min))
	}
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. text report")

	m, res := solveFrame(tst)
	var b bytes.Buffer
	if err := Report(&b, m, res, ""); err != nil {
		tst.Errorf("Report failed:\n%v", err)
		return
	}
	txt := b.String()
	io.Pf("%s", txt)
	for _, s := range []string{"LINEAR STATIC ANALYSIS", "nodes = 4  elements = 3", "dofs = 24  free = 12  fixed = 12", "stress range", "max displacement"} {
		if !strings.Contains(txt, s) {
			tst.Errorf("report must contain %q", s)
		}
	}

	if err := Report(&b, m, nil, ""); err == nil {
		tst.Errorf("Report must fail without result")
	}
	res.NodeIds = res.NodeIds[:2]
	if err := Report(&b, m, res, ""); err == nil {
		tst.Errorf("Report must fail with incompatible result")
	}
}

func Test_archive01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("archive01. sqlite archive")

	arc, err := OpenArchive("sqlite", filepath.Join(tst.TempDir(), "runs.db"))
	if err != nil {
		tst.Errorf("OpenArchive failed:\n%v", err)
		return
	}
	defer arc.Close()
	if err = arc.AutoMigrate(); err != nil {
		tst.Errorf("AutoMigrate failed:\n%v", err)
		return
	}

	m, res := solveFrame(tst)
	s := inp.DefaultSettings()
	s.LinSol = "cholesky"
	id1, err := arc.Save("frame", "portal frame", m, s, res)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	id2, err := arc.Save("frame-default", "", m, nil, res)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}

	runs, err := arc.List()
	if err != nil {
		tst.Errorf("List failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(runs)", len(runs), 2)
	chk.String(tst, runs[0].Name, "frame")
	chk.String(tst, runs[1].Name, "frame-default")
	chk.Int(tst, "nodes", runs[0].NumNodes, 4)
	_, smax := res.StressRange()
	chk.Float64(tst, "max stress", 1e-17, runs[0].MaxStress, smax)
	if len(runs[0].ModelData) != 0 {
		tst.Errorf("List must not load model data")
	}

	rec, err := arc.Load(id1)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	chk.String(tst, rec.Run.Description, "portal frame")
	chk.String(tst, rec.Settings.LinSol, "cholesky")
	chk.Int(tst, "nodes", len(rec.Model.Nodes), 4)
	if !rec.Model.Nodes[0].IsFixed() {
		tst.Errorf("node 1 must be fixed")
	}
	chk.Array(tst, "U", 1e-17, rec.Result.U, res.U)
	chk.Array(tst, "σ", 1e-17, rec.Result.Stresses, res.Stresses)
	chk.Float64(tst, "Ry", 1e-17, rec.Result.Reactions[0].Y, res.Reactions[0].Y)

	rec, err = arc.Load(id2)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	chk.String(tst, rec.Settings.LinSol, "lu")

	if _, err = arc.Load(999); !errors.Is(err, ErrRunNotFound) {
		tst.Errorf("error must be ErrRunNotFound; got %v", err)
	}
	if _, err = arc.Save("bad", "", nil, nil, nil); err == nil {
		tst.Errorf("Save must fail without model")
	}
	if _, err = OpenArchive("oracle", ""); err == nil {
		tst.Errorf("OpenArchive must fail with unknown driver")
	}
}

func Test_archive02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("archive02. in-memory archives are independent")

	m, res := solveFrame(tst)
	var arcs []*Archive
	for i := 0; i < 2; i++ {
		arc, err := OpenArchive("sqlite", "")
		if err != nil {
			tst.Errorf("OpenArchive failed:\n%v", err)
			return
		}
		defer arc.Close()
		if err = arc.AutoMigrate(); err != nil {
			tst.Errorf("AutoMigrate failed:\n%v", err)
			return
		}
		arcs = append(arcs, arc)
	}
	if _, err := arcs[0].Save("frame", "", m, nil, res); err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	for i, n := range []int{1, 0} {
		runs, err := arcs[i].List()
		if err != nil {
			tst.Errorf("List failed:\n%v", err)
			return
		}
		chk.Int(tst, io.Sf("archive %d: len(runs)", i), len(runs), n)
	}
}
