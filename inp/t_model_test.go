// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_vec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vec01. vector products")

	c := UnitX.Cross(UnitY)
	chk.Array(tst, "x × y", 1e-17, c.Array(), UnitZ.Array())
	c = UnitY.Cross(UnitZ)
	chk.Array(tst, "y × z", 1e-17, c.Array(), UnitX.Array())
	c = UnitZ.Cross(UnitX)
	chk.Array(tst, "z × x", 1e-17, c.Array(), UnitY.Array())

	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}
	chk.Float64(tst, "a・(a × b)", 1e-15, a.Dot(a.Cross(b)), 0)
	chk.Float64(tst, "dist", 1e-15, a.Dist(b), math.Sqrt(9+2.25+1))

	u, ok := Vec3{3, 0, 4}.Normalize()
	if !ok {
		tst.Errorf("normalize failed")
		return
	}
	chk.Array(tst, "unit", 1e-15, u.Array(), []float64{0.6, 0, 0.8})

	_, ok = Vec3{}.Normalize()
	if ok {
		tst.Errorf("normalize of zero vector must fail")
	}
}

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. builder, presets and stats")

	m, ok := Preset("frame")
	if !ok {
		tst.Errorf("cannot find preset")
		return
	}
	if err := m.Validate(); err != nil {
		tst.Errorf("portal frame must be valid:\n%v", err)
		return
	}
	s := m.Stats()
	io.Pforan("stats = %+v\n", s)
	chk.Int(tst, "nodes", s.Nodes, 4)
	chk.Int(tst, "elements", s.Elements, 3)
	chk.Int(tst, "fixed nodes", s.FixedNodes, 2)
	chk.Int(tst, "total dofs", s.TotalDofs, 24)
	chk.Int(tst, "free dofs", s.FreeDofs, 12)

	for _, name := range []string{"simple", "truss"} {
		m, _ = Preset(name)
		if err := m.Validate(); err != nil {
			tst.Errorf("preset %q must be valid:\n%v", name, err)
		}
	}
	if _, ok = Preset("dome"); ok {
		tst.Errorf("preset dome does not exist")
	}

	b := NewBuilder()
	b.AddNode(0, 0, 0, false)
	if !b.SetNodeFixity(1, Fixity{Dy: true}) {
		tst.Errorf("SetNodeFixity failed")
	}
	if b.SetNodeFixity(7, FixAll()) {
		tst.Errorf("SetNodeFixity must fail for nonexistent node")
	}
	chk.Int(tst, "fixed dofs", b.Model().Stats().FixedDofs, 1)
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. validation")

	m := &Model{
		Nodes: []*Node{
			{Id: 1, Position: Vec3{0, 0, 0}},
			{Id: 1, Position: Vec3{1, 0, 0}},
		},
		Elements:  []*Element{{Id: 1, NodeIds: [2]int{1, 3}, MaterialId: 1, SectionId: 9}},
		Materials: []*Material{{Id: 1, E: 0, Nu: 0.3}},
		Sections:  []*Section{{Id: 1, A: 1, Iy: 1, Iz: 1, J: 1}},
	}
	err := m.Validate()
	if err == nil {
		tst.Errorf("validation must fail")
		return
	}
	io.Pforan("%v\n", err)
	msg := err.Error()
	for _, s := range []string{
		"node id 1 is repeated",
		"fixed node",
		"load",
		"elastic modulus",
		"node 3",
		"section 9",
	} {
		if !strings.Contains(msg, s) {
			tst.Errorf("error message must contain %q", s)
		}
	}
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. index and missing references")

	m, _ := Preset("truss")
	m.Elements[0].SectionId = 42
	idx, err := NewIndex(m)
	if err != nil {
		tst.Errorf("NewIndex failed:\n%v", err)
		return
	}
	i, err := idx.NodeIdx(3)
	if err != nil {
		tst.Errorf("NodeIdx failed:\n%v", err)
		return
	}
	chk.Int(tst, "index of node 3", i, 2)

	_, _, _, _, err = idx.ElementData(m.Elements[0])
	if !errors.Is(err, ErrMissingRef) {
		tst.Errorf("error must be ErrMissingRef; got %v", err)
		return
	}
	if !strings.Contains(err.Error(), "section 42") {
		tst.Errorf("error must name the missing section: %v", err)
	}

	m.Nodes[1].Id = 1
	if _, err = NewIndex(m); err == nil {
		tst.Errorf("NewIndex must fail with repeated node ids")
	}
}

func Test_section01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("section01. extreme fibres")

	// equivalent rectangle: b=0.2, h=0.4
	b, h := 0.2, 0.4
	sec := &Section{A: b * h, Iy: b * h * h * h / 12, Iz: h * b * b * b / 12, J: 1}
	cy, cz := sec.Fibers()
	chk.Float64(tst, "cy", 1e-14, cy, h/2)
	chk.Float64(tst, "cz", 1e-14, cz, b/2)

	// explicit values take precedence
	sec.FiberY, sec.FiberZ = 0.1, 0.05
	cy, cz = sec.Fibers()
	chk.Float64(tst, "cy", 1e-17, cy, 0.1)
	chk.Float64(tst, "cz", 1e-17, cz, 0.05)

	mat := &Material{E: 200e9, Nu: 0.25}
	chk.Float64(tst, "G", 1e-17, mat.G(), 80e9)
}

func Test_file01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("file01. model file")

	m, _ := Preset("simple")
	m.Elements[0].Length = 0.5
	m.Elements[0].LocalAxis = &Axes{UnitX, UnitY, UnitZ}

	var buf bytes.Buffer
	err := EncodeModelFile(&buf, m, "", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		tst.Errorf("EncodeModelFile failed:\n%v", err)
		return
	}
	txt := buf.String()
	if strings.Contains(txt, "localAxis") {
		tst.Errorf("derived data must not be written")
	}
	if !strings.Contains(txt, `"isFixed": true`) {
		tst.Errorf("isFixed flag must be written")
	}
	if m.Elements[0].LocalAxis == nil {
		tst.Errorf("encoding must not modify the model")
	}

	mf, err := DecodeModelFile(&buf)
	if err != nil {
		tst.Errorf("DecodeModelFile failed:\n%v", err)
		return
	}
	chk.String(tst, mf.Version, FileVersion)
	chk.String(tst, mf.Created, "2024-01-02T03:04:05Z")
	chk.String(tst, mf.Description, "FEA Model")
	chk.Int(tst, "nodes", len(mf.Model.Nodes), 11)
	chk.Int(tst, "next node id", mf.NextNodeId, 12)
	if !mf.Model.Nodes[0].IsFixed() || mf.Model.Nodes[1].IsFixed() {
		tst.Errorf("fixity was not read correctly")
	}

	_, err = DecodeModelFile(strings.NewReader(`{"version":"2.0.0","model":{}}`))
	if err == nil {
		tst.Errorf("version 2.0.0 must be rejected")
	}
	_, err = DecodeModelFile(strings.NewReader(`{"version":"1.3.0","model":{"nodes":[{"id":1}],"elements":[{"id":1,"nodeIds":[1,2]}]}}`))
	if err == nil {
		tst.Errorf("dangling node reference must be rejected")
	}

	dir := tst.TempDir()
	fn := filepath.Join(dir, "beam"+FileExtension)
	if err = WriteModelFile(fn, m, "cantilever"); err != nil {
		tst.Errorf("WriteModelFile failed:\n%v", err)
		return
	}
	mf, err = ReadModelFile(fn)
	if err != nil {
		tst.Errorf("ReadModelFile failed:\n%v", err)
		return
	}
	chk.String(tst, mf.Description, "cantilever")

	bad := filepath.Join(dir, "beam.txt")
	os.WriteFile(bad, []byte("{}"), 0644)
	if _, err = ReadModelFile(bad); err == nil {
		tst.Errorf("extension .txt must be rejected")
	}
}

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. configuration")

	cfg, err := LoadConfig("")
	if err != nil {
		tst.Errorf("LoadConfig failed:\n%v", err)
		return
	}
	chk.String(tst, cfg.Settings.Type, "static")
	chk.String(tst, cfg.Settings.LinSol, "lu")
	chk.String(tst, cfg.Report.Colormap, "rainbow")

	fn := filepath.Join(tst.TempDir(), "gofea.json")
	os.WriteFile(fn, []byte(`{"logLevel":"debug","analysis":{"linSol":"cholesky","maxIterations":7},"archive":{"driver":"sqlite","dsn":"runs.db"}}`), 0644)
	tst.Setenv("GOFEA_REPORT_COLORMAP", "viridis")
	cfg, err = LoadConfig(fn)
	if err != nil {
		tst.Errorf("LoadConfig failed:\n%v", err)
		return
	}
	chk.String(tst, cfg.LogLevel, "debug")
	chk.String(tst, cfg.Settings.LinSol, "cholesky")
	chk.Int(tst, "maxIterations", cfg.Settings.MaxIterations, 7)
	chk.String(tst, cfg.Archive.Driver, "sqlite")
	chk.String(tst, cfg.Report.Colormap, "viridis")

	if _, err = LoadConfig(filepath.Join(tst.TempDir(), "none.json")); err == nil {
		tst.Errorf("missing config file must fail")
	}
}
