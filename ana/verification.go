// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"context"
	"math"

	"github.com/nakanishi-coder/gofea/fem"
	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/rs/zerolog"
)

// Tolerance is the default relative tolerance of verifications
const Tolerance = 0.05

// Case holds a verification case: a model and its analytical solution
type Case struct {
	Name        string     // name of case
	Divisions   int        // number of elements
	Model       *inp.Model // model
	ControlNode int        // id of node where the displacement is measured
	Theory      Values     // analytical solution
}

// Comparison holds the relative errors between computed and analytical values
type Comparison struct {
	StressErr float64 `json:"stressErr"`
	DispErr   float64 `json:"dispErr"`
	Pass      bool    `json:"pass"`
}

// Outcome holds the result of running one verification case
type Outcome struct {
	Case       *Case
	Result     *fem.Result
	Computed   Values
	Comparison Comparison
	Err        error
}

// TensionCase returns a 2 m bar clamped at x=0 and pulled by 10 kN at the other end
//  div -- number of elements; values < 1 are replaced by 1
func TensionCase(div int) *Case {
	div = max(div, 1)
	P, L := 10000.0, 2.0
	b := inp.NewBuilder()
	mat := addMaterial(b, "steel-ss400")
	sec := addCrossSection(b, "Square100x100", "rectangle", 0.1, 0.1, 0, 0, 0)
	tip := straightBeam(b, L, div, mat.Id, sec.Id)
	b.AddLoad(tip, inp.Vec3{X: P}, inp.Vec3{})
	return &Case{
		Name:        "tension",
		Divisions:   div,
		Model:       b.Model(),
		ControlNode: tip,
		Theory:      SimpleTension(P, sec.A, mat.E, L),
	}
}

// CantileverCase returns a 3 m cantilever clamped at x=0 with 5 kN along -y at the free end.
// The extreme fibre distance follows from the equivalent rectangle (0.2 m paired with Iz)
//  div -- number of elements; values < 1 are replaced by 1
func CantileverCase(div int) *Case {
	div = max(div, 1)
	P, L := 5000.0, 3.0
	b := inp.NewBuilder()
	mat := addMaterial(b, "steel-ss400")
	sec := b.AddSection("Rect200x400", 0.08, 1.067e-3, 2.667e-4, 5.33e-4)
	tip := straightBeam(b, L, div, mat.Id, sec.Id)
	b.AddLoad(tip, inp.Vec3{Y: -P}, inp.Vec3{})
	return &Case{
		Name:        "cantilever",
		Divisions:   div,
		Model:       b.Model(),
		ControlNode: tip,
		Theory:      Cantilever(P, L, mat.E, sec.Iz, 0.2),
	}
}

// ThreePointCase returns a 4 m simply supported H-beam with 10 kN along -y at the middle node.
// The left support fixes dx, dy, dz and rx; the right one fixes dy and dz
//  div -- number of elements; odd values are increased by one and values < 2 are replaced by 2
func ThreePointCase(div int) *Case {
	div = max(div, 2)
	if div%2 != 0 {
		div++
	}
	P, L := 10000.0, 4.0
	b := inp.NewBuilder()
	mat := addMaterial(b, "steel-ss400")
	sec := b.AddSectionData(inp.Section{
		Name:   "H200x100x5.5x8",
		A:      2.28e-3,
		Iy:     1.8e-5,
		Iz:     1.7e-6,
		J:      4.7e-7,
		FiberY: 0.1,
		FiberZ: 0.05,
	})
	right := straightBeam(b, L, div, mat.Id, sec.Id)
	b.SetNodeFixity(1, inp.Fixity{Dx: true, Dy: true, Dz: true, Rx: true})
	b.SetNodeFixity(right, inp.Fixity{Dy: true, Dz: true})
	mid := div/2 + 1
	b.AddLoad(mid, inp.Vec3{Y: -P}, inp.Vec3{})
	return &Case{
		Name:        "three-point",
		Divisions:   div,
		Model:       b.Model(),
		ControlNode: mid,
		Theory:      ThreePointBending(P, L, mat.E, sec.Iz, sec.FiberY),
	}
}

// Cases returns all verification cases
func Cases(div int) []*Case {
	return []*Case{TensionCase(div), CantileverCase(div), ThreePointCase(div)}
}

// Measure extracts from a result the values to be compared with the analytical solution
func (o *Case) Measure(res *fem.Result) (v Values, err error) {
	if res == nil {
		return v, chk.Err("%s: result is not available", o.Name)
	}
	u, ok := res.NodeDisp(o.ControlNode)
	if !ok {
		return v, chk.Err("%s: cannot find control node %d", o.Name, o.ControlNode)
	}
	v.Displacement = u.Norm()
	_, v.Stress = res.StressRange()
	for i := range res.Moments {
		v.Moment = math.Max(v.Moment, math.Max(res.Moments[i].My, res.Moments[i].Mz))
		v.Strain = math.Max(v.Strain, math.Abs(res.Strains[i]))
	}
	return
}

// Compare compares computed and analytical stresses and displacements
//  tol -- relative tolerance; e.g. 0.05
func Compare(computed, theory Values, tol float64) (c Comparison) {
	c.StressErr = relErr(computed.Stress, theory.Stress)
	c.DispErr = relErr(computed.Displacement, theory.Displacement)
	c.Pass = c.StressErr <= tol && c.DispErr <= tol
	return
}

// Run solves all cases concurrently and compares the results with the analytical solutions
//  workers -- number of workers; ≤ 0 means runtime.NumCPU()
func Run(ctx context.Context, cases []*Case, tol float64, workers int, log zerolog.Logger) (outcomes []Outcome) {
	jobs := make([]fem.Job, len(cases))
	for i, c := range cases {
		jobs[i] = fem.Job{Name: c.Name, Model: c.Model}
	}
	results := fem.SolveMany(ctx, jobs, workers, log)
	outcomes = make([]Outcome, len(cases))
	for i, r := range results {
		o := &outcomes[i]
		o.Case, o.Result, o.Err = cases[i], r.Result, r.Err
		if o.Err != nil {
			continue
		}
		if o.Computed, o.Err = o.Case.Measure(r.Result); o.Err != nil {
			continue
		}
		o.Comparison = Compare(o.Computed, o.Case.Theory, tol)
		log.Info().Str("case", o.Case.Name).Int("divisions", o.Case.Divisions).
			Float64("stressErr", o.Comparison.StressErr).Float64("dispErr", o.Comparison.DispErr).
			Bool("pass", o.Comparison.Pass).Msg("verification")
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// addMaterial adds a reference material to the model being built
func addMaterial(b *inp.Builder, typ string) *inp.Material {
	var m Material
	if err := m.Init(typ); err != nil {
		chk.Panic("%v", err)
	}
	return b.AddMaterial(m.Desc, m.E, m.Nu, m.Rho, m.Fy)
}

// addCrossSection adds a section computed from the dimensions of a cross-section
func addCrossSection(b *inp.Builder, name, typ string, wid, hei, tf, tw, rad float64) *inp.Section {
	var cs CrossSection
	if err := cs.Init(typ, wid, hei, tf, tw, rad); err != nil {
		chk.Panic("%v", err)
	}
	return b.AddSectionData(cs.ToSection(0, name))
}

// straightBeam adds div+1 nodes along x (the first one clamped) and div elements.
// Returns the id of the last node
func straightBeam(b *inp.Builder, L float64, div, matId, secId int) (last int) {
	prev := b.AddNode(0, 0, 0, true)
	for i := 1; i <= div; i++ {
		n := b.AddNode(L*float64(i)/float64(div), 0, 0, false)
		b.AddElement(prev.Id, n.Id, matId, secId)
		prev = n
	}
	return prev.Id
}

// relErr returns |a - b| / |b|; or |a - b| if b is zero
func relErr(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a - b)
	}
	return math.Abs(a-b) / math.Abs(b)
}
