// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element solver of 3D frames
package fem

import (
	"fmt"
	"time"

	"github.com/nakanishi-coder/gofea/ele"
	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rs/zerolog"
)

// errors
var (
	ErrNotAssembled = chk.Err("stiffness matrix and force vector must be assembled first")
	ErrSingular     = chk.Err("stiffness matrix is singular; check boundary conditions")
	ErrAnalysisType = chk.Err("analysis type is not available")
)

// Engine holds all data for a linear static analysis of a frame
//  Note: an Engine must not be used by more than one goroutine; see SolveMany
type Engine struct {

	// input
	Model    *inp.Model    // model data
	Settings *inp.Settings // analysis settings

	// logging
	Log     zerolog.Logger // structured logger; default is zerolog.Nop()
	ShowMsg bool           // show messages on console

	// derived
	Index  *inp.Index    // id maps
	Elems  []ele.Element // [nele] elements (same order as Model.Elements)
	Ny     int           // total number of equations: 6 × nnodes
	LinSol LinSol        // linear solver

	// results
	result *Result // result of last successful solution; nil otherwise
}

// NewEngine returns a new Engine. settings may be nil, in which case defaults are used
func NewEngine(model *inp.Model, settings *inp.Settings) (o *Engine, err error) {
	if model == nil {
		return nil, chk.Err("model must not be nil")
	}
	o = new(Engine)
	o.Model = model
	o.Settings = inp.DefaultSettings()
	if settings != nil {
		*o.Settings = *settings
		o.Settings.SetDefault()
	}
	o.Log = zerolog.Nop()
	o.Index, err = inp.NewIndex(model)
	if err != nil {
		return nil, err
	}
	o.Ny = len(model.Nodes) * inp.NdofNode
	o.LinSol, err = GetLinSol(o.Settings.LinSol)
	if err != nil {
		return nil, err
	}
	return
}

// SolveStatic runs the linear static analysis: assembly, application of boundary conditions,
// solution of the reduced system and post-processing. The result is cached on success and
// the cached result is cleared on failure
func (o *Engine) SolveStatic() (res *Result, err error) {

	// exit commands
	cputime := time.Now()
	o.result = nil
	defer func() { err = o.onexit(cputime, res, err) }()

	// check analysis type
	if o.Settings.Type != "static" {
		return nil, fmt.Errorf("%w: %q; only \"static\" is implemented", ErrAnalysisType, o.Settings.Type)
	}
	if o.ShowMsg {
		io.Pf("> Assembling stiffness matrix and force vector\n")
	}

	// assemble
	K, err := o.AssembleStiffness()
	if err != nil {
		return nil, err
	}
	F, err := o.AssembleForces()
	if err != nil {
		return nil, err
	}

	// boundary conditions
	red, err := o.ApplyBoundaryConditions(K, F)
	if err != nil {
		return nil, err
	}
	o.Log.Debug().Int("ndofs", o.Ny).Int("nfree", red.Nfree()).Str("solver", o.LinSol.Name()).Msg("system reduced")

	// solve
	if o.ShowMsg {
		io.Pf("> Solving reduced system (%d equations) with %q\n", red.Nfree(), o.LinSol.Name())
	}
	var uf []float64 // empty if all DOFs are fixed; then U = 0
	if red.Nfree() > 0 {
		uf, err = o.LinSol.Solve(red.K, red.F)
		if err != nil {
			return nil, err
		}
	}
	U := red.Expand(uf)

	// post-processing
	res, err = o.postprocess(K, U, red)
	if err != nil {
		return nil, err
	}
	o.result = res
	return
}

// Result returns the result of the last successful solution; nil if there is none
func (o *Engine) Result() *Result { return o.result }

// ElementStressData returns the total stress of all elements. Returns an empty slice
// if there is no result available
func (o *Engine) ElementStressData() []ElementStress {
	if o.result == nil {
		return []ElementStress{}
	}
	return o.result.StressData()
}

// StressRange returns the minimum and maximum total stresses. Returns zeros if there is
// no result or there are no elements
func (o *Engine) StressRange() (min, max float64) {
	if o.result == nil {
		return
	}
	return o.result.StressRange()
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints and logs final message with cpu time
func (o *Engine) onexit(cputime time.Time, res *Result, prevErr error) (err error) {
	elapsed := time.Since(cputime)
	if prevErr != nil {
		o.result = nil
		o.Log.Debug().Err(prevErr).Dur("elapsed", elapsed).Msg("static analysis failed")
		if o.ShowMsg {
			io.PfRed("> Failed\n")
		}
		return prevErr
	}
	o.Log.Debug().Int("nodes", len(res.NodeIds)).Int("elements", len(res.ElementIds)).Dur("elapsed", elapsed).Msg("static analysis completed")
	if o.ShowMsg {
		io.PfGreen("> Success\n")
		io.Pf("> CPU time = %v\n", elapsed)
	}
	return
}
