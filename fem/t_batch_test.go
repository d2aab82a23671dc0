// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"errors"
	"testing"

	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rs/zerolog"
)

func Test_batch01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("batch01. concurrent analyses")

	var jobs []Job
	for _, name := range []string{"simple", "truss", "frame"} {
		m, _ := inp.Preset(name)
		jobs = append(jobs, Job{Name: name, Model: m})
	}
	s := inp.DefaultSettings()
	s.LinSol = "cholesky"
	jobs = append(jobs, Job{Name: "cantilever", Model: cantilever(10, 5000), Settings: s})
	bad, _ := inp.Preset("truss")
	bad.Elements[0].MaterialId = 7
	jobs = append(jobs, Job{Name: "bad", Model: bad})
	jobs = append(jobs, Job{Name: "nil"})

	for _, workers := range []int{0, 1, 3, 100} {
		results := SolveMany(context.Background(), jobs, workers, zerolog.Nop())
		chk.Int(tst, "len(results)", len(results), len(jobs))
		for i, r := range results {
			chk.String(tst, r.Name, jobs[i].Name)
		}
		for i := 0; i < 4; i++ {
			if results[i].Err != nil {
				tst.Errorf("job %q failed:\n%v", results[i].Name, results[i].Err)
				return
			}
		}

		// same as sequential solution
		for i := 0; i < 4; i++ {
			_, ref := solve(tst, jobs[i].Model.Clone(), jobs[i].Settings)
			chk.Array(tst, io.Sf("%s: u", jobs[i].Name), 1e-17, results[i].Result.U, ref.U)
		}

		// derived data is stored in the copy only
		if results[2].Model == jobs[2].Model {
			tst.Errorf("job must use a copy of the model")
		}
		if results[2].Model.Elements[0].LocalAxis == nil {
			tst.Errorf("copy of model must hold local axes")
		}

		// failures
		if !errors.Is(results[4].Err, inp.ErrMissingRef) {
			tst.Errorf("error must be ErrMissingRef; got %v", results[4].Err)
		}
		if results[4].Result != nil {
			tst.Errorf("result of failed job must be nil")
		}
		if results[5].Err == nil {
			tst.Errorf("job without model must fail")
		}
	}
}

func Test_batch02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("batch02. cancellation")

	m, _ := inp.Preset("frame")
	jobs := []Job{{Name: "a", Model: m}, {Name: "b", Model: m}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := SolveMany(ctx, jobs, 2, zerolog.Nop())
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			tst.Errorf("job %q: error must be context.Canceled; got %v", r.Name, r.Err)
		}
	}

	results = SolveMany(context.Background(), nil, 4, zerolog.Nop())
	chk.Int(tst, "len(results)", len(results), 0)
}
