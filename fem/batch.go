// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"runtime"
	"sync"

	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/rs/zerolog"
)

// Job holds the input of one analysis to be run by SolveMany
type Job struct {
	Name     string        // name of job; e.g. "cantilever"
	Model    *inp.Model    // model data
	Settings *inp.Settings // analysis settings; nil means defaults
}

// JobResult holds the result of one job
type JobResult struct {
	Name   string     // name of job
	Model  *inp.Model // model used in the analysis (with derived element data)
	Result *Result    // result; nil if Err != nil
	Err    error      // error
}

// SolveMany runs independent static analyses concurrently using a pool of workers.
// Each job gets a fresh engine and its own copy of the model. Results have the same order
// as jobs. Jobs not started before ctx is cancelled report ctx.Err()
//  workers -- number of workers; ≤ 0 means runtime.NumCPU()
func SolveMany(ctx context.Context, jobs []Job, workers int, log zerolog.Logger) (results []JobResult) {
	results = make([]JobResult, len(jobs))
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(jobs))

	// dispatch
	queue := make(chan int, len(jobs))
	for i := range jobs {
		queue <- i
	}
	close(queue)

	// run
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i] = solveJob(ctx, jobs[i], log)
			}
		}()
	}
	wg.Wait()
	return
}

// solveJob runs one job
func solveJob(ctx context.Context, job Job, log zerolog.Logger) (res JobResult) {
	res.Name = job.Name
	if err := ctx.Err(); err != nil {
		res.Err = err
		return
	}
	if job.Model == nil {
		res.Err = chk.Err("job %q: model must not be nil", job.Name)
		return
	}
	res.Model = job.Model.Clone()
	e, err := NewEngine(res.Model, job.Settings)
	if err != nil {
		res.Err = err
		return
	}
	e.Log = log.With().Str("job", job.Name).Logger()
	res.Result, res.Err = e.SolveStatic()
	return
}
