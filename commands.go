// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/nakanishi-coder/gofea/ana"
	"github.com/nakanishi-coder/gofea/fem"
	"github.com/nakanishi-coder/gofea/inp"
	"github.com/nakanishi-coder/gofea/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// command options
var (
	runSolver     string // linear solver
	runColormap   string // colour map of report
	runArchive    string // archive driver
	runDSN        string // archive connection
	runName       string // name of archived run
	runVerbose    bool   // show engine messages
	verifyDiv     int    // number of elements in verification cases
	verifyWorkers int    // number of workers
	verifyTol     float64
)

var runCmd = &cobra.Command{
	Use:   "run <model.feamodel>",
	Short: "Run a linear static analysis and print a report",
	Long: `Read a model file (.feamodel or .json), validate it, run the linear static analysis and
print nodal displacements, reactions and element results.

Examples:
  gofea run frame.feamodel
  gofea run frame.feamodel --solver cholesky --colormap viridis
  gofea run frame.feamodel --archive sqlite --dsn runs.db`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalysis,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Compare the solver with analytical solutions",
	Long: `Solve the tension, cantilever and three-point bending cases concurrently and compare
maximum stresses and control displacements with analytical solutions.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

var presetCmd = &cobra.Command{
	Use:   "preset <simple|truss|frame> <out.feamodel>",
	Short: "Write a predefined model to a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runPreset,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	runCmd.Flags().StringVar(&runSolver, "solver", "", "linear solver: lu, cholesky or inverse (default from configuration)")
	runCmd.Flags().StringVar(&runColormap, "colormap", "", "colour map: "+strings.Join(out.Colormaps(), ", "))
	runCmd.Flags().StringVar(&runArchive, "archive", "", "archive driver: sqlite or postgres (default from configuration)")
	runCmd.Flags().StringVar(&runDSN, "dsn", "", "archive file path or connection string")
	runCmd.Flags().StringVar(&runName, "name", "", "name of archived run (default: file name)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "show messages")

	verifyCmd.Flags().IntVarP(&verifyDiv, "divisions", "n", 4, "number of elements")
	verifyCmd.Flags().IntVarP(&verifyWorkers, "workers", "w", 0, "number of workers (0: number of CPUs)")
	verifyCmd.Flags().Float64Var(&verifyTol, "tol", ana.Tolerance, "relative tolerance")

	listCmd.Flags().StringVar(&runArchive, "archive", "", "archive driver: sqlite or postgres (default from configuration)")
	listCmd.Flags().StringVar(&runDSN, "dsn", "", "archive file path or connection string")

	rootCmd.AddCommand(runCmd, verifyCmd, presetCmd, listCmd)
}

// runAnalysis implements the run command
func runAnalysis(cmd *cobra.Command, args []string) (err error) {

	// model
	mf, err := inp.ReadModelFile(args[0])
	if err != nil {
		return
	}
	if err = mf.Model.Validate(); err != nil {
		return chk.Err("invalid model:\n%v", err)
	}

	// settings
	settings := cfg.Settings
	if runSolver != "" {
		settings.LinSol = runSolver
	}
	if runColormap == "" {
		runColormap = cfg.Report.Colormap
	}

	// solve
	e, err := fem.NewEngine(mf.Model, &settings)
	if err != nil {
		return
	}
	e.Log = logger
	e.ShowMsg = runVerbose
	res, err := e.SolveStatic()
	if err != nil {
		return
	}
	if err = out.Report(cmd.OutOrStdout(), mf.Model, res, runColormap); err != nil {
		return
	}

	// archive
	arc, err := openArchive()
	if arc == nil || err != nil {
		return
	}
	defer arc.Close()
	name := runName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	id, err := arc.Save(name, mf.Description, mf.Model, e.Settings, res)
	if err != nil {
		return
	}
	logger.Info().Uint("id", id).Str("name", name).Msg("run archived")
	return
}

// runVerify implements the verify command
func runVerify(cmd *cobra.Command, args []string) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	outcomes := ana.Run(ctx, ana.Cases(verifyDiv), verifyTol, verifyWorkers, logger)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "case\tdiv\tstress\ttheory\terr\tdisp\ttheory\terr\tresult")
	nfail := 0
	for _, o := range outcomes {
		if o.Err != nil {
			nfail++
			fmt.Fprintf(w, "%s\t%d\t\t\t\t\t\t\tERROR: %v\n", o.Case.Name, o.Case.Divisions, o.Err)
			continue
		}
		status := "PASS"
		if !o.Comparison.Pass {
			status = "FAIL"
			nfail++
		}
		fmt.Fprintf(w, "%s\t%d\t%.4e\t%.4e\t%.2f%%\t%.4e\t%.4e\t%.2f%%\t%s\n", o.Case.Name, o.Case.Divisions,
			o.Computed.Stress, o.Case.Theory.Stress, 100*o.Comparison.StressErr,
			o.Computed.Displacement, o.Case.Theory.Displacement, 100*o.Comparison.DispErr, status)
	}
	if err = w.Flush(); err != nil {
		return
	}
	if nfail > 0 {
		return chk.Err("%d of %d verification cases failed", nfail, len(outcomes))
	}
	io.PfGreen("all verification cases passed\n")
	return
}

// runPreset implements the preset command
func runPreset(cmd *cobra.Command, args []string) (err error) {
	m, ok := inp.Preset(args[0])
	if !ok {
		return chk.Err("preset %q is not available; use simple, truss or frame", args[0])
	}
	if err = inp.WriteModelFile(args[1], m, args[0]); err != nil {
		return
	}
	logger.Info().Str("preset", args[0]).Str("file", args[1]).Msg("model written")
	return
}

// runList implements the list command
func runList(cmd *cobra.Command, args []string) (err error) {
	arc, err := openArchive()
	if err != nil {
		return
	}
	if arc == nil {
		return chk.Err("archive is not configured; use --archive or archive.driver")
	}
	defer arc.Close()
	runs, err := arc.List()
	if err != nil {
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "id\tname\tcreated\tnodes\telements\tmax disp\tmax stress")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%.4e\t%.4e\n", r.ID, r.Name, r.CreatedAt.Format("2006-01-02 15:04"),
			r.NumNodes, r.NumElements, r.MaxDisp, r.MaxStress)
	}
	return w.Flush()
}

// openArchive opens and migrates the archive given by flags or configuration.
// Returns nil if no archive is configured
func openArchive() (arc *out.Archive, err error) {
	driver, dsn := cfg.Archive.Driver, cfg.Archive.DSN
	if runArchive != "" {
		driver = runArchive
	}
	if runDSN != "" {
		dsn = runDSN
	}
	if driver == "" {
		return nil, nil
	}
	if arc, err = out.OpenArchive(driver, dsn); err != nil {
		return nil, err
	}
	arc.Log = logger
	if err = arc.AutoMigrate(); err != nil {
		arc.Close()
		return nil, err
	}
	return
}
