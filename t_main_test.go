// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func execute(args ...string) (string, error) {
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetErr(&b)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return b.String(), err
}

func Test_cli01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("cli01. preset, run and list")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "frame.feamodel")
	db := filepath.Join(dir, "runs.db")
	if _, err := execute("preset", "frame", fn, "--log-level", "error"); err != nil {
		tst.Errorf("preset failed:\n%v", err)
		return
	}

	txt, err := execute("run", fn, "--solver", "cholesky", "--archive", "sqlite", "--dsn", db, "--log-level", "error")
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	io.Pforan("%s", txt)
	if !strings.Contains(txt, "LINEAR STATIC ANALYSIS") || !strings.Contains(txt, "stress range") {
		tst.Errorf("run must print the report")
	}

	txt, err = execute("list", "--archive", "sqlite", "--dsn", db, "--log-level", "error")
	if err != nil {
		tst.Errorf("list failed:\n%v", err)
		return
	}
	io.Pforan("%s", txt)
	if !strings.Contains(txt, "frame") {
		tst.Errorf("list must show the archived run")
	}

	if _, err = execute("preset", "bridge", fn, "--log-level", "error"); err == nil {
		tst.Errorf("preset must fail with unknown name")
	}
	if _, err = execute("run", filepath.Join(dir, "frame.txt"), "--log-level", "error"); err == nil {
		tst.Errorf("run must fail with unsupported extension")
	}
	if _, err = execute("run", fn, "--log-level", "loud"); err == nil {
		tst.Errorf("run must fail with invalid log level")
	}
}

func Test_cli02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("cli02. verify")

	txt, err := execute("verify", "--divisions", "6", "--workers", "2", "--log-level", "error")
	io.Pforan("%s", txt)
	if err != nil {
		tst.Errorf("verify failed:\n%v", err)
		return
	}
	for _, name := range []string{"tension", "cantilever", "three-point"} {
		if !strings.Contains(txt, name) {
			tst.Errorf("verify must report case %q", name)
		}
	}
	if strings.Contains(txt, "FAIL") {
		tst.Errorf("all cases must pass")
	}
}
