// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
)

// file format
const (
	FileVersion   = "1.0.0"    // version written by WriteModelFile
	FileExtension = ".feamodel" // preferred extension of model files
)

// ModelFile holds a model together with file metadata
type ModelFile struct {
	Version     string `json:"version"`               // file format version
	Created     string `json:"created"`               // creation date (RFC 3339)
	Description string `json:"description,omitempty"` // description of model
	Model       *Model `json:"model"`                 // the model

	// id counters for editors
	NextNodeId    int `json:"nextNodeId,omitempty"`
	NextElementId int `json:"nextElementId,omitempty"`
	NextLoadId    int `json:"nextLoadId,omitempty"`
}

// CompatibleVersion returns true if version has the same major number as FileVersion
func CompatibleVersion(version string) bool {
	major := func(v string) string { return strings.SplitN(v, ".", 2)[0] }
	return version != "" && major(version) == major(FileVersion)
}

// DecodeModelFile reads a model file from r and checks its version and references
func DecodeModelFile(r goio.Reader) (mf *ModelFile, err error) {
	mf = new(ModelFile)
	if err = json.NewDecoder(r).Decode(mf); err != nil {
		return nil, chk.Err("cannot decode model file:\n%v", err)
	}
	if !CompatibleVersion(mf.Version) {
		return nil, chk.Err("incompatible model file version %q; current version is %q", mf.Version, FileVersion)
	}
	if mf.Model == nil {
		return nil, chk.Err("model file does not contain model data")
	}
	nodes := make(map[int]bool)
	for _, n := range mf.Model.Nodes {
		nodes[n.Id] = true
	}
	for _, e := range mf.Model.Elements {
		if !nodes[e.NodeIds[0]] || !nodes[e.NodeIds[1]] {
			return nil, chk.Err("element %d refers to nonexistent nodes %v", e.Id, e.NodeIds)
		}
	}
	return
}

// EncodeModelFile writes a model file to w. Derived element data are not written
func EncodeModelFile(w goio.Writer, model *Model, desc string, created time.Time) (err error) {
	if desc == "" {
		desc = "FEA Model"
	}
	clean := model.Clone()
	for _, e := range clean.Elements {
		e.Length = 0
		e.LocalAxis = nil
	}
	mf := &ModelFile{
		Version:     FileVersion,
		Created:     created.UTC().Format(time.RFC3339),
		Description: desc,
		Model:       clean,
	}
	for _, n := range clean.Nodes {
		mf.NextNodeId = max(mf.NextNodeId, n.Id+1)
	}
	for _, e := range clean.Elements {
		mf.NextElementId = max(mf.NextElementId, e.Id+1)
	}
	for _, l := range clean.Loads {
		mf.NextLoadId = max(mf.NextLoadId, l.Id+1)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mf)
}

// ReadModelFile reads a .feamodel or .json file
func ReadModelFile(fn string) (mf *ModelFile, err error) {
	ext := strings.ToLower(filepath.Ext(fn))
	if ext != FileExtension && ext != ".json" {
		return nil, chk.Err("unsupported file extension %q; use %s or .json", ext, FileExtension)
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mf, err = DecodeModelFile(f)
	if err != nil {
		return nil, chk.Err("%s: %v", fn, err)
	}
	return
}

// WriteModelFile writes model to a file
func WriteModelFile(fn string, model *Model, desc string) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	return EncodeModelFile(f, model, desc, time.Now())
}
