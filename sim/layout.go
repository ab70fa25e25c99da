// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the location of input and result files within FEPX simulation folders
package sim

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Layout holds the naming conventions of a simulation folder
type Layout struct {
	SubDir        string            `json:"subdir"`        // subdirectory of current-format folders; e.g. simulation.sim
	MetaFile      string            `json:"metafile"`      // file with steps metadata; e.g. .sim
	InputsDir     string            `json:"inputsdir"`     // directory with input files
	ResultsDir    string            `json:"resultsdir"`    // directory with result files
	Inputs        map[string]string `json:"inputs"`        // maps input type to filename; e.g. config => simulation.cfg
	Entities      []string          `json:"entities"`      // valid entity categories; e.g. elts, elsets, mesh
	StepMarker    string            `json:"stepmarker"`    // token on the line before the number of steps
	PrintedMarker string            `json:"printedmarker"` // token two lines before the list of skipped steps
	StepExt       string            `json:"stepext"`       // result filename extension prefix; e.g. .step
}

// Default is the layout written by FEPX (v1.3 and v2.0)
var Default = Layout{
	SubDir:     "simulation.sim",
	MetaFile:   ".sim",
	InputsDir:  "inputs",
	ResultsDir: "results",
	Inputs: map[string]string{
		"config": "simulation.cfg",
		"mesh":   "simulation.mesh",
		"tess":   "simulation.tess",
		"opt":    "simulation.opt",
	},
	Entities:      []string{"elts", "elsets", "mesh"},
	StepMarker:    "step",
	PrintedMarker: "printed",
	StepExt:       ".step",
}

// ReadLayout reads a JSON file with a layout. Fields absent in the file keep the values of Default
func ReadLayout(fn string) (o *Layout, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(fn))
	if err != nil {
		return nil, chk.Err("cannot read layout file %q:\n%v", fn, err)
	}

	// start from defaults
	o = new(Layout)
	*o = Default
	o.Inputs = nil
	o.Entities = nil

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal layout file %q:\n%v", fn, err)
	}
	if o.Inputs == nil {
		o.Inputs = Default.Inputs
	}
	if o.Entities == nil {
		o.Entities = Default.Entities
	}
	return o, o.Check()
}

// Check checks that all names required to build paths are set
func (o *Layout) Check() (err error) {
	names := []struct{ key, val string }{
		{"metafile", o.MetaFile},
		{"inputsdir", o.InputsDir},
		{"resultsdir", o.ResultsDir},
		{"stepmarker", o.StepMarker},
		{"printedmarker", o.PrintedMarker},
		{"stepext", o.StepExt},
	}
	for _, n := range names {
		if n.val == "" {
			return chk.Err("layout: %q must not be empty", n.key)
		}
	}
	if len(o.Inputs) == 0 {
		return chk.Err("layout: at least one input type must be given")
	}
	for key, fn := range o.Inputs {
		if fn == "" {
			return chk.Err("layout: filename of input type %q must not be empty", key)
		}
	}
	if len(o.Entities) == 0 {
		return chk.Err("layout: at least one entity category must be given")
	}
	return
}

// InputTypes returns the recognised input types in ascending order
func (o *Layout) InputTypes() (types []string) {
	for key := range o.Inputs {
		types = append(types, key)
	}
	sort.Strings(types)
	return
}
