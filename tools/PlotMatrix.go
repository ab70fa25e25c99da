// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/acmelab/fepx/vis"
	"github.com/cpmech/gosl/io"
)

type Input struct {
	Kind   string      // "graph" or "weights"
	Title  string      // title of figure
	Matrix [][]float64 // adjacency or weights matrix
	DirOut string      // directory for figure; "" => show figure
	FnKey  string      // figure filename key
	Seed   int64       // seed of graph layout
	Niter  int         // number of iterations of graph layout

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if o.Kind == "" {
		o.Kind = "graph"
	}
	if o.Title == "" {
		if o.Kind == "graph" {
			o.Title = "Graph Neural Network"
		} else {
			o.Title = "Weights Map"
		}
	}
	if o.FnKey == "" {
		o.FnKey = io.FnKey(filepath.Base(o.inpfn))
	}
	if o.Seed == 0 {
		o.Seed = vis.Seed
	}
	if o.Niter < 1 {
		o.Niter = vis.Iterations
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"kind of plot: graph or weights", "Kind", o.Kind,
		"title of figure", "Title", o.Title,
		"matrix size", "len(Matrix)", len(o.Matrix),
		"directory for figure", "DirOut", o.DirOut,
		"figure filename key", "FnKey", o.FnKey,
		"graph: seed of layout", "Seed", o.Seed,
		"graph: number of iterations", "Niter", o.Niter,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/graph01", ".json", true)

	// read and parse input data
	b, err := os.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", in.inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// figure path
	var fn string
	if in.DirOut != "" {
		fn = filepath.Join(in.DirOut, in.FnKey+".png")
	}

	// plot
	switch in.Kind {
	case "graph":
		vis.Seed = in.Seed
		vis.Iterations = in.Niter
		fn, err = vis.DrawGraph(in.Matrix, in.Title, fn)
	case "weights":
		fn, err = vis.DrawWeights(in.Matrix, in.Title, fn)
	default:
		io.PfRed("kind %q is invalid. use graph or weights\n", in.Kind)
		return
	}
	if err != nil {
		io.PfRed("plot failed: %v\n", err)
		return
	}
	if fn != "" {
		io.Pfblue2("file <%s> written\n", fn)
	}
}
