// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/acmelab/fepx/fil"
	"github.com/acmelab/fepx/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	simdir := io.ArgToString(0, ".")
	result := io.ArgToString(1, "stress_eq")
	entity := io.ArgToString(2, "elts")
	step := io.ArgToInt(3, 0)
	layoutfn := io.ArgToString(4, "")
	sumfn := io.ArgToString(5, "")
	verbose := io.ArgToBool(6, true)

	// message
	if verbose {
		io.PfWhite("\nfepx -- locate FEPX simulation files\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation folder", "simdir", simdir,
			"result name", "result", result,
			"entity category: elts, elsets or mesh", "entity", entity,
			"step; 0 => all printed steps", "step", step,
			"layout file (JSON); \"\" => default", "layoutfn", layoutfn,
			"summary file (.json or .yaml); \"\" => none", "sumfn", sumfn,
			"show messages", "verbose", verbose,
		))
	}

	// layout
	lay := &sim.Default
	if layoutfn != "" {
		var err error
		lay, err = sim.ReadLayout(layoutfn)
		if err != nil {
			chk.Panic("cannot read layout:\n%v", err)
		}
	}

	// folder and inputs
	fdr := lay.Folder(simdir)
	inputs := lay.InputPaths(simdir)

	// steps
	steps, err := lay.PrintedSteps(simdir, true)
	if err != nil {
		chk.Panic("cannot get printed steps:\n%v", err)
	}

	// results
	res, err := lay.ResultPathsAt(simdir, result, entity, step)
	if err != nil {
		chk.Panic("cannot get result paths:\n%v", err)
	}
	files, err := lay.ListResults(simdir, result, entity)
	if err != nil {
		chk.Panic("cannot list result files:\n%v", err)
	}

	// output
	if verbose {
		io.Pf("folder        = %s\n", fdr)
		for _, key := range lay.InputTypes() {
			if fn, ok := inputs[key]; ok {
				io.Pf("input %-7s = %s\n", key, fn)
			} else {
				io.Pfyel("input %-7s = (not found)\n", key)
			}
		}
		io.Pforan("printed steps = %v\n", steps)
		if fn, ok := res.One(); ok {
			io.Pf("result        = %s\n", fn)
		} else {
			for _, fn := range res.Paths() {
				io.Pf("result        = %s\n", fn)
			}
		}
		io.Pforan("%d result files found on disk\n", len(files))
	}

	// summary
	if sumfn != "" {
		sum := map[string]interface{}{
			"folder":  fdr,
			"inputs":  inputs,
			"steps":   steps,
			"results": res.Paths(),
			"files":   files,
		}
		err = fil.SaveMap(sumfn, sum, 4, verbose)
		if err != nil {
			chk.Panic("cannot save summary:\n%v", err)
		}
	}
}
