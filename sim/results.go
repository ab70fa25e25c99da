// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Result holds the paths of result files; one per step
type Result []string

// One returns the path when the result holds exactly one file
func (o Result) One() (fn string, ok bool) {
	if len(o) != 1 {
		return "", false
	}
	return o[0], true
}

// Paths returns the paths of all result files, in the order of the requested steps
func (o Result) Paths() []string {
	return []string(o)
}

// ResultPaths returns result paths for given steps using the default layout. See Layout.ResultPaths
func ResultPaths(fdr, result, entity string, steps []int) (Result, error) {
	return Default.ResultPaths(fdr, result, entity, steps)
}

// ResultPathsAt returns result paths for one step using the default layout. See Layout.ResultPathsAt
func ResultPathsAt(fdr, result, entity string, step int) (Result, error) {
	return Default.ResultPathsAt(fdr, result, entity, step)
}

// ListResults lists existing result files using the default layout. See Layout.ListResults
func ListResults(fdr, result, entity string) ([]string, error) {
	return Default.ListResults(fdr, result, entity)
}

// ResultPaths returns the paths of result files
//  result -- name of result; e.g. "stress_eq", "coo", "ori"
//  entity -- entity category; e.g. "elts", "elsets", "mesh"
//  steps  -- steps, used as given; e.g. []int{0} or []int{1, 3, 5}
// The paths are: fdr/results/entity/result/result.stepN
func (o *Layout) ResultPaths(fdr, result, entity string, steps []int) (res Result, err error) {
	dir, err := o.resultDir(fdr, result, entity)
	if err != nil {
		return
	}
	res = make(Result, len(steps))
	for i, s := range steps {
		res[i] = filepath.Join(dir, io.Sf("%s%s%d", result, o.StepExt, s))
	}
	return
}

// ResultPathsAt returns the paths of result files corresponding to one step
//  step -- step number; 0 means all printed steps, including the initial configuration
func (o *Layout) ResultPathsAt(fdr, result, entity string, step int) (res Result, err error) {
	if err = o.checkEntity(entity); err != nil {
		return
	}
	steps := []int{step}
	if step == 0 {
		steps, err = o.PrintedSteps(fdr, true)
		if err != nil {
			return
		}
	}
	return o.ResultPaths(fdr, result, entity, steps)
}

// ListResults scans the result directory and returns the existing result files sorted by step
func (o *Layout) ListResults(fdr, result, entity string) (files []string, err error) {
	dir, err := o.resultDir(fdr, result, entity)
	if err != nil {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, chk.Err("cannot list results %q in %q:\n%v", result, dir, err)
	}
	prefix := result + o.StepExt
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return SortSteps(files), nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Layout) checkEntity(entity string) error {
	for _, e := range o.Entities {
		if e == entity {
			return nil
		}
	}
	return &InvalidArgError{"entity", entity, o.Entities}
}

func (o *Layout) resultDir(fdr, result, entity string) (dir string, err error) {
	if err = o.checkEntity(entity); err != nil {
		return
	}
	return filepath.Join(o.Folder(fdr), o.ResultsDir, entity, result), nil
}
