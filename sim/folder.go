// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"os"
	"path/filepath"
	"strings"
)

// Folder returns the simulation folder using the default layout. See Layout.Folder
func Folder(fdr string) string {
	return Default.Folder(fdr)
}

// InputPath returns the path of an input file using the default layout. See Layout.InputPath
func InputPath(fdr, inputType string) (fn string, found bool, err error) {
	return Default.InputPath(fdr, inputType)
}

// Folder returns the folder holding the simulation files.
// FEPX 2.0 writes everything into fdr/simulation.sim whereas FEPX 1.3 writes directly into fdr;
// the subdirectory is returned if it exists, otherwise fdr is returned unchanged
func (o *Layout) Folder(fdr string) string {
	if o.SubDir == "" {
		return fdr
	}
	sub := filepath.Join(fdr, o.SubDir)
	if exists(sub) {
		return sub
	}
	return fdr
}

// InputPath returns the path of an input file
//  inputType -- one of the keys in Inputs (case-insensitive); e.g. "config", "Mesh"
//  Output:
//   fn    -- path of input file; empty if not found
//   found -- the input file exists
//   err   -- InvalidArgError if inputType is not recognised
func (o *Layout) InputPath(fdr, inputType string) (fn string, found bool, err error) {
	name, ok := o.Inputs[strings.ToLower(inputType)]
	if !ok {
		return "", false, &InvalidArgError{"input type", inputType, o.InputTypes()}
	}
	fn = filepath.Join(o.Folder(fdr), o.InputsDir, name)
	if !exists(fn) {
		return "", false, nil
	}
	return fn, true, nil
}

// InputPaths returns the paths of all input files found in fdr. Maps input type to path
func (o *Layout) InputPaths(fdr string) (res map[string]string) {
	res = make(map[string]string)
	for _, key := range o.InputTypes() {
		fn, found, _ := o.InputPath(fdr, key)
		if found {
			res[key] = fn
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func exists(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}
