// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// StepInfo holds the steps metadata recorded in the .sim file
type StepInfo struct {
	Total    int   // number of steps computed by the simulation
	HasTotal bool  // Total was found
	Skipped  []int // steps that were not printed to disk
}

// Printed returns the steps with data on disk; i.e. start..Total minus Skipped.
// Without Total, only the initial configuration is known and [0] is returned
//  includeZero -- start at step 0 (initial configuration) instead of 1
func (o StepInfo) Printed(includeZero bool) (steps []int) {
	if !o.HasTotal {
		return []int{0}
	}
	steps = []int{}
	skip := make(map[int]bool)
	for _, s := range o.Skipped {
		skip[s] = true
	}
	start := 1
	if includeZero {
		start = 0
	}
	for s := start; s <= o.Total; s++ {
		if !skip[s] {
			steps = append(steps, s)
		}
	}
	return
}

// PrintedSteps returns the printed steps using the default layout. See Layout.PrintedSteps
func PrintedSteps(fdr string, includeZero bool) ([]int, error) {
	return Default.PrintedSteps(fdr, includeZero)
}

// PrintedSteps returns the steps with data on disk as recorded in the metadata (.sim) file.
// If the metadata file does not exist or has no number of steps, only the initial configuration
// is available and [0] is returned
func (o *Layout) PrintedSteps(fdr string, includeZero bool) (steps []int, err error) {
	info, found, err := o.ReadSteps(fdr)
	if err != nil {
		return
	}
	if !found {
		return []int{0}, nil
	}
	return info.Printed(includeZero), nil
}

// ReadSteps reads and parses the metadata (.sim) file
//  found -- the metadata file exists
func (o *Layout) ReadSteps(fdr string) (info StepInfo, found bool, err error) {
	fn := filepath.Join(o.Folder(fdr), o.MetaFile)
	b, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return info, false, nil
		}
		return info, false, chk.Err("cannot read steps metadata file %q:\n%v", fn, err)
	}
	return o.ParseSteps(splitLines(string(b))), true, nil
}

// ParseSteps parses the lines of a metadata file using the default layout. See Layout.ParseSteps
func ParseSteps(lines []string) StepInfo {
	return Default.ParseSteps(lines)
}

// ParseSteps parses the lines of a metadata file. The format is position-based:
//  * the number of steps is the last field of the line following a line containing StepMarker
//  * the skipped steps are the fields of the line two lines after a line containing PrintedMarker
// The last occurrence of each marker wins. Markers without valid data are ignored,
// thus malformed files yield no total and/or no skipped steps
func (o *Layout) ParseSteps(lines []string) (info StepInfo) {

	// total number of steps
	for i, line := range lines {
		if !strings.Contains(line, o.StepMarker) || i+1 >= len(lines) {
			continue
		}
		fields := strings.Fields(lines[i+1])
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			continue
		}
		info.Total, info.HasTotal = n, true
	}
	if !info.HasTotal {
		return
	}

	// skipped steps
	for i, line := range lines {
		if !strings.Contains(line, o.PrintedMarker) {
			continue
		}
		if i+2 >= len(lines) {
			info.Skipped = nil
			continue
		}
		info.Skipped = parseInts(lines[i+2])
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// splitLines splits text into lines; a trailing newline does not start a new line
func splitLines(text string) (lines []string) {
	if text == "" {
		return
	}
	lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return
}

// parseInts parses whitespace-separated integers; returns nil if any field is invalid
func parseInts(line string) (res []int) {
	for _, f := range strings.Fields(line) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		res = append(res, v)
	}
	return
}
