// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// DrawWeights draws a weights matrix w[nrow][ncol] as an image with one coloured cell per entry.
// The first row is on top
//  savePath -- path of png figure; e.g. "/tmp/fepx/weights.png". Use "" to show figure instead
func DrawWeights(w [][]float64, title, savePath string) (string, error) {
	arr, err := pyArray(w)
	if err != nil {
		return savePath, err
	}
	if err = checkPng(savePath); err != nil {
		return savePath, err
	}
	plt.Reset(false, nil)
	plt.PyCmds(io.Sf("plt.imshow(%s, interpolation='nearest')\nplt.colorbar()\n", arr))
	plt.Title(title, nil)
	return show(savePath)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// pyArray writes a non-empty rectangular matrix as a python list of lists
func pyArray(w [][]float64) (string, error) {
	if len(w) == 0 {
		return "", chk.Err("weights matrix must have at least one row")
	}
	nc := len(w[0])
	if nc == 0 {
		return "", chk.Err("weights matrix must have at least one column")
	}
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, row := range w {
		if len(row) != nc {
			return "", chk.Err("weights matrix must be rectangular. row %d has %d columns instead of %d", i, len(row), nc)
		}
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("[")
		for j, v := range row {
			if j > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(pyFloat(v))
		}
		buf.WriteString("]")
	}
	buf.WriteString("]")
	return buf.String(), nil
}

// pyFloat writes v as a python float literal
func pyFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "float('nan')"
	case math.IsInf(v, 1):
		return "float('inf')"
	case math.IsInf(v, -1):
		return "float('-inf')"
	}
	return io.Sf("%g", v)
}

// checkPng checks that the figure path is empty or has the png extension
func checkPng(savePath string) error {
	if savePath == "" {
		return nil
	}
	if ext := strings.ToLower(filepath.Ext(savePath)); ext != ".png" {
		return chk.Err("figure must be saved with .png extension. %q is invalid", savePath)
	}
	return nil
}

// figPath splits savePath into output directory and filename key; a bare filename is saved
// into the working directory
func figPath(savePath string) (dir, fnkey string) {
	dir, fn := filepath.Split(savePath)
	if dir == "" {
		dir = "."
	}
	return dir, io.FnKey(fn)
}

// show saves the figure to savePath or shows it if savePath is empty
func show(savePath string) (string, error) {
	if savePath == "" {
		plt.Show()
		return savePath, nil
	}
	plt.Save(figPath(savePath))
	return savePath, nil
}
