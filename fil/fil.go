// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fil implements auxiliary file operations used when post-processing simulations
package fil

import (
	"bytes"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Encoder defines encoders; e.g. json or yaml
type Encoder interface {
	Encode(e interface{}) error
}

// GetEncoder returns a new encoder
//  enctype -- "json" or "yaml"; anything else gives json
//  indent  -- number of spaces. json: zero or negative gives compact output. yaml: minimum is 1
func GetEncoder(w goio.Writer, enctype string, indent int) Encoder {
	if enctype == "yaml" || enctype == "yml" {
		enc := yaml.NewEncoder(w)
		if indent < 1 {
			indent = 1
		}
		enc.SetIndent(indent)
		return enc
	}
	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc
}

// CreateDir creates dir and its parents if they do not exist. Returns dir
func CreateDir(dir string) (string, error) {
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return dir, chk.Err("cannot create directory %q:\n%v", dir, err)
	}
	return dir, nil
}

// SaveMap saves a map to a file. The encoder is selected by the file extension (.json, .yaml or .yml)
//  indent -- number of spaces used for indentation; e.g. 4
func SaveMap(fn string, m map[string]interface{}, indent int, verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, strings.TrimPrefix(strings.ToLower(filepath.Ext(fn)), "."), indent)
	err = enc.Encode(m)
	if err != nil {
		return chk.Err("cannot encode map to %q:\n%v", fn, err)
	}
	if c, ok := enc.(goio.Closer); ok {
		if err = c.Close(); err != nil {
			return chk.Err("cannot encode map to %q:\n%v", fn, err)
		}
	}
	return saveFile(fn, &buf, verbose)
}

// ReadValue reads a number from a file with a single line
//  col -- index of column used when the line has more than one value. Negative indices are
//         out of range; they do not count from the end of the line
//  Output:
//   val -- the value
//   ok  -- false if the file has more than one line (or none), or if col is out of range
func ReadValue(fn string, col int) (val float64, ok bool, err error) {

	// read file
	b, err := os.ReadFile(fn)
	if err != nil {
		return 0, false, chk.Err("cannot read %q:\n%v", fn, err)
	}
	text := string(b)
	if text == "" || strings.Count(strings.TrimSuffix(text, "\n"), "\n") > 0 {
		return 0, false, nil
	}

	// parse values
	fields := strings.Fields(text)
	vals := make([]float64, len(fields))
	for i, f := range fields {
		vals[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, false, chk.Err("cannot parse value %q in %q:\n%v", f, fn, err)
		}
	}

	// select value
	if len(vals) == 1 {
		return vals[0], true, nil
	}
	if col < 0 || col >= len(vals) {
		return 0, false, nil
	}
	return vals[col], true, nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func saveFile(fn string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %q:\n%v", fn, err)
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if err != nil {
		return chk.Err("cannot write file %q:\n%v", fn, err)
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}
