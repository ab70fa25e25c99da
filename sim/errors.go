// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"strings"

	"github.com/cpmech/gosl/io"
)

// InvalidArgError reports an input type or entity category that is not recognised
type InvalidArgError struct {
	Arg   string   // name of argument; e.g. "input type"
	Value string   // value given by caller
	Valid []string // recognised values
}

// Error implements the error interface
func (o *InvalidArgError) Error() string {
	return io.Sf("invalid %s %q. supported: %s", o.Arg, o.Value, strings.Join(o.Valid, ", "))
}

// IsInvalidArg tells whether err is (or wraps) an InvalidArgError
func IsInvalidArg(err error) bool {
	var e *InvalidArgError
	return errors.As(err, &e)
}
