// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"sort"
	"strings"
)

// SortSteps returns a copy of files sorted by the number at the end of each name;
// e.g. {"s.step10", "s.step2"} => {"s.step2", "s.step10"}.
// Names without trailing digits come after numbered ones, in lexicographic order
func SortSteps(files []string) []string {
	res := make([]string, len(files))
	copy(res, files)
	sort.SliceStable(res, func(i, j int) bool {
		a, aok := trailingDigits(res[i])
		b, bok := trailingDigits(res[j])
		switch {
		case aok && bok && a != b:
			return lessDigits(a, b)
		case aok != bok:
			return aok
		}
		return res[i] < res[j]
	})
	return res
}

// trailingDigits returns the digits at the end of s without leading zeros; "0" if all are zero
func trailingDigits(s string) (digits string, ok bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return "", false
	}
	digits = strings.TrimLeft(s[i:], "0")
	if digits == "" {
		digits = "0"
	}
	return digits, true
}

// lessDigits compares non-negative integers of any size written without leading zeros
func lessDigits(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
