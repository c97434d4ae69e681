// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdr

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const number = `(?:0[xX][0-9a-fA-F]+|[0-9]+)`

var (
	hexRE   = regexp.MustCompile(`^0[xX]([0-9a-fA-F]+)$`)
	shiftRE = regexp.MustCompile(`^\(?\s*(` + number + `)\s*<<\s*(` + number + `)\s*\)?$`)
	decRE   = regexp.MustCompile(`^([0-9]+)$`)
)

// ParseValue resolves the right hand side of a define. It accepts a hex
// literal, a shift expression of two literals, optionally parenthesized,
// and a decimal literal. A trailing C comment is ignored.
func ParseValue(s string) (uint32, bool) {
	s = strings.TrimSpace(stripComment(s))
	if m := hexRE.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return 0, false
		}
		return uint32(v), true
	}
	if m := shiftRE.FindStringSubmatch(s); m != nil {
		x, err := strconv.ParseUint(m[1], 0, 32)
		if err != nil {
			return 0, false
		}
		n, err := strconv.ParseUint(m[2], 0, 8)
		if err != nil || n > 31 {
			return 0, false
		}
		if x<<n > math.MaxUint32 {
			return 0, false
		}
		return uint32(x << n), true
	}
	if m := decRE.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			return 0, false
		}
		return uint32(v), true
	}
	return 0, false
}

func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "/*"); i >= 0 {
		s = s[:i]
	}
	return s
}
