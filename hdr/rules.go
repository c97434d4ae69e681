// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdr

import "strings"

// Fanout describes a define shared by several sibling commands. A name that
// starts with Prefix is replaced by one name for every element of Into, with
// Prefix substituted.
type Fanout struct {
	Prefix string
	Into   []string
}

// Rules controls which defines are extracted and how their names and values
// are fixed up.
type Rules struct {
	Family      string            // required name prefix
	Fanouts     []Fanout
	Renames     map[string]string // misspelled name -> canonical name
	Corrections map[string]uint32 // values missing or wrong upstream
}

// Sanitize returns the names under which the define name is recorded.
func (r *Rules) Sanitize(name string) []string {
	for _, f := range r.Fanouts {
		if !strings.HasPrefix(name, f.Prefix) {
			continue
		}
		suffix := name[len(f.Prefix):]
		names := make([]string, len(f.Into))
		for i, p := range f.Into {
			names[i] = p + suffix
		}
		return names
	}
	if s, ok := r.Renames[name]; ok {
		return []string{s}
	}
	return []string{name}
}

// NV2A returns the rules for the PGRAPH method headers of the NV2A GPU.
func NV2A() *Rules {
	return &Rules{
		Family: "NV0",
		Fanouts: []Fanout{
			// The stencil op values are defined once for the three stencil
			// op methods.
			{
				Prefix: "NV097_SET_STENCIL_OP_V",
				Into: []string{
					"NV097_SET_STENCIL_OP_FAIL",
					"NV097_SET_STENCIL_OP_ZFAIL",
					"NV097_SET_STENCIL_OP_ZPASS",
				},
			},
		},
		Renames: map[string]string{
			"NV097_SET_STIPPLE_PATERN_0": "NV097_SET_STIPPLE_PATTERN",
		},
		Corrections: map[string]uint32{
			"NV097_SET_CONTROL0_Z_FORMAT_FLOAT": 1 << 12,
			"NV097_SET_LINE_WIDTH_MASK":         64<<3 - 1,
		},
	}
}
