// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdtree

import "github.com/embeddedgo/nvtools/hdr"

// NV2AOverrides returns the parent overrides for the NV2A headers.
//
// A sibling value whose name extends another sibling value would be taken as
// its child (NV062_SET_COLOR_FORMAT_LE_X8R8G8B8_Z8R8G8B8 is a value of
// NV062_SET_COLOR_FORMAT, not of ..._LE_X8R8G8B8). Some commands merely look
// like the children of other commands (NV097_SET_TRANSFORM_PROGRAM_LOAD is
// not a field of NV097_SET_TRANSFORM_PROGRAM).
func NV2AOverrides() Overrides {
	return Overrides{
		"NV062_SET_COLOR_FORMAT_LE_X8R8G8B8_Z8R8G8B8": "NV062_SET_COLOR_FORMAT",

		"NV097_SET_CULL_FACE_ENABLE":               "",
		"NV097_SET_LOGIC_OP_ENABLE":                "",
		"NV097_SET_POINT_PARAMS_ENABLE":            "",
		"NV097_SET_STENCIL_FUNC_MASK":              "",
		"NV097_SET_STENCIL_FUNC_REF":               "",
		"NV097_SET_TEXTURE_MATRIX_ENABLE":          "",
		"NV097_SET_TRANSFORM_CONSTANT_LOAD":        "",
		"NV097_SET_TRANSFORM_PROGRAM_CXT_WRITE_EN": "",
		"NV097_SET_TRANSFORM_PROGRAM_LOAD":         "",
		"NV097_SET_TRANSFORM_PROGRAM_START":        "",
	}
}

// Extras returns the commands missing from all known headers.
func Extras() *Tree {
	t := New()
	for _, s := range []hdr.Symbol{
		// xemu issue 711
		{Name: "NV097_SET_OCCLUDE_ZSTENCIL_EN", Raw: "0x00001D84", Value: 0x1D84, Resolved: true},
		// xemu issue 702
		{Name: "NV097_SET_SWATH_WIDTH", Raw: "0x000009F8", Value: 0x9F8, Resolved: true},
	} {
		t.Add(&Node{Cmd: s, Children: map[uint32]*Child{}})
	}
	return t
}
