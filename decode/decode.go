// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decode turns the 32-bit parameter of a GPU method call into a
// human readable string.
//
// The decoders are plain data (value maps, field masks) interpreted here, so
// the generated tables never contain code.
package decode

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Decoder describes the parameter of one method.
type Decoder interface {
	Decode(class, op, param uint32) string
}

// Func is an adapter to use an ordinary function as a Decoder.
type Func func(class, op, param uint32) string

func (f Func) Decode(class, op, param uint32) string { return f(class, op, param) }

// Passthrough prints the raw parameter.
var Passthrough Decoder = Func(func(_, _, param uint32) string {
	return fmt.Sprintf("0x%X", param)
})

// Float prints the parameter as an IEEE-754 single precision number.
var Float Decoder = Func(func(_, _, param uint32) string {
	return fmt.Sprintf("%g", math.Float32frombits(param))
})

// Bool prints the parameter as a boolean. Values other than 0 and 1 are
// reported together with the raw value.
var Bool Decoder = Func(func(_, _, param uint32) string {
	switch param {
	case 0:
		return "false"
	case 1:
		return "true"
	}
	return fmt.Sprintf("true(0x%X)", param)
})

// Packed decodes a parameter made of two 16-bit halves.
type Packed struct {
	Low  string `json:"low"`
	High string `json:"high"`
}

func (p Packed) Decode(_, _, param uint32) string {
	return fmt.Sprintf("{%s:%d, %s:%d}", p.Low, param&0xFFFF, p.High, param>>16)
}

// Values selects one of the enumerated values of the parameter.
type Values map[uint32]string

func (vs Values) Decode(_, _, param uint32) string {
	if s := vs[param]; s != "" {
		return s
	}
	return fmt.Sprintf("0x%X?", param)
}

// Field is one bit field of a composite parameter. The masked parameter is
// looked up in Values, which hold complete "label:value" fragments. A miss
// prints the masked value in hex.
type Field struct {
	Label  string            `json:"label"`
	Mask   uint32            `json:"mask"`
	Values map[uint32]string `json:"values,omitempty"`
}

func (f *Field) decode(param uint32) string {
	v := param & f.Mask
	if s, ok := f.Values[v]; ok {
		return s
	}
	return fmt.Sprintf("%s:0x%X", f.Label, v)
}

// Bitmask decodes every field of a composite parameter.
type Bitmask []*Field

func (b Bitmask) Decode(_, _, param uint32) string {
	parts := make([]string, len(b))
	for i, f := range b {
		parts[i] = f.decode(param)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SortedKeys returns the keys of m in increasing order.
func SortedKeys[V any](m map[uint32]V) []uint32 {
	ks := make([]uint32, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}
