// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import "fmt"

// Array describes a method repeated Count times every Stride bytes.
type Array struct {
	Stride uint32 `json:"stride"`
	Count  uint32 `json:"count"`
}

// StructArray describes an array of Count structures, every Stride bytes,
// each made of FieldCount consecutive fields of FieldSize bytes.
type StructArray struct {
	Stride     uint32 `json:"stride"`
	Count      uint32 `json:"count"`
	FieldSize  uint32 `json:"fieldSize"`
	FieldCount uint32 `json:"fieldCount"`
}

// Entry is the dispatch table entry of one method. Array and StructArray
// only affect how the methods covered by the entry are named.
type Entry struct {
	Name        string
	Array       *Array
	StructArray *StructArray
	Decoder     Decoder
}

func (e *Entry) span() uint32 {
	switch {
	case e.StructArray != nil:
		return e.StructArray.Stride * e.StructArray.Count
	case e.Array != nil:
		return e.Array.Stride * e.Array.Count
	}
	return 4
}

// name returns the name of the method at offset off from the entry, or
// false if off is outside of the entry.
func (e *Entry) name(off uint32) (string, bool) {
	if off >= e.span() {
		return "", false
	}
	switch {
	case e.StructArray != nil:
		sa := e.StructArray
		if sa.Stride == 0 || sa.FieldSize == 0 {
			return "", false
		}
		i, rem := off/sa.Stride, off%sa.Stride
		k := rem / sa.FieldSize
		if k >= sa.FieldCount {
			return "", false
		}
		return fmt.Sprintf("%s[%d][%d]", e.Name, i, k), true
	case e.Array != nil:
		if e.Array.Stride == 0 {
			return "", false
		}
		return fmt.Sprintf("%s[%d]", e.Name, off/e.Array.Stride), true
	}
	return e.Name, true
}

// Table maps a class and a method offset to the method entry.
type Table map[uint32]map[uint32]*Entry

// Lookup returns the entry that covers the op method of the class and the
// name of the method. Array entries cover the methods following the base
// method.
func (t Table) Lookup(class, op uint32) (*Entry, string, bool) {
	ops := t[class]
	if e := ops[op]; e != nil {
		if e.Array == nil && e.StructArray == nil {
			return e, e.Name, true
		}
		name, _ := e.name(0)
		return e, name, true
	}
	var (
		best     *Entry
		bestBase uint32
	)
	for base, e := range ops {
		if base > op || e.Array == nil && e.StructArray == nil {
			continue
		}
		if best == nil || base > bestBase {
			if _, ok := e.name(op - base); ok {
				best, bestBase = e, base
			}
		}
	}
	if best == nil {
		return nil, "", false
	}
	name, _ := best.name(op - bestBase)
	return best, name, true
}

// Decode returns the description of one method call in the form
// NAME(PARAM).
func (t Table) Decode(class, op, param uint32) string {
	e, name, ok := t.Lookup(class, op)
	if !ok {
		return fmt.Sprintf("0x%X:0x%X(0x%X)", class, op, param)
	}
	d := e.Decoder
	if d == nil {
		d = Passthrough
	}
	return name + "(" + d.Decode(class, op, param) + ")"
}
