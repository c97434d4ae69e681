// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"slices"
	"strconv"

	"github.com/embeddedgo/nvtools/decode"
)

// Table builds the dispatch table that decodes with the synthesized
// decoders in process, the same way the generated source does.
func (r *Result) Table() decode.Table {
	defs := make(map[string]*Def, len(r.Defs))
	for _, d := range r.Defs {
		defs[d.Func] = d
	}
	t := make(decode.Table, len(r.Dispatch))
	for _, c := range r.Dispatch {
		ops := make(map[uint32]*decode.Entry, len(c.Ops))
		for _, op := range c.Ops {
			ops[op.Op] = &decode.Entry{
				Name:        op.Name,
				Array:       op.Array,
				StructArray: op.StructArray,
				Decoder:     op.decoder(defs),
			}
		}
		t[c.Class] = ops
	}
	return t
}

// Unregistered returns the sorted names of the bespoke routines referenced by
// the dispatch table but not registered in the decode package. Their methods
// decode as passthrough.
func (r *Result) Unregistered() []string {
	var names []string
	for _, c := range r.Dispatch {
		for _, op := range c.Ops {
			if op.Kind != Bespoke {
				continue
			}
			if _, ok := decode.Lookup(op.Ref); !ok {
				names = append(names, op.Ref)
			}
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func (op *Op) decoder(defs map[string]*Def) decode.Decoder {
	switch op.Kind {
	case Bespoke:
		return decode.Bespoke(op.Ref)
	case Float:
		return decode.Float
	case Bool:
		return decode.Bool
	case Packed:
		return *op.Packed
	case Synthesized:
		if d := defs[op.Ref]; d != nil {
			return d.Decoder()
		}
	}
	return decode.Passthrough
}

// Expr returns the Go expression of the op decoder in the generated source.
// pkg is the name under which the decode package is imported.
func (op *Op) Expr(pkg string) string {
	switch op.Kind {
	case Bespoke:
		return pkg + ".Bespoke(" + strconv.Quote(op.Ref) + ")"
	case Float:
		return pkg + ".Float"
	case Bool:
		return pkg + ".Bool"
	case Packed:
		return pkg + ".Packed{Low: " + strconv.Quote(op.Packed.Low) +
			", High: " + strconv.Quote(op.Packed.High) + "}"
	case Synthesized:
		return op.Ref
	}
	return pkg + ".Passthrough"
}
