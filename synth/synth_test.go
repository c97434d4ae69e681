// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/embeddedgo/nvtools/cmdtree"
	"github.com/embeddedgo/nvtools/decode"
	"github.com/embeddedgo/nvtools/hdr"
)

const sample = `
#define NV097_SET_BLEND_ENABLE 0x00000304
#define NV097_SET_COMPOSITE 0x00000400
#define NV097_SET_COMPOSITE_MASK_A 0x0F
#define NV097_SET_COMPOSITE_MASK_B 0xF0
#define NV097_SET_COMPOSITE_MASK_B_FOO 0x10
#define NV097_SET_COMPOSITE_MASK_B_BAR 0x20
#define NV097_SET_FOG_MODE 0x0000029C
#define NV097_SET_FOG_MODE_V_LINEAR 0x2601
#define NV097_SET_FOG_MODE_V_EXP 0x800
#define NV097_SET_FOG_START 0x0000029C
#define NV097_SET_CLEAR_RECT_HORIZONTAL 0x00001D98
#define NV097_SET_VIEWPORT_SCALE 0x00000AF0
#define NV097_SET_MODEL_VIEW_MATRIX 0x00000480
#define NV097_SET_COLOR_MASK 0x00000358
#define NV097_SET_COLOR_MASK_RED_WRITE_ENABLE (1 << 16)
#define NV097_SET_UNKNOWN 0x00000100
#define NV062_SET_PITCH 0x00000304
`

func build(t *testing.T) *cmdtree.Tree {
	t.Helper()
	syms := hdr.Extract([]byte(sample), hdr.NV2A(), nil)
	return cmdtree.Build(syms, nil, nil)
}

func testConfig() *Config {
	cfg := NV2A()
	cfg.Names = map[Key]string{{0x97, 0x100}: "NV097_MANUAL"}
	return cfg
}

func TestConstantsSortedUnique(t *testing.T) {
	r := Synthesize(build(t), testConfig())
	if len(r.Constants) == 0 {
		t.Fatal("no constants")
	}
	seen := make(map[string]bool)
	for i, c := range r.Constants {
		if seen[c.Name] {
			t.Errorf("duplicate constant %s", c.Name)
		}
		seen[c.Name] = true
		if i > 0 && r.Constants[i-1].Name >= c.Name {
			t.Errorf("constants not sorted at %s", c.Name)
		}
	}
	for _, name := range []string{
		"NV097_SET_COMPOSITE_MASK_B_FOO",
		"NV097_SET_FOG_MODE_V_EXP",
		"NV062_SET_PITCH",
	} {
		if !seen[name] {
			t.Errorf("constant %s missing", name)
		}
	}
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		name  string
		class uint32
		ok    bool
	}{
		{"NV097_SET_BLEND_ENABLE", 0x97, true},
		{"NV062_SET_PITCH", 0x62, true},
		{"NV09F_SIZE", 0x9F, true},
		{"NVXYZ_FOO", 0, false},
		{"FOO_BAR", 0, false},
	}
	for _, c := range cases {
		class, ok := ClassOf(c.name, "NV")
		if class != c.class || ok != c.ok {
			t.Errorf("ClassOf(%q) = %#x, %v, want %#x, %v", c.name, class, ok, c.class, c.ok)
		}
	}
}

func TestNames(t *testing.T) {
	r := Synthesize(build(t), testConfig())
	m := make(map[Key]string)
	for _, n := range r.Names {
		m[n.Key] = n.Name
	}
	// FOG_MODE and FOG_START share the offset; the smallest name wins.
	if got := m[Key{0x97, 0x29C}]; got != "NV097_SET_FOG_MODE" {
		t.Errorf("0x97:0x29C = %q", got)
	}
	if got := m[Key{0x97, 0x100}]; got != "NV097_MANUAL" {
		t.Errorf("manual name lost: %q", got)
	}
	if got := m[Key{0x62, 0x304}]; got != "NV062_SET_PITCH" {
		t.Errorf("0x62:0x304 = %q", got)
	}
	if !slices.IsSortedFunc(r.Names, func(a, b Name) int {
		if a.Class != b.Class {
			return int(a.Class) - int(b.Class)
		}
		return int(a.Op) - int(b.Op)
	}) {
		t.Error("names not sorted by key")
	}
}

func findOp(r *Result, class, op uint32) *Op {
	for _, c := range r.Dispatch {
		if c.Class != class {
			continue
		}
		for _, o := range c.Ops {
			if o.Op == op {
				return o
			}
		}
	}
	return nil
}

func TestDispatchPriority(t *testing.T) {
	r := Synthesize(build(t), testConfig())
	cases := []struct {
		class, op uint32
		kind      Kind
		ref       string
	}{
		{0x97, 0x304, Bool, ""},
		{0x97, 0x400, Synthesized, "ParseNv097SetComposite"},
		{0x97, 0x29C, Synthesized, "ParseNv097SetFogMode"},
		{0x97, 0x1D98, Packed, ""},
		{0x97, 0xAF0, Float, ""},
		{0x97, 0x358, Bespoke, "ColorMask"},
		{0x97, 0x100, Passthrough, ""},
		{0x62, 0x304, Packed, ""},
	}
	for _, c := range cases {
		op := findOp(r, c.class, c.op)
		if op == nil {
			t.Errorf("%#x:%#x: no dispatch entry", c.class, c.op)
			continue
		}
		if op.Kind != c.kind || op.Ref != c.ref {
			t.Errorf(
				"%#x:%#x: got %v %q, want %v %q",
				c.class, c.op, op.Kind, op.Ref, c.kind, c.ref,
			)
		}
	}
	if op := findOp(r, 0x97, 0x1D98); op.Packed == nil || op.Packed.Low != "Min" {
		t.Errorf("packed labels: %+v", op.Packed)
	}
}

func TestArrayWrapping(t *testing.T) {
	r := Synthesize(build(t), testConfig())
	vs := findOp(r, 0x97, 0xAF0)
	if vs.Array == nil || *vs.Array != (decode.Array{Stride: 4, Count: 4}) {
		t.Errorf("viewport scale array: %+v", vs.Array)
	}
	if vs.Kind != Float {
		t.Errorf("array changed the decoder: %v", vs.Kind)
	}
	mv := findOp(r, 0x97, 0x480)
	if mv.StructArray == nil || mv.Array != nil {
		t.Fatalf("model view matrix: %+v %+v", mv.StructArray, mv.Array)
	}

	tab := r.Table()
	if got := tab.Decode(0x97, 0xAF8, 0x3F800000); got != "NV097_SET_VIEWPORT_SCALE[2](1)" {
		t.Errorf("array element: %s", got)
	}
	if got := tab.Decode(0x97, 0x480+64+8, 0); got != "NV097_SET_MODEL_VIEW_MATRIX[1][2](0)" {
		t.Errorf("struct array element: %s", got)
	}
}

func TestCompositeDecoder(t *testing.T) {
	r := Synthesize(build(t), testConfig())
	var def *Def
	for _, d := range r.Defs {
		if d.Cmd == "NV097_SET_COMPOSITE" {
			def = d
		}
	}
	if def == nil {
		t.Fatal("no decoder for NV097_SET_COMPOSITE")
	}
	if def.Fields == nil {
		t.Fatal("NV097_SET_COMPOSITE is not a bitmask")
	}
	got := def.Decoder().Decode(0x97, 0x400, 0x11)
	for _, want := range []string{"mask_a:0x1", "mask_b:foo"} {
		if !strings.Contains(got, want) {
			t.Errorf("decode(0x11) = %q, missing %q", got, want)
		}
	}
	if got := r.Table().Decode(0x97, 0x400, 0x23); got != "NV097_SET_COMPOSITE({mask_a:0x3, mask_b:bar})" {
		t.Errorf("table decode: %s", got)
	}
}

func TestValueSelector(t *testing.T) {
	r := Synthesize(build(t), testConfig())
	tab := r.Table()
	if got := tab.Decode(0x97, 0x29C, 0x800); got != "NV097_SET_FOG_MODE(V_EXP)" {
		t.Errorf("known value: %s", got)
	}
	if got := tab.Decode(0x97, 0x29C, 0x5); got != "NV097_SET_FOG_MODE(0x5?)" {
		t.Errorf("unknown value: %s", got)
	}
}

func TestBespokeHasNoDef(t *testing.T) {
	r := Synthesize(build(t), testConfig())
	for _, d := range r.Defs {
		if d.Cmd == "NV097_SET_COLOR_MASK" {
			t.Error("decoder synthesized for a bespoke command")
		}
	}
	if !slices.IsSortedFunc(r.Defs, func(a, b *Def) int { return strings.Compare(a.Cmd, b.Cmd) }) {
		t.Error("decoders not sorted")
	}
}

func TestDeterministic(t *testing.T) {
	a := Synthesize(build(t), testConfig())
	b := Synthesize(build(t), testConfig())
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs differ")
	}
}

func TestFuncName(t *testing.T) {
	if got := FuncName("NV097_SET_FOG_MODE"); got != "ParseNv097SetFogMode" {
		t.Errorf("FuncName = %s", got)
	}
}

func TestFuncNameCollision(t *testing.T) {
	tr := cmdtree.New()
	for i, name := range []string{"NV097_SET_A__B", "NV097_SET_A_B"} {
		v := []string{"V_FIRST", "V_SECOND"}[i]
		tr.Add(&cmdtree.Node{
			Cmd: hdr.Symbol{Name: name, Value: 0x100 + 4*uint32(i), Resolved: true},
			Children: map[uint32]*cmdtree.Child{
				1: {Cmd: hdr.Symbol{Name: name + "_" + v, Value: 1, Resolved: true}},
			},
		})
	}
	r := Synthesize(tr, testConfig())
	if len(r.Defs) != 2 || r.Defs[0].Func == r.Defs[1].Func {
		t.Fatalf("decoder names not unique: %+v", r.Defs)
	}
	if got := findOp(r, 0x97, 0x100).Ref; got != "ParseNv097SetAB2" {
		t.Errorf("NV097_SET_A__B decoder = %s", got)
	}
	tab := r.Table()
	if got := tab.Decode(0x97, 0x100, 1); got != "NV097_SET_A__B(V_FIRST)" {
		t.Errorf("got %s", got)
	}
	if got := tab.Decode(0x97, 0x104, 1); got != "NV097_SET_A_B(V_SECOND)" {
		t.Errorf("got %s", got)
	}
}

func TestUnregistered(t *testing.T) {
	r := &Result{Dispatch: []*Class{{
		Class: 0x97,
		Ops: []*Op{
			{Op: 0x290, Kind: Bespoke, Ref: "Control0"},
			{Op: 0x358, Kind: Bespoke, Ref: "ColorMask"},
			{Op: 0x1E00, Kind: Bespoke, Ref: "Control0"},
			{Op: 0x304, Kind: Bool},
		},
	}}}
	if got := r.Unregistered(); !slices.Equal(got, []string{"Control0"}) {
		t.Errorf("got %v", got)
	}
}

func TestExpandSequential(t *testing.T) {
	got := ExpandSequential(0x97, 0x1880, 4, []string{"A", "B", "C"})
	want := map[Key]string{
		{0x97, 0x1880}: "A[0]",
		{0x97, 0x1884}: "B[1]",
		{0x97, 0x1888}: "C[2]",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNV2ANames(t *testing.T) {
	names := NV2ANames()
	cases := map[Key]string{
		{0x97, 0x1880}: "NV097_SET_VERTEX_DATA2F_M[pos][x][0]",
		{0x97, 0x1884}: "NV097_SET_VERTEX_DATA2F_M[pos][y][1]",
		{0x97, 0x1900}: "NV097_SET_VERTEX_DATA2S[pos][x|y][0]",
		{0x97, 0x1984}: "NV097_SET_VERTEX_DATA4S_M[pos][z|w][1]",
		{0x97, 0x1A0C}: "NV097_SET_VERTEX_DATA4F_M[pos][w][3]",
		{0x97, 0x1940}: "NV097_SET_VERTEX_DATA4UB[pos]",
		{0x97, 0x1720}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__POS",
	}
	for k, want := range cases {
		if got := names[k]; got != want {
			t.Errorf("%#x:%#x = %q, want %q", k.Class, k.Op, got, want)
		}
	}
	if !reflect.DeepEqual(names, NV2ANames()) {
		t.Error("NV2ANames is not pure")
	}
}
