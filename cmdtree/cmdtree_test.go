// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdtree

import (
	"reflect"
	"strings"
	"testing"

	"github.com/embeddedgo/nvtools/hdr"
)

func sym(name string, v uint32) hdr.Symbol {
	return hdr.Symbol{Name: name, Value: v, Resolved: true}
}

func TestLongestPrefixWins(t *testing.T) {
	syms := []hdr.Symbol{
		sym("A_B_C_D", 4),
		sym("A_B", 1),
		sym("A_B_C", 3),
	}
	parents := Parents(syms, nil)
	if got := parents["A_B_C_D"]; got != "A_B_C" {
		t.Errorf("parent of A_B_C_D = %q, want A_B_C", got)
	}
	if got := parents["A_B_C"]; got != "A_B" {
		t.Errorf("parent of A_B_C = %q, want A_B", got)
	}
	if _, ok := parents["A_B"]; ok {
		t.Errorf("A_B has a parent")
	}
}

func TestOverridePrecedence(t *testing.T) {
	syms := []hdr.Symbol{
		sym("NV097_SET_X", 0x100),
		sym("NV097_SET_X_MODE", 0x1),
		sym("NV097_SET_X_MODE_FAST", 0x2),
		sym("NV097_SET_X_ENABLE", 0x104),
	}
	ov := Overrides{
		"NV097_SET_X_MODE_FAST": "NV097_SET_X",
		"NV097_SET_X_ENABLE":    "",
	}
	parents := Parents(syms, ov)
	if got := parents["NV097_SET_X_MODE_FAST"]; got != "NV097_SET_X" {
		t.Errorf("override parent: got %q", got)
	}
	if p, ok := parents["NV097_SET_X_ENABLE"]; ok {
		t.Errorf("suppressed symbol has parent %q", p)
	}

	tr := Build(syms, ov, nil)
	if tr.Node("NV097_SET_X_ENABLE") == nil {
		t.Fatal("suppressed symbol is not top-level")
	}
	n := tr.Node("NV097_SET_X")
	if n == nil {
		t.Fatal("NV097_SET_X missing")
	}
	if c := n.Children[0x2]; c == nil || c.Cmd.Name != "NV097_SET_X_MODE_FAST" {
		t.Errorf("override child missing: %v", n.Children)
	}
}

func TestBuildLevels(t *testing.T) {
	syms := []hdr.Symbol{
		sym("NV097_SET_CONTROL0", 0x290),
		sym("NV097_SET_CONTROL0_STENCIL_WRITE_ENABLE", 0x1),
		sym("NV097_SET_CONTROL0_Z_FORMAT", 0x1000),
		sym("NV097_SET_CONTROL0_Z_FORMAT_FIXED", 0),
		sym("NV097_SET_CONTROL0_Z_FORMAT_FLOAT", 0x1000),
		sym("NV097_SET_CONTROL0_Z_FORMAT_FLOAT_X", 0x7),
		{Name: "NV097_SET_CONTROL0_BROKEN", Raw: "?"},
		{Name: "NV097_SET_CONTROL0_BROKEN_CHILD", Value: 0x4, Resolved: true},
		sym("NV097_SET_BLEND_ENABLE", 0x304),
	}
	tr := Build(syms, nil, nil)

	if got, want := tr.Names(), []string{"NV097_SET_CONTROL0", "NV097_SET_BLEND_ENABLE"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("top level = %v, want %v", got, want)
	}
	n := tr.Node("NV097_SET_CONTROL0")
	if got, want := n.ChildValues(), []uint32{0x1, 0x1000}; !reflect.DeepEqual(got, want) {
		t.Fatalf("child values = %v, want %v", got, want)
	}
	zf := n.Children[0x1000]
	if len(zf.Grandchildren) != 2 {
		t.Fatalf("grandchildren = %v", zf.Grandchildren)
	}
	if zf.Grandchildren[0x1000].Name != "NV097_SET_CONTROL0_Z_FORMAT_FLOAT" {
		t.Errorf("grandchild 0x1000 = %v", zf.Grandchildren[0x1000])
	}
	if !n.HasGrandchildren() {
		t.Error("HasGrandchildren = false")
	}
	if tr.Node("NV097_SET_BLEND_ENABLE").HasGrandchildren() {
		t.Error("leaf command has grandchildren")
	}
}

func TestBuildValueCollisionLaterWins(t *testing.T) {
	syms := []hdr.Symbol{
		sym("NV097_SET_FOG_MODE", 0x29C),
		sym("NV097_SET_FOG_MODE_V_LINEAR", 0x2601),
		sym("NV097_SET_FOG_MODE_V_EXP", 0x800),
		sym("NV097_SET_FOG_MODE_V_LINEAR_ALIAS", 0x2601),
		sym("NV097_SET_CONTROL0", 0x290),
		sym("NV097_SET_CONTROL0_Z_FORMAT", 0x1000),
		sym("NV097_SET_CONTROL0_Z_FORMAT_FIXED", 0),
		sym("NV097_SET_CONTROL0_Z_FORMAT_ZERO", 0),
	}
	ov := Overrides{"NV097_SET_FOG_MODE_V_LINEAR_ALIAS": "NV097_SET_FOG_MODE"}
	tr := Build(syms, ov, nil)
	fog := tr.Node("NV097_SET_FOG_MODE")
	if c := fog.Children[0x2601]; c == nil || c.Cmd.Name != "NV097_SET_FOG_MODE_V_LINEAR_ALIAS" {
		t.Errorf("child 0x2601 = %+v, want the later alias", c)
	}
	zf := tr.Node("NV097_SET_CONTROL0").Children[0x1000]
	if g := zf.Grandchildren[0]; g.Name != "NV097_SET_CONTROL0_Z_FORMAT_ZERO" {
		t.Errorf("grandchild 0 = %v, want the later one", g)
	}
}

func TestBuildRedefinedName(t *testing.T) {
	tr := Build([]hdr.Symbol{sym("NV097_SET_X", 0x100), sym("NV097_SET_X", 0x200)}, nil, nil)
	if tr.Len() != 1 || tr.Node("NV097_SET_X").Cmd.Value != 0x200 {
		t.Errorf("got %v", tr.Node("NV097_SET_X"))
	}
}

func TestBuildIdempotent(t *testing.T) {
	syms := hdr.Extract([]byte(sample), hdr.NV2A(), nil)
	a := Build(syms, NV2AOverrides(), nil)
	b := Build(syms, NV2AOverrides(), nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two builds of the same symbols differ")
	}
}

func TestMergeFirstWins(t *testing.T) {
	a := Build([]hdr.Symbol{sym("NAME", 1)}, nil, nil)
	b := Build([]hdr.Symbol{sym("NAME", 2), sym("OTHER", 3)}, nil, nil)
	a.Merge(b, nil)
	if got := a.Node("NAME").Cmd.Value; got != 1 {
		t.Errorf("NAME = %d, want 1", got)
	}
	if a.Node("OTHER") == nil {
		t.Error("OTHER not merged")
	}
	if got, want := a.Names(), []string{"NAME", "OTHER"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestMergeDuplicateSource(t *testing.T) {
	syms := hdr.Extract([]byte(sample), hdr.NV2A(), nil)

	once := New()
	once.Merge(Build(syms, NV2AOverrides(), nil), nil)

	twice := New()
	twice.Merge(Build(syms, NV2AOverrides(), nil), nil)
	twice.Merge(Build(syms, NV2AOverrides(), nil), nil)

	if !reflect.DeepEqual(once, twice) {
		t.Fatal("merging the same header twice changed the tree")
	}
}

func TestNV2AOverrides(t *testing.T) {
	syms := hdr.Extract([]byte(sample), hdr.NV2A(), nil)
	tr := Build(syms, NV2AOverrides(), nil)
	for _, name := range []string{
		"NV097_SET_TRANSFORM_PROGRAM",
		"NV097_SET_TRANSFORM_PROGRAM_LOAD",
		"NV062_SET_COLOR_FORMAT",
	} {
		if tr.Node(name) == nil {
			t.Errorf("%s is not top-level", name)
		}
	}
	cf := tr.Node("NV062_SET_COLOR_FORMAT")
	if c := cf.Children[0xB]; c == nil || c.Cmd.Name != "NV062_SET_COLOR_FORMAT_LE_X8R8G8B8_Z8R8G8B8" {
		t.Errorf("NV062_SET_COLOR_FORMAT children = %v", cf.Children)
	}
}

func TestExtras(t *testing.T) {
	ex := Extras()
	if n := ex.Node("NV097_SET_SWATH_WIDTH"); n == nil || n.Cmd.Value != 0x9F8 {
		t.Errorf("NV097_SET_SWATH_WIDTH = %v", n)
	}
	if n := ex.Node("NV097_SET_OCCLUDE_ZSTENCIL_EN"); n == nil || n.Cmd.Value != 0x1D84 {
		t.Errorf("NV097_SET_OCCLUDE_ZSTENCIL_EN = %v", n)
	}
}

func TestDOT(t *testing.T) {
	syms := hdr.Extract([]byte(sample), hdr.NV2A(), nil)
	tr := Build(syms, NV2AOverrides(), nil)
	g := tr.Graph()
	found := false
	for _, e := range g.Edges {
		if e.Caller == "NV062_SET_COLOR_FORMAT" && e.Callee == "NV062_SET_COLOR_FORMAT_LE_Y8" {
			found = true
		}
	}
	if !found {
		t.Errorf("edge NV062_SET_COLOR_FORMAT -> ..._LE_Y8 missing: %v", g.Edges)
	}
	if dot := DOT(tr, "pgraph"); !strings.Contains(dot, "NV062_SET_COLOR_FORMAT") {
		t.Errorf("DOT output lacks node names:\n%s", dot)
	}
}

const sample = `
#define NV062_SET_COLOR_FORMAT                             0x00000300
#define NV062_SET_COLOR_FORMAT_LE_Y8                       0x00000001
#define NV062_SET_COLOR_FORMAT_LE_X8R8G8B8                 0x00000007
#define NV062_SET_COLOR_FORMAT_LE_X8R8G8B8_Z8R8G8B8        0x0000000B
#define NV097_SET_TRANSFORM_PROGRAM                        0x00000B00
#define NV097_SET_TRANSFORM_PROGRAM_LOAD                   0x00001E9C
#define NV097_SET_STENCIL_OP_FAIL                          0x0000036C
#define NV097_SET_STENCIL_OP_V_KEEP                        0x00001E00
#define NV097_SET_STENCIL_OP_V_ZERO                        0x00000000
`
