// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synth derives the decoding artifacts from a command tree: the flat
// constants, the method name map, the dispatch table and the decoders
// synthesized from the inferred hierarchy.
package synth

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/embeddedgo/nvtools/cmdtree"
	"github.com/embeddedgo/nvtools/decode"
	"github.com/embeddedgo/nvtools/hdr"
)

type Const struct {
	Name  string `json:"name"`
	Value uint32 `json:"value"`
}

// Key identifies a method: the class and the method offset within it.
type Key struct {
	Class uint32 `json:"class"`
	Op    uint32 `json:"op"`
}

type Name struct {
	Key
	Name string `json:"name"`
}

// Kind selects the decoder of a dispatch table entry.
type Kind int

const (
	Passthrough Kind = iota
	Bespoke
	Float
	Bool
	Packed
	Synthesized
)

var kindNames = [...]string{
	Passthrough: "passthrough",
	Bespoke:     "bespoke",
	Float:       "float",
	Bool:        "bool",
	Packed:      "packed",
	Synthesized: "synthesized",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Op is one entry of the dispatch table.
type Op struct {
	Op          uint32              `json:"op"`
	Name        string              `json:"name"`
	Array       *decode.Array       `json:"array,omitempty"`
	StructArray *decode.StructArray `json:"structArray,omitempty"`
	Kind        Kind                `json:"kind"`
	Ref         string              `json:"ref,omitempty"` // bespoke routine or synthesized decoder name
	Packed      *decode.Packed      `json:"packed,omitempty"`
}

type Class struct {
	Class uint32 `json:"class"`
	Ops   []*Op  `json:"ops"`
}

// Def is a synthesized decoder. Exactly one of Values and Fields is set.
type Def struct {
	Func   string         `json:"func"`
	Cmd    string         `json:"cmd"`
	Values decode.Values  `json:"values,omitempty"`
	Fields decode.Bitmask `json:"fields,omitempty"`
}

// Decoder returns the interpreter of d.
func (d *Def) Decoder() decode.Decoder {
	if d.Fields != nil {
		return d.Fields
	}
	return d.Values
}

type Result struct {
	Constants []Const  `json:"constants"`
	Names     []Name   `json:"names"`
	Dispatch  []*Class `json:"dispatch"`
	Defs      []*Def   `json:"defs"`
}

// Synthesize derives all artifacts from t. The result depends only on the
// content of t and cfg.
func Synthesize(t *cmdtree.Tree, cfg *Config) *Result {
	fns := funcNames(t, cfg)
	return &Result{
		Constants: constants(t),
		Names:     names(t, cfg),
		Dispatch:  dispatch(t, cfg, fns),
		Defs:      defs(t, fns),
	}
}

func constants(t *cmdtree.Tree) []Const {
	var (
		cs   []Const
		seen = make(map[string]bool)
	)
	add := func(s hdr.Symbol) {
		if !s.Resolved || seen[s.Name] {
			return
		}
		seen[s.Name] = true
		cs = append(cs, Const{s.Name, s.Value})
	}
	for _, name := range t.Names() {
		n := t.Node(name)
		add(n.Cmd)
		for _, v := range n.ChildValues() {
			c := n.Children[v]
			add(c.Cmd)
			for _, gv := range decode.SortedKeys(c.Grandchildren) {
				add(c.Grandchildren[gv])
			}
		}
	}
	slices.SortFunc(cs, func(a, b Const) int { return strings.Compare(a.Name, b.Name) })
	return cs
}

// ClassOf returns the class encoded in the first token of name, that is the
// hex number that follows prefix.
func ClassOf(name, prefix string) (uint32, bool) {
	tok, _, _ := strings.Cut(name, "_")
	if !strings.HasPrefix(tok, prefix) {
		return 0, false
	}
	c, err := strconv.ParseUint(tok[len(prefix):], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(c), true
}

// methods groups the resolved top-level commands by class and offset. Every
// group is sorted by name.
func methods(t *cmdtree.Tree, prefix string) map[Key][]*cmdtree.Node {
	m := make(map[Key][]*cmdtree.Node)
	for _, name := range t.Names() {
		n := t.Node(name)
		if !n.Cmd.Resolved {
			continue
		}
		class, ok := ClassOf(name, prefix)
		if !ok {
			continue
		}
		k := Key{class, n.Cmd.Value}
		m[k] = append(m[k], n)
	}
	for _, ns := range m {
		slices.SortFunc(ns, func(a, b *cmdtree.Node) int {
			return strings.Compare(a.Cmd.Name, b.Cmd.Name)
		})
	}
	return m
}

func sortedKeys[V any](m map[Key]V) []Key {
	ks := make([]Key, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.SortFunc(ks, func(a, b Key) int {
		if c := cmp.Compare(a.Class, b.Class); c != 0 {
			return c
		}
		return cmp.Compare(a.Op, b.Op)
	})
	return ks
}

func names(t *cmdtree.Tree, cfg *Config) []Name {
	m := make(map[Key]string)
	for k, ns := range methods(t, cfg.ClassPrefix) {
		m[k] = ns[0].Cmd.Name
	}
	for k, name := range cfg.Names {
		m[k] = name
	}
	ns := make([]Name, 0, len(m))
	for _, k := range sortedKeys(m) {
		ns = append(ns, Name{k, m[k]})
	}
	return ns
}

func dispatch(t *cmdtree.Tree, cfg *Config, fns map[string]string) []*Class {
	var classes []*Class
	ms := methods(t, cfg.ClassPrefix)
	for _, k := range sortedKeys(ms) {
		n := ms[k][0]
		if len(classes) == 0 || classes[len(classes)-1].Class != k.Class {
			classes = append(classes, &Class{Class: k.Class})
		}
		c := classes[len(classes)-1]
		c.Ops = append(c.Ops, selectDecoder(n, cfg, fns))
	}
	return classes
}

func selectDecoder(n *cmdtree.Node, cfg *Config, fns map[string]string) *Op {
	name := n.Cmd.Name
	op := &Op{Op: n.Cmd.Value, Name: name}
	if r, ok := cfg.Bespoke[name]; ok {
		op.Kind, op.Ref = Bespoke, r
	} else if cfg.Float[name] {
		op.Kind = Float
	} else if cfg.Bool[name] {
		op.Kind = Bool
	} else if p, ok := cfg.Packed[name]; ok {
		op.Kind, op.Packed = Packed, &p
	} else if len(n.Children) != 0 {
		op.Kind, op.Ref = Synthesized, fns[name]
	}
	if sa, ok := cfg.StructArrays[name]; ok {
		op.StructArray = &sa
	} else if a, ok := cfg.Arrays[name]; ok {
		op.Array = &a
	}
	return op
}

// FuncName returns the base name of the decoder synthesized for the command.
func FuncName(cmd string) string {
	var sb strings.Builder
	sb.WriteString("Parse")
	for _, p := range strings.Split(cmd, "_") {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(strings.ToLower(p[1:]))
	}
	return sb.String()
}

// funcNames names the synthesized decoder of every command that has children
// and no bespoke routine. Commands whose names give the same FuncName get
// a numeric suffix, in name order.
func funcNames(t *cmdtree.Tree, cfg *Config) map[string]string {
	names := t.Names()
	slices.Sort(names)
	fns := make(map[string]string)
	used := make(map[string]bool)
	for _, name := range names {
		if len(t.Node(name).Children) == 0 {
			continue
		}
		if _, ok := cfg.Bespoke[name]; ok {
			continue
		}
		fn := FuncName(name)
		for i := 2; used[fn]; i++ {
			fn = FuncName(name) + strconv.Itoa(i)
		}
		used[fn] = true
		fns[name] = fn
	}
	return fns
}

func defs(t *cmdtree.Tree, fns map[string]string) []*Def {
	names := t.Names()
	slices.Sort(names)
	var ds []*Def
	for _, name := range names {
		fn, ok := fns[name]
		if !ok {
			continue
		}
		n := t.Node(name)
		d := &Def{Func: fn, Cmd: name}
		if n.HasGrandchildren() {
			d.Fields = bitmask(n)
		} else {
			d.Values = valueSelector(n)
		}
		ds = append(ds, d)
	}
	return ds
}

func shortName(name, parent string) string {
	if s, ok := strings.CutPrefix(name, parent+"_"); ok {
		return s
	}
	return name
}

func valueSelector(n *cmdtree.Node) decode.Values {
	vs := make(decode.Values, len(n.Children))
	for v, c := range n.Children {
		vs[v] = shortName(c.Cmd.Name, n.Cmd.Name)
	}
	return vs
}

func bitmask(n *cmdtree.Node) decode.Bitmask {
	var b decode.Bitmask
	for _, v := range n.ChildValues() {
		c := n.Children[v]
		f := &decode.Field{
			Label: strings.ToLower(shortName(c.Cmd.Name, n.Cmd.Name)),
			Mask:  v,
		}
		if c.HasGrandchildren() {
			f.Values = make(map[uint32]string, len(c.Grandchildren))
			for gv, g := range c.Grandchildren {
				f.Values[gv] = fieldValue(f.Label, g.Name, c.Cmd.Name, n.Cmd.Name)
			}
		}
		b = append(b, f)
	}
	return b
}

// fieldValue returns the label:value fragment for the grandchild gname.
// Grandchildren named after their field drop the field name. Others (set by
// an override) drop the command name and turn their first underscore into
// the separator.
func fieldValue(label, gname, child, cmd string) string {
	if s, ok := strings.CutPrefix(gname, child+"_"); ok {
		return label + ":" + strings.ToLower(s)
	}
	s := shortName(gname, cmd)
	return strings.ToLower(strings.Replace(s, "_", ":", 1))
}
