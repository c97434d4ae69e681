// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdtree infers the command / field / value hierarchy of a flat list
// of header symbols.
//
// The headers carry no explicit structure. A symbol is a child of the
// longest other symbol whose name is a prefix of its own name at an
// underscore boundary, unless an override says otherwise. Children are
// keyed by value, so a child without a resolved value is dropped. Only three
// levels are kept: command, child and grandchild.
package cmdtree

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/embeddedgo/nvtools/hdr"
)

// Overrides maps a symbol name to its parent name. An empty parent forces the
// symbol to be a top-level command.
type Overrides map[string]string

type Child struct {
	Cmd           hdr.Symbol
	Grandchildren map[uint32]hdr.Symbol
}

// HasGrandchildren reports whether the child has any value of its own.
func (c *Child) HasGrandchildren() bool {
	return len(c.Grandchildren) != 0
}

type Node struct {
	Cmd      hdr.Symbol
	Children map[uint32]*Child
}

// ChildValues returns the keys of n.Children in increasing order.
func (n *Node) ChildValues() []uint32 {
	vs := make([]uint32, 0, len(n.Children))
	for v := range n.Children {
		vs = append(vs, v)
	}
	slices.Sort(vs)
	return vs
}

// HasGrandchildren reports whether any child of n has grandchildren.
func (n *Node) HasGrandchildren() bool {
	for _, c := range n.Children {
		if c.HasGrandchildren() {
			return true
		}
	}
	return false
}

// Tree is the set of top-level commands in insertion order.
type Tree struct {
	names []string
	nodes map[string]*Node
}

func New() *Tree {
	return &Tree{nodes: make(map[string]*Node)}
}

func (t *Tree) Len() int { return len(t.names) }

// Names returns the command names in insertion order.
func (t *Tree) Names() []string { return slices.Clone(t.names) }

func (t *Tree) Node(name string) *Node { return t.nodes[name] }

// Add adds n to the tree unless a command with the same name is already
// there. It reports whether n was added.
func (t *Tree) Add(n *Node) bool {
	if _, ok := t.nodes[n.Cmd.Name]; ok {
		return false
	}
	t.names = append(t.names, n.Cmd.Name)
	t.nodes[n.Cmd.Name] = n
	return true
}

// Merge adds the commands of other that t does not have yet. Commands
// already in t are kept unchanged.
func (t *Tree) Merge(other *Tree, log *slog.Logger) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	for _, name := range other.names {
		if !t.Add(other.nodes[name]) {
			log.Debug("skipping duplicate command", "name", name)
		}
	}
}

// Parents returns the inferred child -> parent edges for syms.
func Parents(syms []hdr.Symbol, ov Overrides) map[string]string {
	parents, _ := inferParents(syms, ov)
	return parents
}

// inferParents also returns the names that could have a parent but match
// none.
func inferParents(syms []hdr.Symbol, ov Overrides) (parents map[string]string, orphans []string) {
	if len(syms) == 0 {
		return nil, nil
	}
	known := make(map[string]bool, len(syms))
	minLen := -1
	for _, s := range syms {
		known[s.Name] = true
		if n := strings.Count(s.Name, "_") + 1; minLen < 0 || n < minLen {
			minLen = n
		}
	}
	parents = make(map[string]string)
	for _, s := range syms {
		toks := s.Tokens()
		if len(toks) <= minLen {
			continue
		}
		if p, ok := ov[s.Name]; ok {
			if p != "" {
				parents[s.Name] = p
			}
			continue
		}
		for i := len(toks) - 1; i >= minLen; i-- {
			p := strings.Join(toks[:i], "_")
			if known[p] {
				parents[s.Name] = p
				break
			}
		}
		if _, ok := parents[s.Name]; !ok {
			orphans = append(orphans, s.Name)
		}
	}
	return parents, orphans
}

// Build infers the hierarchy of the symbols extracted from one header. Of
// two children (grandchildren) with the same value the later one in source
// order is kept.
func Build(syms []hdr.Symbol, ov Overrides, log *slog.Logger) *Tree {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	var (
		order  []string
		byName = make(map[string]hdr.Symbol, len(syms))
	)
	for _, s := range syms {
		if _, ok := byName[s.Name]; !ok {
			order = append(order, s.Name)
		}
		byName[s.Name] = s
	}
	parents, orphans := inferParents(syms, ov)
	for _, name := range orphans {
		log.Debug("no parent inferred", "name", name)
	}
	kids := make(map[string][]string)
	for _, name := range order {
		p, ok := parents[name]
		if !ok {
			continue
		}
		if _, ok := byName[p]; !ok {
			log.Warn("override names unknown parent", "name", name, "parent", p)
		}
		kids[p] = append(kids[p], name)
	}

	t := New()
	for _, name := range order {
		if _, ok := parents[name]; ok {
			continue
		}
		n := &Node{Cmd: byName[name], Children: make(map[uint32]*Child)}
		for _, cname := range kids[name] {
			cs := byName[cname]
			if !cs.Resolved {
				log.Debug("dropping child without value", "name", cname)
				continue
			}
			if prev, ok := n.Children[cs.Value]; ok {
				log.Debug(
					"child value collision", "name", cname,
					"replaced", prev.Cmd.Name,
				)
			}
			c := &Child{Cmd: cs, Grandchildren: make(map[uint32]hdr.Symbol)}
			for _, gname := range kids[cname] {
				gs := byName[gname]
				if !gs.Resolved {
					log.Debug("dropping grandchild without value", "name", gname)
					continue
				}
				if prev, ok := c.Grandchildren[gs.Value]; ok {
					log.Debug(
						"grandchild value collision", "name", gname,
						"replaced", prev.Name,
					)
				}
				c.Grandchildren[gs.Value] = gs
				if len(kids[gname]) != 0 {
					log.Debug("dropping symbols nested too deep", "parent", gname, "names", kids[gname])
				}
			}
			n.Children[cs.Value] = c
		}
		t.Add(n)
	}
	return t
}
