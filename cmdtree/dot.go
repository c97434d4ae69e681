// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdtree

import (
	"slices"

	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"
)

// Graph returns the hierarchy as a graph with parent -> child edges. Nodes
// follow the tree order, children and grandchildren sorted by value.
func (t *Tree) Graph() *lattice.Graph {
	g := &lattice.Graph{}
	for _, name := range t.names {
		n := t.nodes[name]
		g.Nodes = append(g.Nodes, name)
		for _, v := range n.ChildValues() {
			c := n.Children[v]
			g.Nodes = append(g.Nodes, c.Cmd.Name)
			g.Edges = append(g.Edges, lattice.Edge{Caller: name, Callee: c.Cmd.Name})
			gvs := make([]uint32, 0, len(c.Grandchildren))
			for gv := range c.Grandchildren {
				gvs = append(gvs, gv)
			}
			slices.Sort(gvs)
			for _, gv := range gvs {
				gc := c.Grandchildren[gv]
				g.Nodes = append(g.Nodes, gc.Name)
				g.Edges = append(g.Edges, lattice.Edge{Caller: c.Cmd.Name, Callee: gc.Name})
			}
		}
	}
	g.Dedup()
	return g
}

// DOT renders the hierarchy in the Graphviz DOT language.
func DOT(t *Tree, title string) string {
	return render.DOT(t.Graph(), title)
}
