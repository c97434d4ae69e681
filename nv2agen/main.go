// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Nv2agen collects the NV2A register definitions scattered over several
// public headers and generates the tables that decode NV2A methods.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/embeddedgo/nvtools/nv2agen/internal/cmd/decode"
	"github.com/embeddedgo/nvtools/nv2agen/internal/cmd/fetch"
	"github.com/embeddedgo/nvtools/nv2agen/internal/cmd/gen"
	"github.com/embeddedgo/nvtools/nv2agen/internal/cmd/tree"
)

type tool struct {
	descr string
	main  func(cmd string, args []string)
}

var tools = map[string]tool{
	"decode": {decode.Descr, decode.Main},
	"fetch":  {fetch.Descr, fetch.Main},
	"gen":    {gen.Descr, gen.Main},
	"tree":   {tree.Descr, tree.Main},
}

func printToolList() {
	names := slices.Sorted(maps.Keys(tools))
	maxLen := 0
	for _, k := range names {
		if maxLen < len(k) {
			maxLen = len(k)
		}
	}
	uw := os.Stderr
	uw.WriteString("Usage:\n  nv2agen COMMAND [ARGUMENTS]\n\n")
	uw.WriteString("Available commands:\n")
	for _, name := range names {
		fmt.Fprintf(uw, "  %*s  %s\n", maxLen, name, tools[name].descr)
	}
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "-h" {
		printToolList()
		return
	}
	tool, ok := tools[os.Args[1]]
	if !ok {
		printToolList()
		os.Exit(1)
	}
	tool.main(os.Args[1], os.Args[2:])
}
