// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/embeddedgo/nvtools/cmdtree"
	"github.com/embeddedgo/nvtools/decode"
	"github.com/embeddedgo/nvtools/nv2agen/internal/pipeline"
	"github.com/embeddedgo/nvtools/nv2agen/internal/util"
)

const Descr = "print the inferred command hierarchy"

var ErrFormat = errors.New("unknown format")

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] [SOURCE...]\nOptions:\n",
			cmd,
		)
		fs.PrintDefaults()
	}
	var sf pipeline.Flags
	sf.Register(fs)
	format := fs.String("format", "text", "output `format`: text, dot or dump")
	fs.Parse(args)

	p, _ := sf.Pipeline()
	t, err := p.Run(context.Background(), pipeline.Sources(fs.Args()))
	util.FatalErr("", err)
	w := bufio.NewWriter(os.Stdout)
	err = Print(w, t, *format)
	if err == nil {
		err = w.Flush()
	}
	util.FatalErr("", err)
}

// Print writes t to w in the given format.
func Print(w io.Writer, t *cmdtree.Tree, format string) error {
	switch format {
	case "text":
		return printText(w, t)
	case "dot":
		_, err := io.WriteString(w, cmdtree.DOT(t, "nv2a"))
		return err
	case "dump":
		cs := spew.ConfigState{
			Indent:                  "  ",
			SortKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		for _, name := range t.Names() {
			cs.Fdump(w, t.Node(name))
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrFormat, format)
}

func printText(w io.Writer, t *cmdtree.Tree) error {
	for _, name := range t.Names() {
		n := t.Node(name)
		if _, err := fmt.Fprintln(w, n.Cmd); err != nil {
			return err
		}
		for _, v := range n.ChildValues() {
			c := n.Children[v]
			fmt.Fprintf(w, "\t%v\n", c.Cmd)
			for _, gv := range decode.SortedKeys(c.Grandchildren) {
				fmt.Fprintf(w, "\t\t%v\n", c.Grandchildren[gv])
			}
		}
	}
	return nil
}
