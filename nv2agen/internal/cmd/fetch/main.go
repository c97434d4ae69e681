// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fetch

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/embeddedgo/nvtools/nv2agen/internal/pipeline"
	"github.com/embeddedgo/nvtools/nv2agen/internal/util"
)

const Descr = "download the register headers into the cache"

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
	fs.Parse(args)

	p, _ := sf.Pipeline()
	srcs := pipeline.Sources(fs.Args())
	_, err := p.Fetcher.GetAll(context.Background(), srcs)
	util.FatalErr("", err)
	for _, src := range srcs {
		fmt.Println(p.Fetcher.Path(src))
	}
}
