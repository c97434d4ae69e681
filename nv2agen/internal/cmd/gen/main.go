// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/embeddedgo/nvtools/nv2agen/internal/emit"
	"github.com/embeddedgo/nvtools/nv2agen/internal/pipeline"
	"github.com/embeddedgo/nvtools/nv2agen/internal/util"
	"github.com/embeddedgo/nvtools/synth"
)

const Descr = "generate the Go tables that decode NV2A methods"

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
	out := fs.String("o", "", "write the generated source to `file` instead of stdout")
	pkg := fs.String("pkg", "nv2a", "package `name` of the generated source")
	imp := fs.String("import", emit.DecodeImport, "import `path` of the decode package")
	fs.Parse(args)

	p, log := sf.Pipeline()
	srcs := pipeline.Sources(fs.Args())
	t, err := p.Run(context.Background(), srcs)
	util.FatalErr("", err)
	r := synth.Synthesize(t, synth.NV2A())
	log.Info(
		"synthesized",
		"constants", len(r.Constants), "names", len(r.Names),
		"decoders", len(r.Defs),
	)
	for _, name := range r.Unregistered() {
		log.Debug("bespoke routine not registered, passing through", "routine", name)
	}
	e, err := emit.New()
	util.FatalErr("emit", err)
	var buf bytes.Buffer
	err = e.Render(&buf, emit.NewContext(*pkg, *imp, srcs, r))
	util.FatalErr("emit", err)
	if *out == "" {
		_, err = os.Stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(*out, buf.Bytes(), 0o644)
	}
	util.FatalErr("", err)
}
