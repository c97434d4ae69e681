// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/embeddedgo/nvtools/nv2agen/internal/pipeline"
	"github.com/embeddedgo/nvtools/nv2agen/internal/util"
	"github.com/embeddedgo/nvtools/synth"
)

const Descr = "decode a single NV2A method call"

func Main(cmd string, args []string) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\n  %s [OPTIONS] CLASS OP PARAM [SOURCE...]\nOptions:\n",
			cmd,
		)
		fs.PrintDefaults()
	}
	var sf pipeline.Flags
	sf.Register(fs)
	fs.Parse(args)
	call, err := parseCall(fs.Args())
	if err != nil {
		fs.Usage()
		util.Fatal("%s: %v", cmd, err)
	}

	p, _ := sf.Pipeline()
	t, err := p.Run(context.Background(), pipeline.Sources(fs.Args()[3:]))
	util.FatalErr("", err)
	tab := synth.Synthesize(t, synth.NV2A()).Table()
	fmt.Println(tab.Decode(call[0], call[1], call[2]))
}

var errArgs = errors.New("CLASS, OP and PARAM required")

// parseCall parses the CLASS OP PARAM arguments of a method call.
func parseCall(args []string) (call [3]uint32, err error) {
	if len(args) < 3 {
		return call, errArgs
	}
	for i := range call {
		if call[i], err = util.ParseUint32(args[i]); err != nil {
			return call, fmt.Errorf("bad %s: %w", [3]string{"CLASS", "OP", "PARAM"}[i], err)
		}
	}
	return call, nil
}
