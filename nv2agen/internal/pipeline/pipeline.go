// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline turns a list of header sources into one command tree.
package pipeline

import (
	"context"
	"flag"
	"log/slog"

	"github.com/embeddedgo/nvtools/cmdtree"
	"github.com/embeddedgo/nvtools/hdr"
	"github.com/embeddedgo/nvtools/nv2agen/internal/fetch"
	"github.com/embeddedgo/nvtools/nv2agen/internal/util"
)

type Pipeline struct {
	Fetcher   *fetch.Fetcher
	Rules     *hdr.Rules
	Overrides cmdtree.Overrides
	Extras    *cmdtree.Tree // merged after all sources, may be nil
	Log       *slog.Logger
}

// NV2A returns the pipeline for the NV2A headers.
func NV2A(f *fetch.Fetcher, log *slog.Logger) *Pipeline {
	return &Pipeline{
		Fetcher:   f,
		Rules:     hdr.NV2A(),
		Overrides: cmdtree.NV2AOverrides(),
		Extras:    cmdtree.Extras(),
		Log:       log,
	}
}

func (p *Pipeline) log() *slog.Logger {
	if p.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Log
}

// Run retrieves all srcs and returns their merged tree. Nothing is parsed
// unless every source was retrieved.
func (p *Pipeline) Run(ctx context.Context, srcs []string) (*cmdtree.Tree, error) {
	texts, err := p.Fetcher.GetAll(ctx, srcs)
	if err != nil {
		return nil, err
	}
	return p.Merge(srcs, texts), nil
}

// Merge builds the tree of every text and merges them in order, so the
// commands of earlier texts win.
func (p *Pipeline) Merge(srcs []string, texts [][]byte) *cmdtree.Tree {
	log := p.log()
	t := cmdtree.New()
	for i, text := range texts {
		lg := log.With("source", srcs[i])
		syms := hdr.Extract(text, p.Rules, lg)
		st := cmdtree.Build(syms, p.Overrides, lg)
		lg.Debug("parsed", "symbols", len(syms), "commands", st.Len())
		t.Merge(st, lg)
	}
	if p.Extras != nil {
		t.Merge(p.Extras, log.With("source", "extras"))
	}
	log.Info("merged sources", "sources", len(texts), "commands", t.Len())
	return t
}

// Flags holds the command line options of the commands that read sources.
type Flags struct {
	Update  bool
	Verbose bool
	Cache   string
}

func (f *Flags) Register(fs *flag.FlagSet) {
	fs.BoolVar(&f.Update, "update", false, "download the sources even if cached")
	fs.BoolVar(&f.Verbose, "v", false, "log debug messages")
	fs.StringVar(&f.Cache, "cache", util.CacheDir(), "cache `directory` of downloaded sources")
}

// Pipeline returns the NV2A pipeline configured by f and its logger.
func (f *Flags) Pipeline() (*Pipeline, *slog.Logger) {
	log := util.Logger(f.Verbose)
	fe := &fetch.Fetcher{Dir: f.Cache, Update: f.Update, Log: log}
	return NV2A(fe, log), log
}

// Sources returns args or the default sources if args is empty.
func Sources(args []string) []string {
	if len(args) == 0 {
		return fetch.Sources
	}
	return args
}
