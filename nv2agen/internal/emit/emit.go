// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emit renders the synthesized artifacts as Go source.
package emit

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"golang.org/x/mod/module"
	"golang.org/x/tools/imports"

	"github.com/embeddedgo/nvtools/synth"
)

// Sections lists the template sections in output order.
var Sections = []string{"header", "constants", "names", "dispatch", "decoders"}

// DecodeImport is the default import path of the decode runtime.
const DecodeImport = "github.com/embeddedgo/nvtools/decode"

var (
	ErrMissingSection = errors.New("missing template section")
	ErrContract       = errors.New("template context violates contract")
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed schema.cue
var schemaFS embed.FS

// Context is the data available to the templates.
type Context struct {
	Package   string         `json:"package"`
	Import    string         `json:"import"` // decode runtime
	Sources   []string       `json:"sources"`
	Constants []synth.Const  `json:"constants"`
	Names     []synth.Name   `json:"names"`
	Dispatch  []*synth.Class `json:"dispatch"`
	Defs      []*synth.Def   `json:"defs"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// NewContext returns the context that renders r into the pkg package.
func NewContext(pkg, importPath string, sources []string, r *synth.Result) *Context {
	return &Context{
		Package:   pkg,
		Import:    importPath,
		Sources:   nonNil(sources),
		Constants: nonNil(r.Constants),
		Names:     nonNil(r.Names),
		Dispatch:  nonNil(r.Dispatch),
		Defs:      nonNil(r.Defs),
	}
}

type Emitter struct {
	tmpl   *template.Template
	cue    *cue.Context
	schema cue.Value
}

// New returns an Emitter that uses the built-in templates.
func New() (*Emitter, error) {
	return NewFS(templatesFS, "templates/*.tmpl")
}

// NewFS returns an Emitter that uses the templates in the fsys files that
// match pattern. All Sections must be defined.
func NewFS(fsys fs.FS, pattern string) (*Emitter, error) {
	t, err := template.New("").Funcs(funcs("decode")).ParseFS(fsys, pattern)
	if err != nil {
		return nil, err
	}
	for _, name := range Sections {
		if t.Lookup(name) == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingSection, name)
		}
	}
	src, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}
	cctx := cuecontext.New()
	schema := cctx.CompileBytes(src)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return &Emitter{tmpl: t, cue: cctx, schema: schema}, nil
}

func funcs(qual string) template.FuncMap {
	return template.FuncMap{
		"qual": func() string { return qual },
		"expr": func(op *synth.Op) string { return op.Expr(qual) },
	}
}

// Check validates c against the template contract.
func (e *Emitter) Check(c *Context) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling context: %w", err)
	}
	v := e.cue.CompileBytes(data)
	if err := v.Err(); err != nil {
		return fmt.Errorf("compiling context: %w", err)
	}
	def := e.schema.LookupPath(cue.ParsePath("#Context"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("looking up #Context: %w", err)
	}
	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		var msgs []string
		for _, ce := range cueerrors.Errors(err) {
			msgs = append(msgs, ce.Error())
		}
		return fmt.Errorf("%w: %s", ErrContract, strings.Join(msgs, "; "))
	}
	return nil
}

// Render writes the Go source file described by c to w. The sections are
// rendered in the order of Sections and the result is formatted.
func (e *Emitter) Render(w io.Writer, c *Context) error {
	if err := module.CheckImportPath(c.Import); err != nil {
		return fmt.Errorf("%w: %v", ErrContract, err)
	}
	if err := e.Check(c); err != nil {
		return err
	}
	t, err := e.tmpl.Clone()
	if err != nil {
		return err
	}
	t.Funcs(funcs(path.Base(c.Import)))
	var buf bytes.Buffer
	for _, name := range Sections {
		if err := t.ExecuteTemplate(&buf, name, c); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
	}
	src, err := imports.Process(c.Package+".go", buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	_, err = w.Write(src)
	return err
}
