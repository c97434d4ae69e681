// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hdr extracts #define constants from C header text.
package hdr

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// ErrUnparseableValue is reported for a define whose value has no known
// numeric form and no correction.
var ErrUnparseableValue = errors.New("unparseable value")

// Symbol is a single extracted define.
type Symbol struct {
	Name     string
	Raw      string // right hand side as written in the header
	Value    uint32
	Resolved bool
}

func (s Symbol) String() string {
	if !s.Resolved {
		return s.Name + " = ?"
	}
	return fmt.Sprintf("%s = 0x%X", s.Name, s.Value)
}

// Tokens returns the name split at underscores.
func (s Symbol) Tokens() []string {
	return strings.Split(s.Name, "_")
}

var defineRE = regexp.MustCompile(`^#\s*define\s+(\S+)\s+(.*)`)

// Extract returns the symbols defined in text in source order. Only the
// defines whose names start with rules.Family are considered. A name defined
// again takes the later value but keeps its first position. The log receives
// the diagnostics and may be nil.
func Extract(text []byte, rules *Rules, log *slog.Logger) []Symbol {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	var (
		syms []Symbol
		seen = make(map[string]int) // index in syms
	)
	sc := bufio.NewScanner(bytes.NewReader(text))
	sc.Buffer(nil, 1<<20)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if !strings.HasPrefix(line, "#") {
			continue
		}
		m := defineRE.FindStringSubmatch(line)
		if m == nil || !strings.HasPrefix(m[1], rules.Family) {
			continue
		}
		names := rules.Sanitize(m[1])
		raw := strings.TrimSpace(m[2])
		v, ok := ParseValue(raw)
		if !ok {
			v, ok = rules.Corrections[names[0]]
		}
		if !ok {
			log.Warn(
				"cannot resolve define",
				"line", lineno, "name", names[0],
				"err", fmt.Errorf("%w: %q", ErrUnparseableValue, raw),
			)
		}
		for _, name := range names {
			s := Symbol{Name: name, Raw: raw, Value: v, Resolved: ok}
			if i, ok := seen[name]; ok {
				log.Debug("redefined", "line", lineno, "name", name, "old", syms[i].Raw)
				syms[i] = s
				continue
			}
			seen[name] = len(syms)
			syms = append(syms, s)
		}
	}
	if err := sc.Err(); err != nil {
		log.Warn("header truncated", "line", lineno+1, "err", err)
	}
	return syms
}
