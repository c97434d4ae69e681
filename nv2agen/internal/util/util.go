// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Fatal prints a formatted message and exits the program.
func Fatal(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error() + "\n"
	if what != "" {
		s = what + ": " + s
	}
	os.Stderr.WriteString(s)
	os.Exit(1)
}

// Logger returns the logger of the diagnostics. It writes to stderr at the
// INFO level or at the DEBUG level if verbose.
func Logger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ParseUint32 parses a decimal or 0x prefixed hexadecimal number.
func ParseUint32(s string) (uint32, error) {
	u, err := strconv.ParseUint(s, 0, 32)
	return uint32(u), err
}

// CacheDir returns the default directory of the downloaded headers.
func CacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".nv2agen"
	}
	return dir + string(os.PathSeparator) + "nv2agen"
}
