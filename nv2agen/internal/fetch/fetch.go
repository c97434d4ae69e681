// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fetch retrieves the register headers and keeps a local copy of
// every downloaded one.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Sources lists the default headers, the most complete one first.
var Sources = []string{
	"https://raw.githubusercontent.com/XboxDev/nxdk/refs/heads/master/lib/pbkit/nv_regs.h",
	"https://raw.githubusercontent.com/xemu-project/xemu/refs/heads/master/hw/xbox/nv2a/nv2a_regs.h",
	"https://raw.githubusercontent.com/Ryzee119/LithiumX/cbea9330527597dc5201423141a8a02e0ab900cd/src/libs/xgu/nv2a_regs.h",
}

// Timeout limits a single download.
const Timeout = 10 * time.Second

var ErrRetrieval = errors.New("cannot retrieve source")

// RetrievalError describes a source that could not be read or downloaded.
type RetrievalError struct {
	Source string
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrRetrieval, e.Source, e.Err)
}

func (e *RetrievalError) Unwrap() []error { return []error{ErrRetrieval, e.Err} }

// Fetcher downloads remote sources into Dir.
type Fetcher struct {
	Dir    string       // cache directory
	Update bool         // download even if a cached copy exists
	Client *http.Client // nil means http.DefaultClient
	Log    *slog.Logger // nil means no logging
}

// IsRemote reports whether src is an URL rather than a local path.
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// CacheName returns the name of the cached copy of url: the first eight hex
// digits of its SHA-256 sum and its base name.
func CacheName(url string) string {
	h := sha256.Sum256([]byte(url))
	return hex.EncodeToString(h[:])[:8] + "_" + path.Base(url)
}

// Path returns the local file that holds src.
func (f *Fetcher) Path(src string) string {
	if !IsRemote(src) {
		return src
	}
	return filepath.Join(f.Dir, CacheName(src))
}

// Get returns the content of src. Local paths are read directly. Remote ones
// are served from the cache unless they are missing or f.Update is set.
func (f *Fetcher) Get(ctx context.Context, src string) ([]byte, error) {
	log := f.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	name := f.Path(src)
	if IsRemote(src) && (f.Update || !exists(name)) {
		log.Info("downloading", "url", src, "file", name)
		data, err := f.download(ctx, src)
		if err != nil {
			return nil, &RetrievalError{src, err}
		}
		if err := writeAtomic(name, data); err != nil {
			return nil, &RetrievalError{src, err}
		}
		return data, nil
	}
	log.Debug("reading", "source", src, "file", name)
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, &RetrievalError{src, err}
	}
	return data, nil
}

// GetAll returns the contents of all srcs in order. It stops at the first
// failure.
func (f *Fetcher) GetAll(ctx context.Context, srcs []string) ([][]byte, error) {
	texts := make([][]byte, 0, len(srcs))
	for _, src := range srcs {
		data, err := f.Get(ctx, src)
		if err != nil {
			return nil, err
		}
		texts = append(texts, data)
	}
	return texts, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func exists(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && fi.Mode().IsRegular()
}

func writeAtomic(name string, data []byte) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("temp cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename cache file: %w", err)
	}
	return nil
}
