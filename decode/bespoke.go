// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"fmt"
	"strings"
	"sync"
)

// Bespoke routines are hand written decoders for the methods whose
// parameters cannot be described by the generated tables. They are looked
// up by name at decode time, so the generated tables may refer to routines
// registered by another package.

var (
	bespokeMu sync.RWMutex
	bespoke   = map[string]Decoder{
		"ColorMask":       Func(colorMask),
		"DrawArrays":      Func(drawArrays),
		"LightEnableMask": Func(lightEnableMask),
		"TexturePalette":  Func(texturePalette),
	}
)

// Register makes d available under name, replacing any previous routine.
func Register(name string, d Decoder) {
	bespokeMu.Lock()
	bespoke[name] = d
	bespokeMu.Unlock()
}

// Lookup returns the routine registered under name.
func Lookup(name string) (Decoder, bool) {
	bespokeMu.RLock()
	d, ok := bespoke[name]
	bespokeMu.RUnlock()
	return d, ok
}

// Named refers to a bespoke routine by name. The parameter is passed through
// if no routine is registered under the name.
type Named string

func Bespoke(name string) Named { return Named(name) }

func (n Named) Decode(class, op, param uint32) string {
	if d, ok := Lookup(string(n)); ok {
		return d.Decode(class, op, param)
	}
	return Passthrough.Decode(class, op, param)
}

func colorMask(_, _, param uint32) string {
	enabled := func(shift uint) int { return int(param>>shift) & 1 }
	return fmt.Sprintf(
		"{A:%d, R:%d, G:%d, B:%d}",
		enabled(24), enabled(16), enabled(8), enabled(0),
	)
}

func drawArrays(_, _, param uint32) string {
	return fmt.Sprintf(
		"{start:%d, count:%d}", param&0x00FFFFFF, param>>24+1,
	)
}

var lightModes = [4]string{"off", "infinite", "local", "spot"}

func lightEnableMask(_, _, param uint32) string {
	var parts []string
	for i := 0; i < 8; i++ {
		if m := param >> (2 * i) & 3; m != 0 {
			parts = append(parts, fmt.Sprintf("%d:%s", i, lightModes[m]))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func texturePalette(_, _, param uint32) string {
	length := [4]int{256, 128, 64, 32}[param>>2&3]
	return fmt.Sprintf(
		"{dma:%c, length:%d, offset:0x%X}",
		"AB"[param&1], length, param&^0x3F,
	)
}
