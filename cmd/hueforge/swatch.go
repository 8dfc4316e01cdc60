// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/hueforge/hueforge/colors/palette"
)

// printScheme writes one row per derived color: a colored block, the
// name, and the hex value. Styling degrades to plain text when the
// writer is not a terminal.
func printScheme(w io.Writer, eng *palette.Engine) {
	out := termenv.NewOutput(w)
	sc := eng.Scheme()

	row := func(name, hex string) {
		block := out.String("      ").Background(termenv.RGBColor(hex))
		fmt.Fprintf(w, "%s  %-15s %s\n", block, name, hex)
	}

	row("main", sc.Main)
	for _, v := range palette.Variants {
		row("main "+v.String(), sc.Variant(v))
	}
	row("text", sc.Text)
	row("text secondary", sc.TextSecondary)
}
