// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Blend returns the color that results from laying fg over bg at the
// given opacity, computing each channel independently as
// round(opacity*fg + (1-opacity)*bg). An opacity of 0 yields bg and 1
// yields fg; values outside [0, 1] are clamped. The result is always
// fully opaque.
func Blend(opacity float32, fg, bg color.Color) color.RGBA {
	opacity = math32.Max(0, math32.Min(1, opacity))
	f := AsRGBA(fg)
	b := AsRGBA(bg)
	return color.RGBA{
		R: blendChannel(opacity, f.R, b.R),
		G: blendChannel(opacity, f.G, b.G),
		B: blendChannel(opacity, f.B, b.B),
		A: 255,
	}
}

// blendChannel interpolates one 8-bit channel, rounding to the nearest
// integer value.
func blendChannel(opacity float32, fg, bg uint8) uint8 {
	v := opacity*float32(fg) + (1-opacity)*float32(bg)
	return uint8(math32.Round(v))
}
