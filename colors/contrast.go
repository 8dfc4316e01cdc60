// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/chewxy/math32"
)

const (
	// TextThreshold is the contrast ratio below which a background is
	// considered dark enough that white text is preferred over black.
	TextThreshold = 2.0 / 9

	// linearMax is the sRGB channel value at or below which the linear
	// segment of the luminance transfer function applies.
	linearMax = 0.03928
)

// ChannelLuminance returns the luminance contribution of a single sRGB
// channel value normalized to [0, 1], per the WCAG 2.0 definition:
// linear below [linearMax], gamma-expanded above it.
func ChannelLuminance(v float32) float32 {
	if v <= linearMax {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG 2.0 relative luminance of the
// given color, in [0, 1], with 0 for black and 1 for white.
func RelativeLuminance(c color.Color) float32 {
	r := AsRGBA(c)
	return 0.2126*ChannelLuminance(float32(r.R)/255) +
		0.7152*ChannelLuminance(float32(r.G)/255) +
		0.0722*ChannelLuminance(float32(r.B)/255)
}

// ContrastRatio returns the luminance contrast between the two given
// colors as the ratio of the darker to the lighter relative luminance,
// each offset by 0.05. The result is in (0, 1]: 1 means equal
// luminance, and lower values mean stronger contrast. It is symmetric
// in its arguments.
func ContrastRatio(a, b color.Color) float32 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	return (math32.Min(la, lb) + 0.05) / (math32.Max(la, lb) + 0.05)
}

// IsDark reports whether the given background color contrasts strongly
// enough with white that white text is preferred on it, by comparing
// [ContrastRatio] against white to [TextThreshold].
func IsDark(c color.Color) bool {
	return ContrastRatio(White, c) < TextThreshold
}
