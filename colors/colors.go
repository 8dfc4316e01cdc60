// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the sRGB color arithmetic behind hueforge:
// strict hex parsing and formatting, per-channel blending, WCAG 2.0
// relative luminance, and the contrast test that drives text color
// selection.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Black and White are the reference colors that tints and shades are
// blended against and that text colors are chosen from.
var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// AsRGBA returns the given color as an [color.RGBA] value.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromHex parses an HTML-style hex color code and returns the
// resulting color. The code must be a '#' followed by exactly six
// hexadecimal digits (#RRGGBB, in any case); anything else is an
// error. The result is always fully opaque.
func FromHex(hex string) (color.RGBA, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: missing # prefix in %q", hex)
	}
	digits := hex[1:]
	if len(digits) != 6 {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: expected 6 hex digits in %q, got %d", hex, len(digits))
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid hex digits in %q", hex)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{ch[0], ch[1], ch[2], 255}, nil
}

// MustFromHex parses an HTML-style hex color code per [FromHex],
// panicking on any error. It is for hex constants known at compile
// time.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// AsHex returns the color as an uppercase #RRGGBB hex code, dropping
// any alpha. It is the inverse of [FromHex] for fully opaque colors.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
}

// FromString returns the color value specified by the given string,
// which must be either a hex code accepted by [FromHex] or one of the
// CSS basic color names in [Map] (case-insensitive). Surrounding
// whitespace is ignored.
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("colors.FromString: empty color string")
	}
	if s[0] == '#' {
		return FromHex(s)
	}
	c, ok := Map[strings.ToLower(s)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromString: unknown color name %q", s)
	}
	return c, nil
}
