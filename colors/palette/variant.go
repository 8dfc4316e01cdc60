// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"strconv"

	"github.com/hueforge/hueforge/colors"
)

// Variant is one of the eight fixed tint and shade levels derived from
// the main color, from lightest (10) to darkest (80). Levels 10
// through 40 blend the main color over white; levels 50 through 80
// blend it over black. The blend opacity per level is fixed; see
// [Variant.Opacity].
type Variant int32

const (
	// Variant10 is 15% of the main color over white.
	Variant10 Variant = 10

	// Variant20 is 35% of the main color over white.
	Variant20 Variant = 20

	// Variant30 is 65% of the main color over white.
	Variant30 Variant = 30

	// Variant40 is 80% of the main color over white.
	Variant40 Variant = 40

	// Variant50 is 80% of the main color over black.
	Variant50 Variant = 50

	// Variant60 is 65% of the main color over black.
	Variant60 Variant = 60

	// Variant70 is 35% of the main color over black.
	Variant70 Variant = 70

	// Variant80 is 15% of the main color over black.
	Variant80 Variant = 80
)

// Variants lists all variant levels, lightest first.
var Variants = []Variant{
	Variant10, Variant20, Variant30, Variant40,
	Variant50, Variant60, Variant70, Variant80,
}

// Opacity returns the fixed opacity at which the main color is laid
// over the reference color for this variant, or 0 if the variant is
// not one of the defined levels.
func (v Variant) Opacity() float32 {
	switch v {
	case Variant10, Variant80:
		return 0.15
	case Variant20, Variant70:
		return 0.35
	case Variant30, Variant60:
		return 0.65
	case Variant40, Variant50:
		return 0.8
	}
	return 0
}

// Reference returns the color this variant blends the main color over:
// white for the tint levels (10 through 40) and black for the shade
// levels (50 through 80).
func (v Variant) Reference() color.RGBA {
	if v <= Variant40 {
		return colors.White
	}
	return colors.Black
}

// Valid reports whether v is one of the eight defined levels.
func (v Variant) Valid() bool {
	return v.Opacity() != 0
}

// String returns the numeric level as a string, such as "10".
func (v Variant) String() string {
	return strconv.Itoa(int(v))
}
