// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// Scheme is the complete set of colors derived from one main color:
// the main color itself, the recommended text colors on top of it, and
// the eight tint and shade variants. All values are uppercase #RRGGBB
// codes, ready for CSS custom properties or SVG fills. A Scheme is a
// snapshot; it is recomputed from the [Engine] on every change, never
// cached.
type Scheme struct {

	// Main is the main color.
	Main string `json:"main"`

	// Text is the recommended color for primary text on top of Main:
	// white if Main is dark per [colors.IsDark], black otherwise.
	Text string `json:"text"`

	// TextSecondary is the color for secondary text on top of Main:
	// Main itself where white text is viable, black otherwise.
	TextSecondary string `json:"textSecondary"`

	// Main10 through Main40 are the tint variants, lightest first.
	Main10 string `json:"main10"`
	Main20 string `json:"main20"`
	Main30 string `json:"main30"`
	Main40 string `json:"main40"`

	// Main50 through Main80 are the shade variants, darkest last.
	Main50 string `json:"main50"`
	Main60 string `json:"main60"`
	Main70 string `json:"main70"`
	Main80 string `json:"main80"`
}

// Variant returns the scheme value for the given variant level, or ""
// if the level is not one of the defined ones.
func (sc *Scheme) Variant(v Variant) string {
	switch v {
	case Variant10:
		return sc.Main10
	case Variant20:
		return sc.Main20
	case Variant30:
		return sc.Main30
	case Variant40:
		return sc.Main40
	case Variant50:
		return sc.Main50
	case Variant60:
		return sc.Main60
	case Variant70:
		return sc.Main70
	case Variant80:
		return sc.Main80
	}
	return ""
}
