// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlend(t *testing.T) {
	base := color.RGBA{51, 102, 204, 255}

	// 15% of the base over white: each channel is
	// round(0.15*c + 0.85*255).
	assert.Equal(t, color.RGBA{224, 232, 247, 255}, Blend(0.15, base, White))

	// 35% of the base over black: each channel is round(0.35*c).
	assert.Equal(t, color.RGBA{18, 36, 71, 255}, Blend(0.35, base, Black))

	assert.Equal(t, color.RGBA{128, 128, 128, 255}, Blend(0.5, Black, White))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, Blend(0.5, White, Black))
}

func TestBlendBounds(t *testing.T) {
	fg := color.RGBA{10, 20, 30, 255}
	bg := color.RGBA{200, 210, 220, 255}

	assert.Equal(t, bg, Blend(0, fg, bg))
	assert.Equal(t, fg, Blend(1, fg, bg))

	// out of range opacities clamp
	assert.Equal(t, bg, Blend(-0.5, fg, bg))
	assert.Equal(t, fg, Blend(1.5, fg, bg))
}

func TestBlendOpaque(t *testing.T) {
	fg := color.RGBA{10, 20, 30, 120}
	bg := color.RGBA{200, 210, 220, 40}
	assert.Equal(t, uint8(255), Blend(0.3, fg, bg).A)
}

func TestBlendBetween(t *testing.T) {
	fg := color.RGBA{51, 102, 204, 255}
	for _, opacity := range []float32{0.15, 0.35, 0.65, 0.8} {
		toWhite := Blend(opacity, fg, White)
		assert.Greater(t, toWhite.R, fg.R)
		assert.Greater(t, toWhite.G, fg.G)
		assert.Greater(t, toWhite.B, fg.B)
		assert.Less(t, toWhite.R, uint8(255))

		toBlack := Blend(opacity, fg, Black)
		assert.Less(t, toBlack.R, fg.R)
		assert.Less(t, toBlack.G, fg.G)
		assert.Less(t, toBlack.B, fg.B)
		assert.Greater(t, toBlack.B, uint8(0))
	}
}
