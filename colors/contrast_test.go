// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelLuminance(t *testing.T) {
	assert.Equal(t, float32(0), ChannelLuminance(0))
	assert.Equal(t, float32(1), ChannelLuminance(1))

	// at and below the linear cutoff, the transfer is v/12.92
	assert.InDelta(t, 0.03928/12.92, ChannelLuminance(0.03928), 1e-7)
	v := float32(10) / 255
	assert.InDelta(t, v/12.92, ChannelLuminance(v), 1e-7)

	// above the cutoff it is gamma expanded, so noticeably larger
	// than the linear continuation
	assert.Greater(t, ChannelLuminance(0.5), float32(0.2))
	assert.Less(t, ChannelLuminance(0.5), float32(0.25))
}

func TestRelativeLuminance(t *testing.T) {
	assert.Equal(t, float32(0), RelativeLuminance(Black))
	assert.InDelta(t, 1, RelativeLuminance(White), 1e-6)

	// pure channels contribute exactly their WCAG coefficients
	assert.InDelta(t, 0.2126, RelativeLuminance(color.RGBA{255, 0, 0, 255}), 1e-6)
	assert.InDelta(t, 0.7152, RelativeLuminance(color.RGBA{0, 255, 0, 255}), 1e-6)
	assert.InDelta(t, 0.0722, RelativeLuminance(color.RGBA{0, 0, 255, 255}), 1e-6)

	assert.InDelta(t, 0.14566, RelativeLuminance(color.RGBA{51, 102, 204, 255}), 1e-4)
}

func TestContrastRatio(t *testing.T) {
	// identical colors have no contrast
	assert.InDelta(t, 1, ContrastRatio(White, White), 1e-6)
	assert.InDelta(t, 1, ContrastRatio(Black, Black), 1e-6)

	// black on white is the strongest possible: 0.05/1.05
	assert.InDelta(t, 0.047619, ContrastRatio(Black, White), 1e-6)

	// symmetric in its arguments
	a := color.RGBA{51, 102, 204, 255}
	assert.Equal(t, ContrastRatio(a, White), ContrastRatio(White, a))

	assert.InDelta(t, 0.18634, ContrastRatio(White, a), 1e-4)
}

func TestIsDark(t *testing.T) {
	assert.True(t, IsDark(Black))
	assert.False(t, IsDark(White))

	assert.True(t, IsDark(color.RGBA{51, 102, 204, 255}))  // #3366CC
	assert.False(t, IsDark(color.RGBA{255, 255, 0, 255})) // #FFFF00

	// grays straddling the threshold ratio of 2/9
	assert.True(t, IsDark(color.RGBA{118, 118, 118, 255}))  // #767676
	assert.False(t, IsDark(color.RGBA{119, 119, 119, 255})) // #777777
}
