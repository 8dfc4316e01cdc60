// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hueforge/hueforge/colors"
	"github.com/hueforge/hueforge/colors/palette"
)

func TestMakePage(t *testing.T) {
	eng := palette.New(colors.MustFromHex("#3366CC"))
	sc := eng.Scheme()

	u := Update{
		Scheme:  sc,
		Favicon: "data:image/svg+xml;base64,AAAA",
		Swatches: []Swatch{
			{Key: "main", Name: "Main", CSSVar: "--main", Hex: sc.Main, Text: sc.Text},
		},
	}
	b, err := MakePage(u)
	assert.NoError(t, err)
	body := string(b)

	// the data URI must survive templating as a URL; attribute escaping
	// writes its + as &#43;, which browsers decode
	assert.Contains(t, body, `href="data:image/svg&#43;xml;base64,AAAA"`)
	assert.Contains(t, body, "--main-20: #B8C9ED;")
	assert.Contains(t, body, "background: #3366CC; color: #FFFFFF;")
	assert.Contains(t, body, "<code>#3366CC</code>")
	assert.NotContains(t, body, "ZgotmplZ")
}
