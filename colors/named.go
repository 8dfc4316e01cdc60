// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Map contains the CSS basic color keywords, usable anywhere a hex
// code is accepted through [FromString].
var Map = map[string]color.RGBA{
	"aqua":    {0, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"blue":    {0, 0, 255, 255},
	"fuchsia": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"green":   {0, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
	"maroon":  {128, 0, 0, 255},
	"navy":    {0, 0, 128, 255},
	"olive":   {128, 128, 0, 255},
	"purple":  {128, 0, 128, 255},
	"red":     {255, 0, 0, 255},
	"silver":  {192, 192, 192, 255},
	"teal":    {0, 128, 128, 255},
	"white":   {255, 255, 255, 255},
	"yellow":  {255, 255, 0, 255},
}
