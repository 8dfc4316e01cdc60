// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette derives a full color scheme from a single main
// color: tint and shade variants blended against white and black at
// fixed opacities, and text colors chosen by WCAG contrast against
// white.
package palette

import (
	"fmt"
	"image/color"

	"github.com/hueforge/hueforge/colors"
)

// Engine derives a color [Scheme] from a single mutable main color.
// Set the main color, read the derived colors; every derivation is a
// pure function of the current main color and the fixed black and
// white references, so nothing is cached.
//
// An Engine does no locking. Callers that share one across goroutines
// must serialize access themselves.
type Engine struct {

	// main is the current main color, always fully opaque.
	main color.RGBA

	// listeners are the scheme change subscribers.
	listeners Listeners
}

// New returns a new [Engine] with the given initial main color.
// Any alpha in the given color is discarded.
func New(main color.Color) *Engine {
	c := colors.AsRGBA(main)
	c.A = 255
	return &Engine{main: c}
}

// SetColor parses an HTML-style #RRGGBB code and replaces the main
// color, then calls all registered change listeners synchronously with
// the newly derived [Scheme]. If the code does not parse, the error is
// returned, the engine state is unchanged, and no listener is called;
// there is no fallback color.
func (e *Engine) SetColor(hex string) error {
	c, err := colors.FromHex(hex)
	if err != nil {
		return err
	}
	e.main = c
	e.listeners.Call(e.Scheme())
	return nil
}

// Base returns the current main color value.
func (e *Engine) Base() color.RGBA {
	return e.main
}

// MainColor returns the current main color as an uppercase #RRGGBB
// code. It round-trips with [Engine.SetColor] for all valid codes.
func (e *Engine) MainColor() string {
	return colors.AsHex(e.main)
}

// TextColor returns the recommended color, as a hex code, for primary
// text on top of the given background color, defaulting to the main
// color: white where the background is dark per [colors.IsDark], black
// otherwise.
func (e *Engine) TextColor(bg ...color.Color) string {
	c := e.background(bg)
	if colors.IsDark(c) {
		return colors.AsHex(colors.White)
	}
	return colors.AsHex(colors.Black)
}

// SecondaryTextColor returns the color, as a hex code, for secondary
// text on top of the given background color, defaulting to the main
// color. Where white text is viable because the background is dark, it
// returns the background color itself, preserving it as an accent;
// otherwise black.
func (e *Engine) SecondaryTextColor(bg ...color.Color) string {
	c := e.background(bg)
	if colors.IsDark(c) {
		return colors.AsHex(c)
	}
	return colors.AsHex(colors.Black)
}

// background resolves the optional background argument to the current
// main color.
func (e *Engine) background(bg []color.Color) color.RGBA {
	if len(bg) > 0 && bg[0] != nil {
		return colors.AsRGBA(bg[0])
	}
	return e.main
}

// Variant returns the tint or shade of the main color at the given
// level as a hex code, or an error if the level is not one of the
// defined ones.
func (e *Engine) Variant(v Variant) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("palette: invalid variant level %d", int32(v))
	}
	return e.variant(v), nil
}

// variant blends the main color for a known-valid level.
func (e *Engine) variant(v Variant) string {
	return colors.AsHex(colors.Blend(v.Opacity(), e.main, v.Reference()))
}

// Scheme returns the full palette derived from the current main color.
func (e *Engine) Scheme() Scheme {
	return Scheme{
		Main:          e.MainColor(),
		Text:          e.TextColor(),
		TextSecondary: e.SecondaryTextColor(),
		Main10:        e.variant(Variant10),
		Main20:        e.variant(Variant20),
		Main30:        e.variant(Variant30),
		Main40:        e.variant(Variant40),
		Main50:        e.variant(Variant50),
		Main60:        e.variant(Variant60),
		Main70:        e.variant(Variant70),
		Main80:        e.variant(Variant80),
	}
}

// OnChange registers a function to be called with the newly derived
// [Scheme] after every successful [Engine.SetColor], keyed by the
// given subscriber name. Registering again under the same name
// replaces the earlier function.
func (e *Engine) OnChange(name string, fun func(sc Scheme)) {
	e.listeners.Add(name, fun)
}

// RemoveOnChange removes the change listener registered under the
// given name, if any.
func (e *Engine) RemoveOnChange(name string) {
	e.listeners.Delete(name)
}
