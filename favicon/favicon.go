// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package favicon renders the inline vector favicon that mirrors the
// current main color. The icon is a tiny single-shape SVG, delivered
// either as raw bytes or as a base64 data URI ready for a page's icon
// link.
package favicon

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"strings"
	"text/template"

	"github.com/hueforge/hueforge/colors"
)

// Shape selects the favicon glyph.
type Shape int32

const (
	// Circle inscribes a disc in the icon viewport.
	Circle Shape = iota

	// Square fills the whole icon viewport.
	Square
)

// String returns the lowercase name of the shape.
func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	}
	return fmt.Sprintf("Shape(%d)", int32(s))
}

// ShapeFromString returns the shape with the given name,
// case-insensitively and ignoring surrounding whitespace.
func ShapeFromString(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle":
		return Circle, nil
	case "square":
		return Square, nil
	}
	return 0, fmt.Errorf("favicon: unknown shape %q", name)
}

// SVGTmplData is the data passed to the shape templates.
type SVGTmplData struct {
	Fill string
}

// CircleTmpl is the template for the circle favicon.
var CircleTmpl = template.Must(template.New("circle.svg").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><circle cx="16" cy="16" r="16" fill="{{.Fill}}"/></svg>`))

// SquareTmpl is the template for the square favicon.
var SquareTmpl = template.Must(template.New("square.svg").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><rect width="32" height="32" fill="{{.Fill}}"/></svg>`))

// Render executes the template for the given shape with the given fill
// color and returns the resulting SVG document.
func Render(c color.Color, shape Shape) ([]byte, error) {
	var tmpl *template.Template
	switch shape {
	case Circle:
		tmpl = CircleTmpl
	case Square:
		tmpl = SquareTmpl
	default:
		return nil, fmt.Errorf("favicon: unknown shape %v", shape)
	}
	d := SVGTmplData{Fill: colors.AsHex(c)}
	b := &bytes.Buffer{}
	err := tmpl.Execute(b, d)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// DataURI renders the favicon for the given fill color and shape and
// returns it as a base64 data URI for a link[rel=icon] href.
func DataURI(c color.Color, shape Shape) (string, error) {
	svg, err := Render(c, shape)
	if err != nil {
		return "", err
	}
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg), nil
}
