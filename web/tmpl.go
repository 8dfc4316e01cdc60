// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed page.html
var pageHTML string

//go:embed app.css
var appCSS []byte

// PageTmpl is the template used in [MakePage] to build the picker page.
var PageTmpl = template.Must(template.New("page.html").Parse(pageHTML))

// PageData is the data passed to [PageTmpl].
type PageData struct {
	Update

	// FaviconURL is [Update.Favicon] typed for the icon link href.
	FaviconURL template.URL
}

// MakePage executes [PageTmpl] with the given palette state and
// returns the rendered picker page.
func MakePage(u Update) ([]byte, error) {
	d := PageData{Update: u, FaviconURL: template.URL(u.Favicon)}
	b := &bytes.Buffer{}
	err := PageTmpl.Execute(b, d)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
