// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web hosts the hueforge picker page: one [palette.Engine]
// behind an HTTP API, a websocket feed that pushes every palette
// change to open pages, and a favicon that re-renders in the current
// main color.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hueforge/hueforge/base/errors"
	"github.com/hueforge/hueforge/colors"
	"github.com/hueforge/hueforge/colors/palette"
	"github.com/hueforge/hueforge/config"
	"github.com/hueforge/hueforge/favicon"
)

// Update is the payload pushed to pages on every palette change and
// used to render the initial page.
type Update struct {

	// Scheme is the full derived palette.
	Scheme palette.Scheme `json:"scheme"`

	// Favicon is the favicon for the current main color, as a data URI.
	Favicon string `json:"favicon"`

	// Swatches are the rendered palette entries, in display order.
	Swatches []Swatch `json:"swatches"`
}

// Swatch is one palette entry as shown on the page.
type Swatch struct {

	// Key is the scheme JSON key, such as "main10".
	Key string `json:"key"`

	// Name is the display label, such as "Main 10".
	Name string `json:"name"`

	// CSSVar is the CSS custom property holding the value, such as
	// "--main-10".
	CSSVar string `json:"cssVar"`

	// Hex is the current color value.
	Hex string `json:"hex"`

	// Text is a text color readable on top of Hex.
	Text string `json:"text"`
}

// Server hosts the picker page and the palette API around a single
// [palette.Engine].
type Server struct {
	cfg *config.Config
	eng *palette.Engine
	hub *Hub
	mux *http.ServeMux

	// mu serializes engine and shape access across request goroutines;
	// the engine itself does no locking.
	mu sync.Mutex

	shape favicon.Shape
}

// New returns a [Server] around the given engine, serving the picker
// page, the color and palette endpoints, the favicon, and the
// websocket change feed. It subscribes to the engine, so every
// successful color change from any source is broadcast to open pages.
func New(cfg *config.Config, eng *palette.Engine) (*Server, error) {
	shape, err := favicon.ShapeFromString(cfg.Shape)
	if err != nil {
		return nil, err
	}
	s := &Server{cfg: cfg, eng: eng, hub: NewHub(), shape: shape}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/app.css", s.handleCSS)
	mux.HandleFunc("/color", s.handleColor)
	mux.HandleFunc("/palette.json", s.handlePalette)
	mux.HandleFunc("/favicon.svg", s.handleFavicon)
	mux.HandleFunc("/ws", s.handleWS)
	s.mux = mux

	eng.OnChange("web", func(sc palette.Scheme) {
		s.hub.Broadcast(s.update(sc))
	})
	return s, nil
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until the context is
// canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errors.Log(srv.Shutdown(sctx))
	}()
	slog.Info("serving picker page", "addr", s.cfg.Addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// SetColor applies a color change from any source (the page, the
// config watcher), serialized against concurrent requests. It returns
// the newly derived scheme, or the parse error with the state
// unchanged.
func (s *Server) SetColor(hex string) (palette.Scheme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.SetColor(hex); err != nil {
		return palette.Scheme{}, err
	}
	return s.eng.Scheme(), nil
}

// Scheme returns a snapshot of the current derived palette.
func (s *Server) Scheme() palette.Scheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Scheme()
}

// SetShape swaps the favicon shape and broadcasts so that open pages
// pick up the new icon.
func (s *Server) SetShape(shape favicon.Shape) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if shape == s.shape {
		return
	}
	s.shape = shape
	s.hub.Broadcast(s.update(s.eng.Scheme()))
}

// update assembles the page payload for the given scheme snapshot.
// Callers must hold s.mu; the engine change listener runs under it.
func (s *Server) update(sc palette.Scheme) Update {
	return Update{
		Scheme:   sc,
		Favicon:  errors.Log1(favicon.DataURI(s.eng.Base(), s.shape)),
		Swatches: s.swatches(sc),
	}
}

// swatches lists the main color and every variant with a text color
// chosen against that entry's own value, so labels stay readable on
// both the light tints and the dark shades.
func (s *Server) swatches(sc palette.Scheme) []Swatch {
	sw := make([]Swatch, 0, len(palette.Variants)+1)
	sw = append(sw, Swatch{
		Key:    "main",
		Name:   "Main",
		CSSVar: "--main",
		Hex:    sc.Main,
		Text:   sc.Text,
	})
	for _, v := range palette.Variants {
		hex := sc.Variant(v)
		c, err := colors.FromHex(hex)
		if err != nil {
			errors.Log(err)
			continue
		}
		sw = append(sw, Swatch{
			Key:    "main" + v.String(),
			Name:   "Main " + v.String(),
			CSSVar: "--main-" + v.String(),
			Hex:    hex,
			Text:   s.eng.TextColor(c),
		})
	}
	return sw
}
