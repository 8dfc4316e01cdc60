// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hueforge/hueforge/colors"
	"github.com/hueforge/hueforge/favicon"
)

// handleIndex renders the picker page with the current palette baked
// in, so the page is complete before the websocket connects.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	u := s.update(s.eng.Scheme())
	s.mu.Unlock()

	b, err := MakePage(u)
	if err != nil {
		slog.Error("rendering page failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b)
}

// handleCSS serves the embedded page stylesheet.
func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(appCSS)
}

// handleColor changes the main color. It accepts a form or JSON body
// with a color field holding a #RRGGBB code and answers with the new
// scheme, or 422 and the parse error when the code is rejected.
func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var hex string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Color string `json:"color"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		hex = body.Color
	} else {
		hex = r.FormValue("color")
	}

	sc, err := s.SetColor(hex)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	slog.Debug("color changed", "color", sc.Main)
	writeJSON(w, http.StatusOK, sc)
}

// handlePalette answers with the current derived scheme.
func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.Scheme())
}

// handleFavicon serves the favicon SVG for the current main color and
// configured shape. Optional color and shape query parameters override
// them for one response, for previews.
func (s *Server) handleFavicon(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	c := s.eng.Base()
	shape := s.shape
	s.mu.Unlock()

	if q := r.URL.Query().Get("color"); q != "" {
		qc, err := colors.FromString(q)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		c = qc
	}
	if q := r.URL.Query().Get("shape"); q != "" {
		qs, err := favicon.ShapeFromString(q)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		shape = qs
	}

	b, err := favicon.Render(c, shape)
	if err != nil {
		slog.Error("rendering favicon failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(b)
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "err", err)
	}
}

// writeError writes the error as a JSON body so the page can show it.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
