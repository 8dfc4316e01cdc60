// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hueforge/hueforge/base/errors"
)

// writeTimeout bounds each broadcast write, so one stalled page is
// dropped instead of blocking updates to the others.
const writeTimeout = 5 * time.Second

// Hub tracks the open websocket connections and fans palette updates
// out to them.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub returns an empty [Hub].
func NewHub() *Hub {
	return &Hub{clients: map[*websocket.Conn]bool{}}
}

// add registers a connection.
func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

// remove unregisters and closes a connection. It is safe to call for
// a connection that is already gone.
func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[conn] {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends the given update as a JSON text message to every
// connected page, dropping connections whose writes fail or time out.
func (h *Hub) Broadcast(u Update) {
	msg, err := json.Marshal(u)
	if err != nil {
		errors.Log(err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			errors.Log(err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

var upgrader = websocket.Upgrader{}

// handleWS upgrades the request and registers the connection with the
// hub. The client never sends application messages; the read loop only
// notices the page going away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		errors.Log(err)
		return
	}
	s.hub.add(conn)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.remove(conn)
				return
			}
		}
	}()
}
