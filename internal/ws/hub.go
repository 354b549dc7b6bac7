// Package ws is the push channel for shop-wide notifications. Its main
// consumer is the broadcast-message feature: a blood-priority message must
// reach every connected client the moment it is saved, so a client that can
// no longer be written to is evicted rather than allowed to stall the fanout.
package ws

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Conn is the write side of one connected client. *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type Hub struct {
	Register   chan Conn
	Unregister chan Conn
	Broadcast  chan []byte

	mu      sync.Mutex
	clients map[Conn]bool
	done    chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan Conn),
		Unregister: make(chan Conn),
		Broadcast:  make(chan []byte),
		clients:    make(map[Conn]bool),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mu.Lock()
			h.clients[conn] = true
			count := len(h.clients)
			h.mu.Unlock()
			log.Printf("ws: client connected (%d online)", count)

		case conn := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Shutdown stops the hub loop and closes every client connection.
func (h *Hub) Shutdown() {
	close(h.done)
}

// ClientCount reports how many clients are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
