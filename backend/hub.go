package main

import (
	"encoding/json"
	"sync"
)

// Hub fans status and reset events out to every connected websocket client.
type Hub struct {
	mu              sync.Mutex
	clients         map[*Client]struct{}
	broadcastStatus chan StatusResponse
	broadcastReset  chan StatusResponse
	broadcastSearch chan SearchResult
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		clients:         make(map[*Client]struct{}),
		broadcastStatus: make(chan StatusResponse, 32),
		broadcastReset:  make(chan StatusResponse, 8),
		broadcastSearch: make(chan SearchResult, 8),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastStatus:
			h.publish(wsMessage{Type: "status", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastReset:
			h.publish(wsMessage{Type: "reset", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastSearch:
			h.publish(wsMessage{Type: "search", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) publish(msg wsMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.sendJSON(msg)
	}
}

// Status, Reset and Search never block the caller; events are dropped when
// the queue is full or nobody is listening.
func (h *Hub) Status(payload StatusResponse) {
	if !h.HasClients() {
		return
	}
	select {
	case h.broadcastStatus <- payload:
	default:
	}
}

func (h *Hub) Reset(payload StatusResponse) {
	if !h.HasClients() {
		return
	}
	select {
	case h.broadcastReset <- payload:
	default:
	}
}

func (h *Hub) Search(payload SearchResult) {
	if !h.HasClients() {
		return
	}
	select {
	case h.broadcastSearch <- payload:
	default:
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
