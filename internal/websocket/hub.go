package websocket

import (
	"sync"

	"DriftChat/internal/utils"
)

// Hub is the connection registry. Register/unregister and inbound events run
// through a single loop, so handlers see one event at a time in arrival
// order. Outbound delivery writes straight to the buffered Send channels and
// never blocks on the loop, which lets handlers emit replies mid-event.
type Hub struct {
	clients    map[string]*Client // connection id -> client
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage

	// OnIncoming receives every client event, in arrival order.
	OnIncoming func(IncomingMessage)
	// OnDisconnect fires after a client is removed from the table.
	OnDisconnect func(id string)

	quit chan struct{}
	mu   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Info.Println("Hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			count := len(h.clients)
			h.mu.Unlock()
			utils.Info.Printf("Hub.register -> %s (online: %d)", c.ID, count)
			h.Broadcast(OutgoingMessage{Event: EventOnlineCount, Data: count})

		case c := <-h.unregister:
			h.mu.Lock()
			_, ok := h.clients[c.ID]
			if ok {
				delete(h.clients, c.ID)
				close(c.Send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			if ok {
				utils.Info.Printf("Hub.unregister -> %s (online: %d)", c.ID, count)
				if h.OnDisconnect != nil {
					h.OnDisconnect(c.ID)
				}
				h.Broadcast(OutgoingMessage{Event: EventOnlineCount, Data: count})
			}

		case req := <-h.incoming:
			if h.OnIncoming != nil {
				h.OnIncoming(req)
			}

		case <-h.quit:
			h.mu.Lock()
			for _, c := range h.clients {
				close(c.Send)
			}
			h.clients = make(map[string]*Client)
			h.mu.Unlock()
			return
		}
	}
}

// SendToClient delivers to a single connection. Unknown ids and slow clients
// are dropped rather than stalling the caller.
func (h *Hub) SendToClient(id string, msg OutgoingMessage) {
	h.mu.RLock()
	client, ok := h.clients[id]
	h.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case client.Send <- msg:
	default:
	}
}

// Broadcast delivers to every connection. The online count is recomputed and
// pushed through here on each connect/disconnect, which keeps the counter
// honest under bursts.
func (h *Hub) Broadcast(msg OutgoingMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- msg:
		default:
		}
	}
}

// ClientByID looks up a connection by identifier.
func (h *Hub) ClientByID(id string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[id]
	return c, ok
}

// Count returns the number of live connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Close() {
	close(h.quit)
}
