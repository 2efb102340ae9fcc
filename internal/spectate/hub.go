// Package spectate streams world snapshots to websocket viewers.
package spectate

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/trouvaiilx/arcane-survivors/internal/app"
)

const (
	writeWait  = 2 * time.Second
	sendBuffer = 4
)

// Hub fans snapshots out to connected viewers. Each viewer has its own
// goroutine and a small buffer; a viewer that falls behind misses frames
// instead of stalling the simulation.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	latest   []byte
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: logger,
	}
}

// Encode packs a snapshot into a binary frame.
func Encode(s app.Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode unpacks a frame produced by Encode.
func Decode(data []byte) (app.Snapshot, error) {
	var s app.Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return s, nil
}

// Publish encodes s and queues it for every viewer.
func (h *Hub) Publish(s app.Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// viewer is behind; drop this frame for it
		}
	}
	return nil
}

// Clients reports how many viewers are connected.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and streams frames until the viewer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("upgrade failed")
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
	h.mu.Unlock()
	h.log.Info().Str("remote", r.RemoteAddr).Msg("viewer connected")

	done := make(chan struct{})
	go func() {
		defer close(done)
		// viewers never send anything meaningful; reading detects the close
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		conn.Close()
		h.log.Info().Str("remote", r.RemoteAddr).Msg("viewer disconnected")
	}()

	for {
		select {
		case data := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		c.conn.Close()
	}
}
