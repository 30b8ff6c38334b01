package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// WsHandle adapts one gorilla websocket connection to the Handle interface.
// Gorilla permits a single concurrent writer, so Send serializes under a mutex.
type WsHandle struct {
	id   string
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
}

func NewWsHandle(conn *websocket.Conn) *WsHandle {
	return &WsHandle{id: uuid.New().String(), conn: conn}
}

func (h *WsHandle) ID() string {
	return h.id
}

func (h *WsHandle) Send(event string, payload any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return websocket.ErrCloseSent
	}

	_ = h.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return h.conn.WriteJSON(envelope{Event: event, Payload: payload})
}

// Close is safe to call more than once; duplicate disconnect events happen.
func (h *WsHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	return h.conn.Close()
}
