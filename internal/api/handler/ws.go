package handler

import (
	"net/http"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/realtime"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

type WsHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewWsHandler(hub *realtime.Hub, clientOrigin string) *WsHandler {
	return &WsHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if clientOrigin == "" || clientOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == clientOrigin
			},
		},
	}
}

// Connect handles GET /ws?userId=…
// The connection is registered for the whole lifetime of the socket and
// unregistered when the read loop observes the close.
func (h *WsHandler) Connect(c *gin.Context) {

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "userId is required"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("websocket upgrade failed for user %v: %v", userID, err)
		return
	}

	handle := realtime.NewWsHandle(conn)
	h.hub.Register(userID, handle)

	go h.readLoop(userID, handle, conn)
	go h.pingLoop(handle, conn)
}

func (h *WsHandler) readLoop(userID string, handle *realtime.WsHandle, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(userID, handle)
		_ = handle.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Clients do not send application messages; the loop exists to notice
	// the close and to service pongs.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WsHandler) pingLoop(handle *realtime.WsHandle, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
			return
		}
	}
}
