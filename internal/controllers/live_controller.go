package controllers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"forklift_tracker/internal/middleware"
	"forklift_tracker/internal/telemetry"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // dashboards connect from arbitrary dev origins
	},
}

// LiveHub fans accepted telemetry out to connected dashboard clients. It
// implements telemetry.Broadcaster; the ingest pipeline publishes into it
// and never blocks on slow consumers. Every client gets its own buffered
// send channel drained by a writer goroutine, so one stalled connection
// only loses its own updates.
type LiveHub struct {
	clients   map[*websocket.Conn]chan telemetry.LiveUpdate
	broadcast chan telemetry.LiveUpdate
	mu        sync.Mutex
}

const clientSendBuffer = 16

func NewLiveHub() *LiveHub {
	hub := &LiveHub{
		clients:   make(map[*websocket.Conn]chan telemetry.LiveUpdate),
		broadcast: make(chan telemetry.LiveUpdate, 100),
	}
	go hub.run()
	return hub
}

func (h *LiveHub) run() {
	for update := range h.broadcast {
		h.mu.Lock()
		for conn, send := range h.clients {
			select {
			case send <- update:
			default:
				logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).
					Warn("live client send buffer full, dropping update for it")
			}
		}
		h.mu.Unlock()
	}
}

// writer owns all writes to one connection; gorilla/websocket allows a
// single concurrent writer per conn.
func (h *LiveHub) writer(conn *websocket.Conn, send <-chan telemetry.LiveUpdate) {
	for update := range send {
		if err := conn.WriteJSON(update); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).
					Info("live client closed during broadcast, dropping")
			} else {
				logrus.WithError(err).Warn("failed to push live update to client")
			}
			h.unregister(conn)
			conn.Close()
			return
		}
	}
}

func (h *LiveHub) register(conn *websocket.Conn) {
	send := make(chan telemetry.LiveUpdate, clientSendBuffer)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()
	go h.writer(conn, send)
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("live client registered")
}

func (h *LiveHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if send, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(send)
		logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("live client unregistered")
	}
}

// PublishUpdate queues an update for broadcast, dropping it when the
// channel is full rather than stalling ingest.
func (h *LiveHub) PublishUpdate(update telemetry.LiveUpdate) {
	select {
	case h.broadcast <- update:
	default:
		logrus.Warn("live broadcast channel full, dropping update")
	}
}

// LiveController upgrades authenticated dashboard connections into hub
// subscribers.
type LiveController struct {
	Hub *LiveHub
}

// HandleLiveWebSocket authenticates via a `token` query parameter (the
// browser WebSocket API cannot set an Authorization header) and then keeps
// the connection registered until the client goes away.
func (l *LiveController) HandleLiveWebSocket(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing authentication token"})
		return
	}
	claims, err := middleware.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("failed to upgrade websocket connection")
		return
	}
	defer conn.Close()

	logrus.WithFields(logrus.Fields{
		"user_id": claims.UserID,
		"role":    claims.Role,
	}).Info("live websocket connection established")

	l.Hub.register(conn)
	defer l.Hub.unregister(conn)

	// Subscribers only listen; reads just detect disconnection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).Debug("live websocket read error")
			}
			return
		}
	}
}
