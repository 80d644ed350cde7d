// Package server exposes a room over websockets. Each client is greeted,
// joined to the room as a new player, and answered with its view payload
// whenever it asks for one.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phanxgames/skifree/room"
)

// Greeting is the first message sent on every connection.
const Greeting = "Hello, Client!"

// Message types accepted from clients.
const (
	MessageView = "view"
)

// ClientMessage is a message received from a client.
type ClientMessage struct {
	Type string `json:"type"`
}

// HandlerConfig tunes connection keep-alive and limits.
type HandlerConfig struct {
	ReadLimit  int64
	WriteWait  time.Duration
	PongWait   time.Duration
	PingPeriod time.Duration
}

// DefaultHandlerConfig returns the standard connection settings.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		ReadLimit:  4096,
		WriteWait:  10 * time.Second,
		PongWait:   60 * time.Second,
		PingPeriod: 54 * time.Second,
	}
}

// Handler serves the room's websocket endpoint.
type Handler struct {
	room     *room.Room
	log      *slog.Logger
	cfg      HandlerConfig
	upgrader websocket.Upgrader
}

// NewHandler returns a websocket handler for rm. A nil logger uses
// slog.Default.
func NewHandler(rm *room.Room, log *slog.Logger, cfg HandlerConfig) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		room: rm,
		log:  log,
		cfg:  cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// conn wraps a websocket with the write lock shared by the reader and the
// pinger.
type conn struct {
	ws        *websocket.Conn
	mu        sync.Mutex
	writeWait time.Duration
}

func (c *conn) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(c.writeWait))
	return c.ws.WriteMessage(messageType, data)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer ws.Close()

	log := h.log.With("remote", ws.RemoteAddr().String())
	log.Info("new connection")
	c := &conn{ws: ws, writeWait: h.cfg.WriteWait}

	if err := c.write(websocket.TextMessage, []byte(Greeting)); err != nil {
		log.Info("connection closed", "err", err)
		return
	}

	player, err := h.room.Join()
	if err != nil {
		log.Error("join failed", "err", err)
		return
	}
	log = log.With("player", player.ID)
	log.Debug("player created", "color", player.Color)
	defer func() {
		if err := h.room.Leave(player.ID); err != nil {
			log.Warn("leave failed", "err", err)
		}
		log.Info("connection closed")
	}()

	done := make(chan struct{})
	defer close(done)
	go h.ping(c, done)

	ws.SetReadLimit(h.cfg.ReadLimit)
	ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("read failed", "err", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Warn("invalid JSON message", "message", string(data))
			continue
		}

		switch msg.Type {
		case MessageView:
			payload, err := h.room.Payload(player.ID)
			if err != nil {
				log.Error("payload failed", "err", err)
				return
			}
			out, err := json.Marshal(payload)
			if err != nil {
				log.Error("marshal payload", "err", err)
				continue
			}
			if err := c.write(websocket.TextMessage, out); err != nil {
				log.Info("write failed", "err", err)
				return
			}
		default:
			log.Warn("invalid message type", "message", string(data))
		}
	}
}

func (h *Handler) ping(c *conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// NewServeMux routes /ws to the websocket handler, /schema to the payload
// JSON schema and /health to a liveness check.
func NewServeMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		data, err := json.MarshalIndent(PayloadSchema(), "", "  ")
		if err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/schema+json")
		w.Write(data)
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}
