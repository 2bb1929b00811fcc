package realtime

import (
	"debaren/internal/lib/logger/sl"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 1 << 16
)

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	subject   string
	log       *slog.Logger
	closeOnce sync.Once
}

type command struct {
	Action string `json:"action"`
}

type pong struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

func (c *Client) writePump() {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.log.Debug("websocket write failed", sl.Err(err))
				c.hub.detach(c)
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.log.Debug("websocket ping failed", sl.Err(err))
				c.hub.detach(c)
				return
			}
		}
	}
}

func (c *Client) readPump() {
	defer c.hub.detach(c)

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Debug("websocket read failed", sl.Err(err))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		if strings.EqualFold(cmd.Action, "ping") {
			data, err := json.Marshal(pong{Type: "system.pong", OccurredAt: time.Now().UTC()})
			if err != nil {
				continue
			}
			c.enqueue(data)
		}
	}
}

// enqueue hands data to the write pump, detaching the client when its buffer is full.
func (c *Client) enqueue(data []byte) {
	c.hub.mu.RLock()
	_, attached := c.hub.clients[c]
	if attached {
		select {
		case c.send <- data:
		default:
			attached = false
		}
	}
	c.hub.mu.RUnlock()

	if !attached {
		go c.hub.detach(c)
	}
}
