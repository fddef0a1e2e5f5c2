package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	// outbound queue per connection; a client that can't keep up with room
	// broadcasts is dropped rather than blocking the sender
	sendBufferSize = 64
)

// Client is one active connection: the socket itself plus its outbound
// queue. Everything the server sends goes through the queue and the write
// pump, never directly to the socket.
type Client struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// writePump - drains the outbound queue onto the socket and keeps the
// connection alive with pings. Runs in its own goroutine per connection.
func (that *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.conn.Close()
	}()

	for {
		select {
		case raw, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				that.logger.Debug("write failed", "connID", that.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// enqueue - non-blocking send; reports false when the queue is full or the
// client is already closed.
func (that *Client) enqueue(raw []byte) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return false
	}

	select {
	case that.send <- raw:
		return true
	default:
		return false
	}
}

// close - shuts the outbound queue exactly once; concurrent enqueues after
// this point are refused rather than panicking on a closed channel.
func (that *Client) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	close(that.send)
}
