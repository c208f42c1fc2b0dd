package websocket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	defaultPongWait       = 60 * time.Second
	defaultMaxMessageSize = 512
)

// Close codes for handshake failures and for a connection taken over by a newer one.
const (
	CloseReplaced     = 4000
	CloseMissingToken = 4001
	CloseInvalidToken = 4003
	CloseUserNotFound = 4004
)

// connection - one player's socket. Writes are serialized, reads belong to the handler goroutine.
type connection struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func newConnection(ws *websocket.Conn) *connection {
	return &connection{
		ws: ws,
	}
}

func (that *connection) Send(ctx context.Context, message any) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	deadline := time.Now().Add(writeWait)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := that.ws.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.ws.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// close - sends a close frame with the code and reason, then drops the socket.
func (that *connection) close(code int, reason string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	frame := websocket.FormatCloseMessage(code, reason)
	if err := that.ws.WriteControl(websocket.CloseMessage, frame, time.Now().Add(writeWait)); err != nil {
		_ = that.ws.Close()
		return fmt.Errorf("failed to write close frame: %w", err)
	}

	return that.ws.Close()
}

// keepAlive - pings the client every period until done is closed or a ping can't be written.
func (that *connection) keepAlive(done <-chan struct{}, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := that.ping(); err != nil {
				return
			}
		}
	}
}

func (that *connection) ping() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to write ping: %w", err)
	}

	return nil
}

// expectPongs - limits frame size and drops the connection when no pong arrives within pongWait.
func (that *connection) expectPongs(maxMessageSize int64, pongWait time.Duration) error {
	that.ws.SetReadLimit(maxMessageSize)

	if err := that.ws.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return fmt.Errorf("failed to set read deadline: %w", err)
	}

	that.ws.SetPongHandler(func(string) error {
		return that.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	return nil
}
