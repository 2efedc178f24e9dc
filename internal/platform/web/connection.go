package web

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Commands are tiny; anything larger is a misbehaving client
	maxMessageSize = 1024
)

// Connection is one browser session. It owns its engine, so rounds are never
// shared between connections.
type Connection struct {
	conn      *websocket.Conn
	engine    *hangman.Engine
	send      chan *ServerMessage
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newConnection(conn *websocket.Conn, engine *hangman.Engine, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:   conn,
		engine: engine,
		send:   make(chan *ServerMessage, 16),
		logger: logger.With("remote", conn.RemoteAddr().String()),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start sends the opening state and begins handling the connection.
func (c *Connection) Start() {
	c.enqueue(stateMessage(hangman.GuessResult{
		Outcome: hangman.OutcomeNone,
		View:    c.engine.CurrentView(),
	}))
	go c.writePump()
	go c.readPump()
}

// Done is closed when the connection has shut down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close closes the connection.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

func (c *Connection) enqueue(msg *ServerMessage) {
	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	}
}

// readPump handles incoming commands from the browser.
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("websocket error", "error", err)
			}
			return
		}
		c.enqueue(c.handleMessage(msg))
	}
}

// writePump sends queued messages and keeps the connection alive with pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Error("failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage applies one command to the engine. Actions the engine does
// not own are rejected without touching the round.
func (c *Connection) handleMessage(msg ClientMessage) *ServerMessage {
	cmd := core.Command{Action: core.ParseAction(msg.Action), Text: msg.Text}

	res, ok := c.engine.Apply(cmd)
	if !ok {
		c.logger.Debug("rejected message", "action", msg.Action)
		return errorMessage(fmt.Sprintf("unsupported action %q", msg.Action))
	}

	c.logger.Debug("command",
		"action", cmd.Action,
		"outcome", res.Outcome,
		"chances", res.View.ChancesRemaining,
	)
	if res.Outcome.Applied() && res.View.State.Over() {
		c.logger.Info("round over", "state", res.View.State, "word", res.View.Answer)
	}
	return stateMessage(res)
}
