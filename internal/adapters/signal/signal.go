package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/app"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/config"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/core"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/protocol"
)

var ErrBackpressure = errors.New("backpressure")

// Controller is the protocol dispatcher: it owns the WebSocket endpoint
// and translates inbound envelopes into orchestrator calls.
type Controller struct {
	Orch         *app.Orchestrator
	ReadLimit    int64
	WriteTimeout time.Duration
	SendBuffer   int
}

func NewController(orch *app.Orchestrator, cfg *config.Config) *Controller {
	return &Controller{
		Orch:         orch,
		ReadLimit:    cfg.ReadLimit,
		WriteTimeout: cfg.WriteTimeout,
		SendBuffer:   cfg.SendBuffer,
	}
}

type WsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *WsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsSignalConn) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed
}

func (c *WsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal upgrades the connection, registers the session, sends
// the welcome envelope and starts the pumps.
func (ctl *Controller) HandleSignal(ctx context.Context, c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}
	ws.SetReadLimit(ctl.ReadLimit)

	conn := &WsSignalConn{
		conn: ws,
		send: make(chan core.Frame, ctl.SendBuffer),
	}

	sid := core.SessionID(uuid.NewString())
	user := ctl.Orch.Connect(sid, conn)
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("id", string(user.ID)).Str("client", c.GetString("client_token")).Msg("new WS connection")

	ctl.sendJSON(conn, protocol.TypeWelcome, protocol.WelcomePayload{ID: user.ID})

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, sid, conn)
}
