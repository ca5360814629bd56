package remote

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/slidecast/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Remotes are phones and terminals on the local network, not pages
	// served from a known origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleWebSocket streams state frames to a remote and reads its commands
// until either side closes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := r.RemoteAddr
	s.wg.Add(1)
	defer s.wg.Done()

	s.connMu.Lock()
	s.activeConns[remoteAddr] = conn
	s.connMu.Unlock()

	sub := s.hub.Subscribe()
	logging.LogConnection(remoteAddr, "websocket_opened")

	done := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeFrames(conn, sub, done, remoteAddr)
	}()

	s.readCommands(conn, remoteAddr)

	close(done)
	<-writerDone
	s.hub.Unsubscribe(sub)

	s.connMu.Lock()
	delete(s.activeConns, remoteAddr)
	s.connMu.Unlock()

	_ = conn.Close()
	logging.LogConnection(remoteAddr, "websocket_closed")
}

// readCommands decodes and dispatches command frames. Malformed or
// rejected commands are logged and skipped.
func (s *Server) readCommands(conn *websocket.Conn, remoteAddr string) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("Connection closed or error reading frame",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		cmd, err := DecodeCommand(data)
		if err != nil {
			logging.Warn("Ignoring malformed remote command",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			continue
		}
		if err := s.dispatch(cmd, remoteAddr, "websocket"); err != nil {
			logging.Warn("Rejected remote command",
				zap.String("remote_addr", remoteAddr),
				zap.String("action", cmd.Action),
				zap.Error(err),
			)
		}
	}
}

// writeFrames is the only writer on conn.
func (s *Server) writeFrames(conn *websocket.Conn, sub *Subscription, done <-chan struct{}, remoteAddr string) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data := <-sub.Frames():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logging.Debug("Failed to write state frame",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
				_ = conn.Close()
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				return
			}

		case <-done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}
