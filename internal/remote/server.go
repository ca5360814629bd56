package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/slidecast/internal/logging"
	"github.com/muurk/slidecast/internal/presenter"
	"github.com/muurk/slidecast/internal/version"
)

// ErrNotReady is returned for intents that arrive before the presentation
// has started.
var ErrNotReady = errors.New("remote: presentation not running")

// Dispatcher delivers an intent to the presentation event loop.
// *tea.Program satisfies it.
type Dispatcher interface {
	Send(msg tea.Msg)
}

// Config holds the remote server configuration
type Config struct {
	Addr      string // listen address, e.g. ":8765"
	DeckTitle string // published in state frames and the mDNS TXT record
	Advertise bool   // register the service over mDNS
}

// Server is the presenter remote: it streams state to connected remotes
// and forwards their intents to the presentation.
type Server struct {
	config  Config
	session string
	hub     *Hub
	router  *mux.Router

	mu         sync.RWMutex
	dispatcher Dispatcher

	httpServer *http.Server
	listener   net.Listener
	mdns       *zeroconf.Server

	wg          sync.WaitGroup
	connMu      sync.Mutex
	activeConns map[string]*websocket.Conn
}

// New creates a server with a fresh session ID. It does not listen until
// Start.
func New(config Config) *Server {
	s := &Server{
		config:      config,
		session:     uuid.NewString(),
		hub:         NewHub(),
		activeConns: make(map[string]*websocket.Conn),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/intent/{action}", s.handleIntent).Methods(http.MethodPost)
	r.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)
	return r
}

// Session returns the session ID.
func (s *Server) Session() string {
	return s.session
}

// Handler returns the HTTP handler serving the remote API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Clients returns the number of connected websocket remotes.
func (s *Server) Clients() int {
	return s.hub.Len()
}

// SetDispatcher sets where intents go. Until it is called intents are
// rejected with ErrNotReady.
func (s *Server) SetDispatcher(d Dispatcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatcher = d
}

// Observe publishes a presenter status to every remote. It implements
// presenter.Observer and never blocks.
func (s *Server) Observe(st presenter.Status) {
	data, err := EncodeFrame(NewStateFrame(s.session, s.config.DeckTitle, st))
	if err != nil {
		logging.Warn("Failed to encode state frame", zap.Error(err))
		return
	}
	s.hub.Publish(data)
}

// dispatch validates cmd and hands the intent to the presentation.
func (s *Server) dispatch(cmd Command, remoteAddr, transport string) error {
	msg, err := cmd.Msg()
	if err != nil {
		return err
	}

	s.mu.RLock()
	d := s.dispatcher
	s.mu.RUnlock()
	if d == nil {
		return ErrNotReady
	}

	logging.LogRemoteCommand(remoteAddr, transport, cmd.Action, cmd.Index)
	d.Send(msg)
	return nil
}

// Start listens on the configured address and serves in the background.
// A listen failure is returned; an mDNS failure is only logged.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Remote server stopped", zap.Error(err))
		}
	}()

	logging.Info("Remote control listening",
		zap.String("addr", listener.Addr().String()),
		zap.String("session", s.session),
	)

	if s.config.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		if err := s.advertise(port); err != nil {
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		}
	}

	return nil
}

// Addr returns the listening address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown stops advertising, closes every remote and waits for the
// handlers to finish or ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down remote control...")

	if s.mdns != nil {
		s.mdns.Shutdown()
		s.mdns = nil
	}

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	// Hijacked websocket connections are not closed by http.Server
	s.connMu.Lock()
	for addr, conn := range s.activeConns {
		logging.Debug("Closing remote connection", zap.String("remote_addr", addr))
		_ = conn.Close()
	}
	s.connMu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logging.Warn("Remote shutdown timeout, forcing close")
	}
	return err
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"session": s.session,
		"version": version.Short(),
		"clients": s.Clients(),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	data := s.hub.Latest()
	if data == nil {
		writeError(w, http.StatusServiceUnavailable, ErrNotReady.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleIntent(w http.ResponseWriter, r *http.Request) {
	cmd := Command{Action: mux.Vars(r)["action"]}
	if cmd.Action == ActionGoTo {
		index, err := strconv.Atoi(r.URL.Query().Get("index"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "goto requires an integer index")
			return
		}
		cmd.Index = index
	}

	if err := s.dispatch(cmd, r.RemoteAddr, "http"); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, cmd)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownAction), errors.Is(err, ErrBadIndex):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotReady):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes a JSON response with the provided status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
