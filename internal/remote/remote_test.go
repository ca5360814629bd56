package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"
	"pgregory.net/rapid"

	"github.com/muurk/slidecast/internal/controller"
	"github.com/muurk/slidecast/internal/presenter"
	"github.com/muurk/slidecast/internal/version"
)

// fakePresentation applies intents to a real controller and reports back
// through Observe, like the presenter does on its event loop.
type fakePresentation struct {
	mu   sync.Mutex
	srv  *Server
	ctrl controller.Controller
	msgs []tea.Msg
}

func newFakePresentation(t *testing.T, srv *Server) *fakePresentation {
	t.Helper()
	ctrl, err := controller.New([]time.Duration{time.Hour, time.Hour, time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	f := &fakePresentation{srv: srv, ctrl: ctrl}
	srv.SetDispatcher(f)
	srv.Observe(f.status())
	return f
}

func (f *fakePresentation) status() presenter.Status {
	st := f.ctrl.State()
	ids := []string{"a", "b", "c"}
	return presenter.Status{State: st, Total: f.ctrl.Len(), SlideID: ids[st.ActiveIndex], SlideTitle: strings.ToUpper(ids[st.ActiveIndex])}
}

func (f *fakePresentation) Send(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	f.ctrl, _ = f.ctrl.Update(msg)
	f.srv.Observe(f.status())
}

func (f *fakePresentation) received() []tea.Msg {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tea.Msg(nil), f.msgs...)
}

func TestCommandMsg(t *testing.T) {
	tests := []struct {
		cmd     Command
		want    tea.Msg
		wantErr error
	}{
		{Command{Action: ActionNext}, controller.NextMsg{}, nil},
		{Command{Action: ActionPrev}, controller.PrevMsg{}, nil},
		{Command{Action: ActionToggle}, controller.TogglePauseMsg{}, nil},
		{Command{Action: ActionGoTo, Index: 3}, controller.GoToMsg{Index: 3}, nil},
		{Command{Action: ActionGoTo}, controller.GoToMsg{Index: 0}, nil},
		{Command{Action: ActionGoTo, Index: -1}, nil, ErrBadIndex},
		{Command{Action: "jump"}, nil, ErrUnknownAction},
		{Command{}, nil, ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Action, func(t *testing.T) {
			got, err := tt.cmd.Msg()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Msg() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Msg() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecodeCommand(t *testing.T) {
	cmd, err := DecodeCommand([]byte(`{"action":"goto","index":2}`))
	if err != nil {
		t.Fatalf("DecodeCommand() error = %v", err)
	}
	if cmd != (Command{Action: ActionGoTo, Index: 2}) {
		t.Errorf("DecodeCommand() = %+v", cmd)
	}

	if _, err := DecodeCommand([]byte(`{"action":`)); err == nil {
		t.Error("DecodeCommand(truncated) should fail")
	}
}

func TestHubKeepsLatestFrame(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Publish([]byte("1"))
	hub.Publish([]byte("2"))
	hub.Publish([]byte("3"))

	if got := string(<-sub.Frames()); got != "3" {
		t.Errorf("pending frame = %q, want 3", got)
	}
	select {
	case f := <-sub.Frames():
		t.Errorf("unexpected extra frame %q", f)
	default:
	}

	late := hub.Subscribe()
	if got := string(<-late.Frames()); got != "3" {
		t.Errorf("new subscriber got %q, want the latest frame", got)
	}

	hub.Unsubscribe(sub)
	hub.Unsubscribe(late)
	if hub.Len() != 0 {
		t.Errorf("Len() = %d after unsubscribing everyone", hub.Len())
	}
}

func TestHubPropertyLatestWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hub := NewHub()
		sub := hub.Subscribe()
		frames := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,4}`), 1, 50).Draw(t, "frames")

		for _, f := range frames {
			hub.Publish([]byte(f))
		}

		last := frames[len(frames)-1]
		if got := string(<-sub.Frames()); got != last {
			t.Fatalf("pending frame = %q, want %q", got, last)
		}
		if got := string(hub.Latest()); got != last {
			t.Fatalf("Latest() = %q, want %q", got, last)
		}
	})
}

func TestIntentEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantMsg    tea.Msg
	}{
		{"next", http.MethodPost, "/intent/next", http.StatusAccepted, controller.NextMsg{}},
		{"prev", http.MethodPost, "/intent/prev", http.StatusAccepted, controller.PrevMsg{}},
		{"toggle", http.MethodPost, "/intent/toggle", http.StatusAccepted, controller.TogglePauseMsg{}},
		{"goto", http.MethodPost, "/intent/goto?index=2", http.StatusAccepted, controller.GoToMsg{Index: 2}},
		{"goto without index", http.MethodPost, "/intent/goto", http.StatusBadRequest, nil},
		{"goto negative", http.MethodPost, "/intent/goto?index=-1", http.StatusBadRequest, nil},
		{"unknown action", http.MethodPost, "/intent/jump", http.StatusBadRequest, nil},
		{"wrong method", http.MethodGet, "/intent/next", http.StatusMethodNotAllowed, nil},
		{"unknown route", http.MethodGet, "/slides", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(Config{DeckTitle: "Demo"})
			fake := newFakePresentation(t, srv)

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}

			msgs := fake.received()
			if tt.wantMsg == nil {
				if len(msgs) != 0 {
					t.Errorf("dispatched %v, want nothing", msgs)
				}
				return
			}
			if len(msgs) != 1 || msgs[0] != tt.wantMsg {
				t.Errorf("dispatched %v, want exactly %#v", msgs, tt.wantMsg)
			}
		})
	}
}

func TestIntentBeforeStart(t *testing.T) {
	srv := New(Config{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/intent/next", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestStateEndpoint(t *testing.T) {
	srv := New(Config{DeckTitle: "Demo"})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before any state = %d, want 503", rec.Code)
	}

	newFakePresentation(t, srv)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	frame, err := DecodeFrame(rec.Body.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	want := StateFrame{Session: srv.Session(), Deck: "Demo", Total: 3, SlideID: "a", SlideTitle: "A"}
	if frame != want {
		t.Errorf("frame = %+v, want %+v", frame, want)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(Config{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), srv.Session()) {
		t.Errorf("body %s does not carry the session", rec.Body)
	}
	if !strings.Contains(rec.Body.String(), version.Short()) {
		t.Errorf("body %s does not carry the build version", rec.Body)
	}
}

func startTestServer(t *testing.T) (*Server, *fakePresentation, *Client) {
	t.Helper()
	srv := New(Config{DeckTitle: "Demo"})
	fake := newFakePresentation(t, srv)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client := NewClient(strings.TrimPrefix(ts.URL, "http://"))
	client.Timeout = 2 * time.Second
	return srv, fake, client
}

func TestClientSend(t *testing.T) {
	_, fake, client := startTestServer(t)
	ctx := context.Background()

	frame, err := client.Send(ctx, Command{Action: ActionNext})
	if err != nil {
		t.Fatalf("Send(next) error = %v", err)
	}
	if frame.Index != 1 || frame.SlideID != "b" {
		t.Errorf("after next frame = %+v", frame)
	}

	frame, err = client.Send(ctx, Command{Action: ActionToggle})
	if err != nil {
		t.Fatalf("Send(toggle) error = %v", err)
	}
	if !frame.Paused {
		t.Error("after toggle the frame should be paused")
	}

	frame, err = client.Send(ctx, Command{Action: ActionGoTo, Index: 1})
	if err != nil {
		t.Fatalf("Send(goto active) error = %v", err)
	}
	if frame.Index != 1 {
		t.Errorf("goto to the active slide frame = %+v", frame)
	}

	if got := len(fake.received()); got != 3 {
		t.Errorf("dispatched %d intents, want 3", got)
	}

	if _, err := client.Send(ctx, Command{Action: "jump"}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Send(jump) error = %v, want ErrUnknownAction", err)
	}
}

func TestClientState(t *testing.T) {
	srv, _, client := startTestServer(t)

	frame, err := client.State(context.Background())
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}
	if frame.Session != srv.Session() || frame.Total != 3 {
		t.Errorf("State() = %+v", frame)
	}
}

func TestWebSocketIgnoresMalformedCommands(t *testing.T) {
	srv := New(Config{DeckTitle: "Demo"})
	fake := newFakePresentation(t, srv)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	if _, err := readFrame(conn); err != nil {
		t.Fatalf("no initial frame: %v", err)
	}

	for _, raw := range []string{"garbage", `{"action":"jump"}`, `{"action":"next"}`} {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(raw)); err != nil {
			t.Fatal(err)
		}
	}

	frame, err := readFrame(conn)
	if err != nil {
		t.Fatalf("connection should survive bad commands: %v", err)
	}
	if frame.Index != 1 {
		t.Errorf("frame = %+v, want index 1", frame)
	}
	if got := fake.received(); len(got) != 1 || got[0] != (controller.NextMsg{}) {
		t.Errorf("dispatched %v, want one NextMsg", got)
	}
}

func TestTXTRecords(t *testing.T) {
	srv := New(Config{DeckTitle: strings.Repeat("é", 150)})

	txt := srv.txtRecords()
	if len(txt) != 2 || txt[0] != "session="+srv.Session() {
		t.Fatalf("txtRecords() = %v", txt)
	}
	deck := strings.TrimPrefix(txt[1], "deck=")
	if len(deck) > maxTXTValue || !strings.HasPrefix(strings.Repeat("é", 150), deck) {
		t.Errorf("deck record not truncated on a rune boundary: %d bytes", len(deck))
	}
	if !strings.HasPrefix(srv.instanceName(), "slidecast-") {
		t.Errorf("instanceName() = %q", srv.instanceName())
	}
}

func TestStartAndShutdown(t *testing.T) {
	srv := New(Config{Addr: "127.0.0.1:0"})
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if srv.Addr() == nil {
		t.Fatal("Addr() = nil after Start")
	}

	resp, err := http.Get("http://" + srv.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}

	other := New(Config{Addr: "127.0.0.1:0"})
	if err := other.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer other.Shutdown(context.Background())

	busy := New(Config{Addr: other.Addr().String()})
	if err := busy.Start(context.Background()); err == nil {
		t.Error("Start() on a taken address should fail")
	}
}
