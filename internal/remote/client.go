package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// DefaultClientTimeout bounds a whole client call
	DefaultClientTimeout = 5 * time.Second

	// settleWait is how long Send waits for the command to show up in the
	// state stream before reporting the latest frame it saw.
	settleWait = 750 * time.Millisecond
)

// Client drives a running presentation.
type Client struct {
	// Addr is the host:port of the remote control endpoint
	Addr string

	// Timeout bounds each call; zero means DefaultClientTimeout
	Timeout time.Duration

	HTTPClient *http.Client
	Dialer     *websocket.Dialer
}

// NewClient creates a client for addr.
func NewClient(addr string) *Client {
	return &Client{Addr: addr, Timeout: DefaultClientTimeout}
}

func (c *Client) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultClientTimeout
	}
	return c.Timeout
}

// Send delivers one command over the websocket and returns the state
// after it took effect. If the state does not visibly change (for
// example goto to the active slide) the latest frame is returned once the
// stream settles.
func (c *Client) Send(ctx context.Context, cmd Command) (StateFrame, error) {
	if _, err := cmd.Msg(); err != nil {
		return StateFrame{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	dialer := c.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	u := url.URL{Scheme: "ws", Host: c.Addr, Path: "/ws"}
	conn, _, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return StateFrame{}, fmt.Errorf("failed to connect to %s: %w", c.Addr, err)
	}
	defer func() { _ = conn.Close() }()

	deadline, _ := ctx.Deadline()
	_ = conn.SetReadDeadline(deadline)
	before, err := readFrame(conn)
	if err != nil {
		return StateFrame{}, fmt.Errorf("no state from presentation: %w", err)
	}

	data, err := EncodeCommand(cmd)
	if err != nil {
		return StateFrame{}, err
	}
	_ = conn.SetWriteDeadline(deadline)
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return StateFrame{}, fmt.Errorf("failed to send command: %w", err)
	}

	settle := time.Now().Add(settleWait)
	if settle.After(deadline) {
		settle = deadline
	}
	_ = conn.SetReadDeadline(settle)

	after := before
	for {
		f, err := readFrame(conn)
		if err != nil {
			if isTimeout(err) {
				return after, nil
			}
			return StateFrame{}, fmt.Errorf("failed to read state: %w", err)
		}
		after = f
		if f.Index != before.Index || f.Paused != before.Paused {
			return after, nil
		}
	}
}

// State fetches the current state over HTTP.
func (c *Client) State(ctx context.Context) (StateFrame, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	u := url.URL{Scheme: "http", Host: c.Addr, Path: "/state"}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return StateFrame{}, err
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return StateFrame{}, fmt.Errorf("failed to reach %s: %w", c.Addr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMessageSize))
	if err != nil {
		return StateFrame{}, fmt.Errorf("failed to read state: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return StateFrame{}, fmt.Errorf("state request failed: %s", resp.Status)
	}
	return DecodeFrame(body)
}

func readFrame(conn *websocket.Conn) (StateFrame, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return StateFrame{}, err
	}
	return DecodeFrame(data)
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
