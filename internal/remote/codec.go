package remote

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"

	"github.com/muurk/slidecast/internal/controller"
	"github.com/muurk/slidecast/internal/presenter"
)

// Actions accepted from a remote.
const (
	ActionNext   = "next"
	ActionPrev   = "prev"
	ActionToggle = "toggle"
	ActionGoTo   = "goto"
)

// ErrUnknownAction is returned for a command whose action is not one of
// the Action constants.
var ErrUnknownAction = errors.New("remote: unknown action")

// ErrBadIndex is returned for a goto command with a negative index.
var ErrBadIndex = errors.New("remote: goto index must not be negative")

// Command is a navigation intent sent by a remote. Index is 0-based and
// only used by goto.
type Command struct {
	Action string `json:"action"`
	Index  int    `json:"index,omitempty"`
}

// Msg converts the command into the controller intent it stands for.
// Indexes past the end of the deck are left to the controller, which
// ignores them.
func (c Command) Msg() (tea.Msg, error) {
	switch c.Action {
	case ActionNext:
		return controller.NextMsg{}, nil
	case ActionPrev:
		return controller.PrevMsg{}, nil
	case ActionToggle:
		return controller.TogglePauseMsg{}, nil
	case ActionGoTo:
		if c.Index < 0 {
			return nil, ErrBadIndex
		}
		return controller.GoToMsg{Index: c.Index}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, c.Action)
}

// StateFrame is the presentation state pushed to remotes.
type StateFrame struct {
	Session    string  `json:"session"`
	Deck       string  `json:"deck"`
	Index      int     `json:"index"`
	Total      int     `json:"total"`
	SlideID    string  `json:"slide_id"`
	SlideTitle string  `json:"slide_title"`
	Paused     bool    `json:"paused"`
	Progress   float64 `json:"progress"`
}

// NewStateFrame builds the frame for a presenter status.
func NewStateFrame(session, deck string, s presenter.Status) StateFrame {
	return StateFrame{
		Session:    session,
		Deck:       deck,
		Index:      s.State.ActiveIndex,
		Total:      s.Total,
		SlideID:    s.SlideID,
		SlideTitle: s.SlideTitle,
		Paused:     s.State.Paused,
		Progress:   s.State.Progress,
	}
}

// EncodeCommand marshals a command for the wire.
func EncodeCommand(c Command) ([]byte, error) {
	return json.Marshal(c)
}

// DecodeCommand parses a command frame.
func DecodeCommand(data []byte) (Command, error) {
	var c Command
	if err := json.Unmarshal(data, &c); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	return c, nil
}

// EncodeFrame marshals a state frame for the wire.
func EncodeFrame(f StateFrame) ([]byte, error) {
	return json.Marshal(f)
}

// DecodeFrame parses a state frame.
func DecodeFrame(data []byte) (StateFrame, error) {
	var f StateFrame
	if err := json.Unmarshal(data, &f); err != nil {
		return StateFrame{}, fmt.Errorf("decode state frame: %w", err)
	}
	return f, nil
}
