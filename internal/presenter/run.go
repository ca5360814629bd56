package presenter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/slidecast/internal/config"
	"github.com/muurk/slidecast/internal/leads"
	"github.com/muurk/slidecast/internal/logging"
	"github.com/muurk/slidecast/internal/slides"
)

// ErrNoTerminal is returned by Run when the output is not a terminal.
var ErrNoTerminal = errors.New("presenter: output is not a terminal")

// Options configures Run.
type Options struct {
	Deck *config.Deck

	// Sink receives registrations. Defaults to leads.LogSink.
	Sink leads.Sink

	// Observer receives status updates. May be nil.
	Observer Observer

	// OnStart is called with the program before it starts, so that other
	// goroutines can deliver intents with Program.Send.
	OnStart func(*tea.Program)

	// Input and Output default to stdin and stdout.
	Input  io.Reader
	Output *os.File
}

// CheckTerminal returns ErrNoTerminal unless f is a terminal.
func CheckTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return ErrNoTerminal
	}
	return nil
}

// Run presents the deck until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if err := CheckTerminal(out); err != nil {
		return err
	}

	model, err := NewAppModel(opts.Deck, slides.Mounter{Sink: opts.Sink}, opts.Observer)
	if err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}

	p := tea.NewProgram(model, progOpts...)
	if opts.OnStart != nil {
		opts.OnStart(p)
	}

	logging.Info("Presentation started",
		zap.String("deck", opts.Deck.Title),
		zap.Int("slides", len(opts.Deck.Slides)),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("presenter error: %w", err)
	}
	if m, ok := final.(AppModel); ok {
		logging.Info("Presentation ended", zap.Int("registrations", m.Registrations()))
	}
	return nil
}
