package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/slidecast/internal/config"
	"github.com/muurk/slidecast/internal/logging"
	"github.com/muurk/slidecast/internal/presenter"
	"github.com/muurk/slidecast/internal/remote"
	"github.com/muurk/slidecast/internal/ui"
)

// Shared flags
var (
	deckPath string
	logLevel string
	logFile  string
)

// Present flags
var (
	remoteAddr string
	advertise  bool
)

// Init flags
var initForce bool

func init() {
	rootCmd.PersistentFlags().StringVar(&deckPath, "deck", "", "Deck file (default: $SLIDECAST_DECK, then the user deck, then the built-in deck)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (present defaults to the config directory)")

	for _, cmd := range []*cobra.Command{rootCmd, presentCmd} {
		cmd.Flags().StringVar(&remoteAddr, "remote", "", "Serve the remote control on this address (e.g. :8765)")
		cmd.Flags().BoolVar(&advertise, "advertise", false, "Advertise the remote control over mDNS")
	}
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing deck without asking")

	rootCmd.AddCommand(presentCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
}

// presentCmd runs the presentation
var presentCmd = &cobra.Command{
	Use:   "present",
	Short: "Present the deck full-screen",
	Long: `Present the deck full-screen in the current terminal.

Slides advance automatically. Use ←/→ to browse, space to pause, 1-9 to
jump to a section and q to quit. With --remote the presentation can also
be followed and driven over the network (see 'slidecast remote').

Logs go to a file because the terminal belongs to the presentation.`,
	Example: `  # Present the configured deck
  slidecast present
  # Or simply (present is default):
  slidecast

  # Present a specific deck with a network remote
  slidecast present --deck webinar.yaml --remote :8765 --advertise`,
	Args: cobra.NoArgs,
	RunE: runPresent,
}

func runPresent(cmd *cobra.Command, args []string) error {
	// Fatal before touching the screen or the network
	if err := presenter.CheckTerminal(os.Stdout); err != nil {
		return fmt.Errorf("%w: run slidecast from an interactive terminal", err)
	}

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if err := setupFileLogging(env); err != nil {
		return err
	}
	defer logging.Sync()

	deck, source, err := loadDeck(env)
	if err != nil {
		return err
	}
	logging.Info("Deck loaded",
		zap.String("source", source),
		zap.String("title", deck.Title),
		zap.Int("slides", len(deck.Slides)),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := presenter.Options{Deck: deck}

	addr := firstNonEmpty(remoteAddr, env.RemoteAddr)
	if addr != "" {
		srv := remote.New(remote.Config{
			Addr:      addr,
			DeckTitle: deck.Title,
			Advertise: advertise,
		})
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("remote control: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		opts.Observer = srv
		opts.OnStart = func(p *tea.Program) { srv.SetDispatcher(p) }
	}

	return presenter.Run(ctx, opts)
}

// outlineCmd prints the deck summary
var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Show the slides and their display times",
	Long: `Print the deck as a numbered list of slides with their kinds and
display times, and the length of one full cycle.`,
	Example: `  # Outline the configured deck
  slidecast outline

  # Outline a specific deck
  slidecast outline --deck webinar.yaml`,
	Args: cobra.NoArgs,
	RunE: runOutline,
}

func runOutline(cmd *cobra.Command, args []string) error {
	env, err := setupConsoleLogging()
	if err != nil {
		return err
	}

	deck, source, err := loadDeck(env)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Deck outline", "slidecast outline",
		ui.Param{Key: "Deck", Value: source},
		ui.Param{Key: "Title", Value: deck.Title},
	)

	rows := make([]ui.OutlineRow, len(deck.Slides))
	for i, s := range deck.Slides {
		rows[i] = ui.OutlineRow{
			ID:       s.ID,
			Title:    s.Title,
			Kind:     string(s.Kind),
			Duration: s.DisplayTime(),
		}
	}
	p.PrintOutline(rows)
	return nil
}

// validateCmd checks a deck file
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a deck file for errors",
	Long: `Parse and validate a deck file without presenting it.

Unknown fields, missing content for a slide kind, duplicate ids and
non-positive durations are all reported with the offending field.`,
	Example: `  # Validate the configured deck
  slidecast validate

  # Validate a specific file
  slidecast validate webinar.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	env, err := setupConsoleLogging()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		env.Deck = ""
		deckPath = args[0]
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	deck, source, err := loadDeck(env)
	if err != nil {
		tips := []string{
			"Compare the file with the built-in deck: slidecast init --force writes a fresh copy",
			"Every slide needs an id, a title, a positive duration and a known kind",
		}
		var deckErr *config.DeckError
		if errors.As(err, &deckErr) {
			tips = append([]string{"Fix the field " + deckErr.Field}, tips...)
		}
		p.PrintError("Deck is invalid", err, tips...)
		return errors.New("validation failed")
	}

	p.PrintSuccess("Deck is valid",
		ui.Param{Key: "Deck", Value: source},
		ui.Param{Key: "Title", Value: deck.Title},
		ui.Param{Key: "Slides", Value: fmt.Sprintf("%d", len(deck.Slides))},
		ui.Param{Key: "Cycle", Value: deck.TotalDuration().String()},
	)
	return nil
}

// initCmd writes the built-in deck to the config directory
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in deck to the config directory",
	Long: `Write the built-in deck to the user config directory so it can be edited.

The written deck is picked up automatically by present, outline and
validate when no --deck is given.`,
	Example: `  # Create the user deck
  slidecast init

  # Replace an existing user deck
  slidecast init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := setupConsoleLogging(); err != nil {
		return err
	}

	path, err := config.GetDeckPath()
	if err != nil {
		return err
	}

	force := initForce
	if _, err := os.Stat(path); err == nil && !force {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("%s: %w (use --force to replace it)", path, config.ErrDeckExists)
		}
		force = ui.Confirm(os.Stdin, cmd.OutOrStdout(), "Replace existing deck",
			[]string{
				path + " already exists",
				"Your edits to it will be lost",
			}, "replace")
		if !force {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted, nothing was written.")
			return nil
		}
	}

	if err := config.WriteDefaultDeck(path, force); err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintSuccess("Deck written",
		ui.Param{Key: "Path", Value: path},
		ui.Param{Key: "Next", Value: "edit it, then run: slidecast validate"},
	)
	return nil
}

// loadDeck resolves and loads the deck, returning a description of where
// it came from.
func loadDeck(env config.Env) (*config.Deck, string, error) {
	path, err := config.ResolveDeckPath(deckPath, env.Deck)
	if err != nil {
		return nil, "", err
	}

	deck, err := config.LoadDeck(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load deck: %w", err)
	}

	source := path
	if source == "" {
		source = "built-in"
	}
	return deck, source, nil
}

// setupConsoleLogging initializes logging to stderr for one-shot commands.
// Silent unless a level is given.
func setupConsoleLogging() (config.Env, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return config.Env{}, err
	}
	if err := logging.InitializeWithOptions(logging.Options{
		Level: firstNonEmpty(logLevel, env.LogLevel),
		Path:  firstNonEmpty(logFile, env.LogFile),
	}); err != nil {
		return config.Env{}, err
	}
	return env, nil
}

// setupFileLogging initializes logging for the presentation. It always
// logs at least at info level so registrations are recorded, and always
// to a file.
func setupFileLogging(env config.Env) error {
	path := firstNonEmpty(logFile, env.LogFile)
	if path == "" {
		var err error
		if path, err = config.GetLogPath(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	return logging.InitializeWithOptions(logging.Options{
		Level: firstNonEmpty(logLevel, env.LogLevel, "info"),
		Path:  path,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
