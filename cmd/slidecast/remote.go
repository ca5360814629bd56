package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/slidecast/internal/discovery"
	"github.com/muurk/slidecast/internal/remote"
	"github.com/muurk/slidecast/internal/ui"
)

// Remote command flags
var (
	remoteTarget  string
	remoteSession string
	remoteTimeout int
)

func init() {
	remoteCmd.PersistentFlags().StringVar(&remoteTarget, "addr", "", "Presentation address host:port (default: $SLIDECAST_REMOTE_ADDR, then mDNS discovery)")
	remoteCmd.PersistentFlags().StringVar(&remoteSession, "session", "", "Session ID of the presentation to find over mDNS (see 'remote scan')")
	remoteCmd.PersistentFlags().IntVar(&remoteTimeout, "timeout", 3, "Timeout in seconds for discovery and commands")

	remoteCmd.AddCommand(remoteScanCmd)
	remoteCmd.AddCommand(remoteStatusCmd)
	remoteCmd.AddCommand(newIntentCmd(remote.ActionNext, "Advance to the next slide"))
	remoteCmd.AddCommand(newIntentCmd(remote.ActionPrev, "Go back to the previous slide"))
	remoteCmd.AddCommand(newIntentCmd(remote.ActionToggle, "Pause or resume the presentation"))
	remoteCmd.AddCommand(remoteGoToCmd)

	rootCmd.AddCommand(remoteCmd)
}

// remoteCmd groups the presenter remote commands
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Follow and drive a running presentation",
	Long: `Control a presentation started with 'slidecast present --remote'.

Without --addr the presentation is found over mDNS; this requires it to be
started with --advertise. With several presentations on the network, pick
one with --session.`,
}

var remoteScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List presentations advertised on the network",
	Example: `  # Scan for 3 seconds (default)
  slidecast remote scan

  # Longer scan for busy networks
  slidecast remote scan --timeout 10`,
	Args: cobra.NoArgs,
	RunE: runRemoteScan,
}

func runRemoteScan(cmd *cobra.Command, args []string) error {
	if _, err := setupConsoleLogging(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for presentations (timeout: %ds)...\n\n", remoteTimeout)

	found, err := discovery.Scan(cmd.Context(), time.Duration(remoteTimeout)*time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(found) == 0 {
		fmt.Fprintln(out, "No presentations found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		fmt.Fprintln(out, "  - Start the presentation with --remote <addr> --advertise")
		fmt.Fprintln(out, "  - Make sure both machines are on the same network")
		fmt.Fprintln(out, "  - Try increasing --timeout for slower networks")
		fmt.Fprintln(out, "  - Use --addr to connect without discovery")
		return nil
	}

	fmt.Fprintf(out, "Found %d presentation(s):\n\n", len(found))
	for i, p := range found {
		fmt.Fprintf(out, "%d. %s\n", i+1, p.Deck)
		fmt.Fprintf(out, "   Session: %s\n", p.Session)
		fmt.Fprintf(out, "   Address: %s\n", p.Addr())
		if p.Hostname != "" {
			fmt.Fprintf(out, "   Host:    %s\n", p.Hostname)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Use 'slidecast remote next --addr <address>' to drive a presentation")
	return nil
}

var remoteStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current slide of a presentation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := remoteClient(cmd.Context())
		if err != nil {
			return err
		}
		frame, err := client.State(cmd.Context())
		if err != nil {
			return err
		}
		printFrame(cmd, "Presentation status", frame)
		return nil
	},
}

// newIntentCmd builds the command for an argument-less action.
func newIntentCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendIntent(cmd, remote.Command{Action: action})
		},
	}
}

var remoteGoToCmd = &cobra.Command{
	Use:   "goto <n>",
	Short: "Jump to section n (1-based)",
	Example: `  # Jump to the registration section of the default deck
  slidecast remote goto 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid section %q: must be a number from 1", args[0])
		}
		return sendIntent(cmd, remote.Command{Action: remote.ActionGoTo, Index: n - 1})
	},
}

func sendIntent(cmd *cobra.Command, command remote.Command) error {
	client, err := remoteClient(cmd.Context())
	if err != nil {
		return err
	}

	frame, err := client.Send(cmd.Context(), command)
	if err != nil {
		return fmt.Errorf("%s failed: %w", command.Action, err)
	}
	if command.Action == remote.ActionGoTo && command.Index >= frame.Total {
		return fmt.Errorf("section %d does not exist, the deck has %d", command.Index+1, frame.Total)
	}

	printFrame(cmd, "Sent "+command.Action, frame)
	return nil
}

// remoteClient resolves the presentation address: flag, environment, then
// a single mDNS answer.
func remoteClient(ctx context.Context) (*remote.Client, error) {
	env, err := setupConsoleLogging()
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(remoteTimeout) * time.Second

	addr := firstNonEmpty(remoteTarget, env.RemoteAddr)
	if addr == "" {
		addr, err = discoverAddr(ctx, timeout, remoteSession)
		if err != nil {
			return nil, err
		}
	}

	client := remote.NewClient(addr)
	client.Timeout = timeout
	return client, nil
}

func discoverAddr(ctx context.Context, timeout time.Duration, session string) (string, error) {
	if session != "" {
		scanner := discovery.NewScanner()
		scanner.Timeout = timeout
		p, err := scanner.WaitForSession(ctx, session)
		if err != nil {
			return "", err
		}
		return p.Addr(), nil
	}

	found, err := discovery.Scan(ctx, timeout)
	if err != nil {
		return "", fmt.Errorf("scan failed: %w", err)
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("no presentation found on the network; pass --addr")
	case 1:
		return found[0].Addr(), nil
	}

	addrs := make([]string, len(found))
	for i, p := range found {
		addrs[i] = p.Addr()
	}
	return "", fmt.Errorf("found %d presentations (%s); pick one with --addr or --session", len(found), strings.Join(addrs, ", "))
}

func printFrame(cmd *cobra.Command, title string, f remote.StateFrame) {
	state := "playing"
	if f.Paused {
		state = "paused"
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintSuccess(title,
		ui.Param{Key: "Deck", Value: f.Deck},
		ui.Param{Key: "Slide", Value: fmt.Sprintf("%d/%d  %s", f.Index+1, f.Total, f.SlideTitle)},
		ui.Param{Key: "State", Value: state},
		ui.Param{Key: "Progress", Value: fmt.Sprintf("%.0f%%", f.Progress)},
	)
}
