// Slidecast presents an auto-advancing webinar deck in the terminal.
//
// Slides advance on their own after each slide's display time. The
// presenter can pause, step back and forth or jump to a section from the
// keyboard, or from a phone or second terminal through the optional
// remote control.
//
// Usage:
//
//	slidecast [command] [flags]
//
// Running without arguments presents the configured deck.
// See 'slidecast --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/slidecast/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidecast",
	Short: "Auto-advancing webinar slides in your terminal",
	Long: `Slidecast presents a webinar deck full-screen in the terminal.

Each slide is shown for its configured duration before the next one takes
over, wrapping after the last. The final slide collects registrations.

If no command is specified, the deck is presented immediately.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: present when no subcommand provided
		return runPresent(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("slidecast %s\n", version.Full())
	},
}
