package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
	noHistory  bool
	debug      bool

	// RootCmd is the root command for wingetpick
	RootCmd = &cobra.Command{
		Use:   "wingetpick",
		Short: "Pick Windows programs and get one winget command to install them",
		Long: `wingetpick lets you browse a curated catalog of Windows programs by
category, select the ones you want, and copies a single winget install
command for all of them to your clipboard. Paste it into a Windows terminal
to install everything in one go.

Nothing is installed by wingetpick itself; it only writes the command.

Run without arguments to open the interactive browser.

Examples:
  # Open the browser
  wingetpick

  # List development tools
  wingetpick list --category Development

  # Print and copy an install command
  wingetpick command Git.Git Google.Chrome --copy

  # Show commands copied earlier
  wingetpick history`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBrowse,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default: ~/.wingetpick/history.db)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.config/wingetpick/config.toml)")
	RootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record copied commands")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to the log file")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command, cancelling on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RootCmd.ExecuteContext(ctx)
}
