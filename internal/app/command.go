package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
	"github.com/blackwell-systems/wingetpick/internal/output"
	"github.com/blackwell-systems/wingetpick/internal/winget"
)

var commandCopy bool

var commandCmd = &cobra.Command{
	Use:   "command <id|alias>...",
	Short: "Print the winget install command for some programs",
	Long: `Print one winget install command covering the given programs. Each
argument is a winget package identifier from the catalog or an alias from
the aliases file in the config directory. Repeated programs are listed once.

With --copy the command is also copied to the clipboard and recorded in
history. If the clipboard cannot be reached the command is still printed.`,
	Example: `  wingetpick command 7zip.7zip
  wingetpick command Git.Git Google.Chrome --copy
  wingetpick command vscode git --copy   # using aliases`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: pass at least one package id", winget.ErrNoSelection)
		}
		return nil
	},
	RunE: runCommand,
}

func init() {
	commandCmd.Flags().BoolVar(&commandCopy, "copy", false, "copy the command to the clipboard")
	RootCmd.AddCommand(commandCmd)
}

func runCommand(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	aliases, err := loadAliases()
	if err != nil {
		return err
	}

	ids, err := resolveIDs(cat, aliases, args)
	if err != nil {
		return err
	}
	command, err := winget.Command(ids)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !commandCopy {
		fmt.Fprint(out, output.RenderCommand(command, false))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, cleanup := newLogger(cfg)
	defer cleanup()

	clip, err := newClipboard(cfg.Clipboard.Method)
	if err != nil {
		return err
	}
	if err := clip.Write(command); err != nil {
		logger.Warn("clipboard write failed", "err", err)
		fmt.Fprint(out, output.RenderCommand(command, false))
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not copy to clipboard: %v\n", err)
		return nil
	}
	fmt.Fprint(out, output.RenderCommand(command, true))

	st, err := openHistory(cfg)
	if err != nil {
		logger.Warn("history disabled", "err", err)
		return nil
	}
	if st == nil {
		return nil
	}
	defer st.Close()

	if _, err := st.RecordCommand(command, ids, time.Now()); err != nil {
		logger.Warn("record history failed", "err", err)
	}
	return nil
}
