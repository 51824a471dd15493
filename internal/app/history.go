package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wingetpick/internal/output"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show commands copied earlier",
	Long: `Show install commands that were copied to the clipboard, newest first.
Only the commands are kept; selections are never restored.

Use --clear to delete all recorded commands.`,
	Example: `  wingetpick history
  wingetpick history --limit 5
  wingetpick history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded commands")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyLimit < 0 {
		return fmt.Errorf("--limit must be zero or positive, got %d", historyLimit)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st, err := openHistory(cfg)
	if err != nil {
		return err
	}
	if st == nil {
		fmt.Fprintln(out, "History is disabled.")
		return nil
	}
	defer st.Close()

	if historyClear {
		n, err := st.ClearHistory()
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintf(out, "Deleted %d entries.\n", n)
		return nil
	}

	entries, err := st.ListHistory(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No commands copied yet.")
		return nil
	}

	fmt.Fprint(out, output.RenderHistoryTable(entries))
	return nil
}
