package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
	"github.com/blackwell-systems/wingetpick/internal/output"
)

var (
	listCategory string
	listSearch   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List programs in the catalog",
	Long: `List programs in the catalog, optionally narrowed by category and a
case-insensitive search on the program name. Results keep catalog order.`,
	Example: `  wingetpick list
  wingetpick list --category Development
  wingetpick list --search chrome
  wingetpick list --category Utilities --search zip`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only programs in this category (exact match)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "only programs whose name contains this text")
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	if err := checkCategory(cat, listCategory); err != nil {
		return err
	}

	pkgs := cat.Filter(listSearch, listCategory)
	out := cmd.OutOrStdout()
	if len(pkgs) == 0 {
		fmt.Fprintln(out, "No programs found.")
		return nil
	}

	fmt.Fprint(out, output.RenderPackageTable(pkgs))
	fmt.Fprintf(out, "\n%d of %d programs\n", len(pkgs), cat.Len())
	return nil
}
