package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
	"github.com/blackwell-systems/wingetpick/internal/output"
)

var categoriesSorted bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and how many programs each has",
	Long: `List the catalog's categories with their program counts. Categories
appear in the order they first occur in the catalog unless --sorted is given.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesSorted, "sorted", false, "sort categories by name")
	RootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	counts := cat.CategoryCounts()
	if categoriesSorted {
		counts = counts[:0]
		for _, name := range cat.SortedCategories() {
			counts = append(counts, catalog.CategoryCount{Category: name, Count: cat.CountInCategory(name)})
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderCategoryTable(counts))
	return nil
}
