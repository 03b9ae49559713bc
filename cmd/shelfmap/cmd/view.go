package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfmap/shelfmap/pkg/catalog"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Set the search filter",
	Long: `Search filters the view to products whose title or description contains
the term, ignoring case. Run without a term to clear the filter. The
setting persists until changed.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		term := strings.Join(args, " ")
		client.Session().SetSearchTerm(term)

		printView(client.Session().State())
		return nil
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Set the category filter",
	Long: `Category restricts the view to one category exactly as named by the
remote service. Use "all" to clear the filter.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		client.Session().SetSelectedCategory(args[0])

		printView(client.Session().State())
		return nil
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort <name|price|none>",
	Short: "Set or toggle the sort order",
	Long: `Sort orders the view by product name or price. Sorting by the field
already in effect toggles between ascending and descending.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var field catalog.SortField
		switch args[0] {
		case "name":
			field = catalog.SortName
		case "price":
			field = catalog.SortPrice
		case "none":
			field = catalog.SortNone
		default:
			return fmt.Errorf("unknown sort field %q (want name, price, or none)", args[0])
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		client.Session().SetSorting(field)

		printView(client.Session().State())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(sortCmd)
}
