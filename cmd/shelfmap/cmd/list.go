package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shelfmap/shelfmap/internal/session"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the filtered and sorted catalog view",
	Long: `List prints the current projected view: the canonical product list
after the saved search term, category filter, and sort settings have been
applied. Run "shelfmap sync" first to pull the remote catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		state := client.Session().State()
		printView(state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// printView renders the projected product list.
func printView(state session.State) {
	if state.Err != "" {
		fmt.Fprintf(os.Stderr, "last operation failed: %s\n", state.Err)
	}
	if len(state.FilteredProducts) == 0 {
		fmt.Println("No products match the current view.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tCATEGORY\tRATING\tSTOCK")
	for _, p := range state.FilteredProducts {
		stock := fmt.Sprintf("%d", p.Stock)
		if !p.InStock {
			stock = "out"
		}
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%.1f (%d)\t%s\n",
			p.ID, p.Title, p.Price, p.Category, p.Rating.Rate, p.Rating.Count, stock)
	}
	_ = w.Flush()

	fmt.Printf("\n%d of %d products shown", len(state.FilteredProducts), len(state.Products))
	if state.Filters.SearchTerm != "" {
		fmt.Printf(", search %q", state.Filters.SearchTerm)
	}
	if state.Filters.SelectedCategory != "all" {
		fmt.Printf(", category %q", state.Filters.SelectedCategory)
	}
	if state.Filters.SortBy != "none" {
		fmt.Printf(", sorted by %s %s", state.Filters.SortBy, state.Filters.SortOrder)
	}
	fmt.Println()
}
