package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shelfmap/shelfmap/pkg/errors"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one product from the remote service",
	Long: `Get retrieves a single product directly from the remote service,
including its synthesized inventory placeholders. It does not change the
working catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q: %w", args[0], err)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		product, err := client.FetchOne(cmd.Context(), id)
		if err != nil {
			if errors.IsNotFound(err) {
				return fmt.Errorf("product %d not found on the remote service", id)
			}
			return err
		}

		fmt.Printf("%d  %s\n", product.ID, product.Title)
		fmt.Printf("  price:    %.2f\n", product.Price)
		fmt.Printf("  category: %s\n", product.Category)
		fmt.Printf("  rating:   %.1f (%d reviews)\n", product.Rating.Rate, product.Rating.Count)
		fmt.Printf("  stock:    %d (in stock: %t)\n", product.Stock, product.InStock)
		if product.Description != "" {
			fmt.Printf("  %s\n", product.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
