package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a product by id",
	Long: `Edit merges the given fields into the product with the given id. Records
you own are updated durably; edits to purely remote records live in the
working catalog until the next sync.`,
	Example: `  shelfmap edit 1700000000000 --price 29.90`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q: %w", args[0], err)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		res, err := client.Session().Update(cmd.Context(), id, fieldsFromFlags(cmd))
		if err != nil {
			return err
		}

		if res.Product.ID == 0 {
			fmt.Printf("No product %d in the catalog.\n", id)
			return nil
		}
		fmt.Printf("Updated product %d: %s\n", res.Product.ID, res.Product.Title)
		if res.MirrorErr != nil {
			fmt.Printf("Note: remote mirror failed (%v); the local record is authoritative.\n", res.MirrorErr)
		}
		return nil
	},
}

func init() {
	addProductFlags(editCmd)
	rootCmd.AddCommand(editCmd)
}
