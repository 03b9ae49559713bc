package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfmap/shelfmap/pkg/catalog"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a locally authored product",
	Long: `Add creates a new product record owned by this machine. The record is
persisted immediately and mirrored to the remote service on a best-effort
basis; a failed mirror never fails the command.`,
	Example: `  shelfmap add --title "Desk Lamp" --price 34.90 --category electronics --stock 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		res, err := client.Session().Create(cmd.Context(), fieldsFromFlags(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Created product %d: %s\n", res.Product.ID, res.Product.Title)
		if res.MirrorErr != nil {
			fmt.Printf("Note: remote mirror failed (%v); the local record is authoritative.\n", res.MirrorErr)
		}
		return nil
	},
}

func init() {
	addProductFlags(addCmd)
	_ = addCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(addCmd)
}

// addProductFlags registers the shared product field flags.
func addProductFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "product title")
	cmd.Flags().Float64("price", 0, "product price")
	cmd.Flags().String("description", "", "product description")
	cmd.Flags().String("category", "", "product category")
	cmd.Flags().String("image", "", "product image URL")
	cmd.Flags().Int("stock", 0, "units in stock")
}

// fieldsFromFlags collects only the flags the user actually set, so edits
// merge instead of overwrite.
func fieldsFromFlags(cmd *cobra.Command) catalog.Fields {
	var fields catalog.Fields
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		fields.Title = &v
	}
	if cmd.Flags().Changed("price") {
		v, _ := cmd.Flags().GetFloat64("price")
		fields.Price = &v
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		fields.Description = &v
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		fields.Category = &v
	}
	if cmd.Flags().Changed("image") {
		v, _ := cmd.Flags().GetString("image")
		fields.Image = &v
	}
	if cmd.Flags().Changed("stock") {
		v, _ := cmd.Flags().GetInt("stock")
		fields.Stock = &v
	}
	return fields
}
