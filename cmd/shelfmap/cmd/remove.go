package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a product by id",
	Long: `Remove deletes the product from the working catalog, whether it came
from the remote service or was authored locally. Locally owned records
are dropped durably; the remote deletion is best-effort.`,
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

		res, err := client.Session().Delete(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Removed product %d\n", id)
		if res.MirrorErr != nil {
			fmt.Printf("Note: remote mirror failed (%v); the local deletion is authoritative.\n", res.MirrorErr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
