package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the remote catalog's categories",
	Long: `Categories lists the category names the remote service knows about.
When the service is unreachable, a fixed default list is shown instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		for _, c := range client.Categories(cmd.Context()) {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
