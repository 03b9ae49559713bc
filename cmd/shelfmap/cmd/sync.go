package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the remote catalog with local records",
	Long: `Sync fetches the remote catalog and merges it with your local records.
Local records always win over remote records sharing their id. When the
remote service is unreachable, sync degrades to local and previously
cached data instead of failing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Session().Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		state := client.Session().State()
		fmt.Printf("Catalog reconciled: %d products\n", len(state.Products))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
