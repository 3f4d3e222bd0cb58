package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Trigger an on-demand data refresh",
	RunE: func(_ *cobra.Command, _ []string) error {
		snapshot, err := apiClient.TriggerRefresh(context.Background())
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}

		fmt.Printf("Refresh succeeded: snapshot %d with %d rows\n", snapshot.ID, snapshot.RowCount)
		return nil
	},
}
