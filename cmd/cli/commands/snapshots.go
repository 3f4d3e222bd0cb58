package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	snapshotsCmd.AddCommand(listSnapshotsCmd)

	listSnapshotsCmd.Flags().IntP(flagPage, "p", 1, "Page number for pagination")
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Inspect the refresh history",
}

var listSnapshotsCmd = &cobra.Command{
	Use:   "list",
	Short: "List refresh runs, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := cmd.Flags().GetInt(flagPage)
		if err != nil {
			return err
		}

		snapshots, err := apiClient.ListSnapshots(context.Background(), page)
		if err != nil {
			return fmt.Errorf("failed to list snapshots: %w", err)
		}

		for _, s := range snapshots {
			fmt.Printf("%d\t%s\t%d rows\t%s\n", s.ID, s.Status, s.RowCount, s.CreatedAt.Format("2006-01-02 15:04:05"))
			if s.Error != "" {
				fmt.Printf("\terror: %s\n", s.Error)
			}
		}
		return nil
	},
}
