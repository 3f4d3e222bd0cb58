package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	indexCmd.AddCommand(showIndexCmd)
	indexCmd.AddCommand(stateIndexCmd)

	showIndexCmd.Flags().IntP(flagPage, "p", 1, "Page number for pagination")
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Inspect the health and prosperity index",
}

var showIndexCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the latest index, best scoring states first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := cmd.Flags().GetInt(flagPage)
		if err != nil {
			return err
		}

		resp, err := apiClient.GetIndex(context.Background(), page)
		if err != nil {
			return fmt.Errorf("failed to get index: %w", err)
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var stateIndexCmd = &cobra.Command{
	Use:   "state [name]",
	Short: "Show one state's score from the latest dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		score, err := apiClient.GetStateIndex(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get state index: %w", err)
		}

		out, err := json.MarshalIndent(score, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
