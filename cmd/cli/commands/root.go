// Package commands implements the healthindex CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/healthindex/healthindex/pkg/api/v1/client"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagPage          = "page"
)

// environment variable names
const (
	envServerAddress = "HEALTHINDEX_SERVER_ADDRESS"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
)

// initClient initializes the API client
func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress

	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", client.DefaultBaseURL, "Address of the healthindex API server (env: HEALTHINDEX_SERVER_ADDRESS)")

	RootCmd.AddCommand(indexCmd)
	RootCmd.AddCommand(snapshotsCmd)
	RootCmd.AddCommand(refreshCmd)
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "healthindex",
	Short: "healthindex CLI - A command line interface for the health index API",
	Long:  `healthindex CLI is a command line tool for inspecting and refreshing the health and prosperity index through its API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Flag > env var > default precedence for the server address.
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
