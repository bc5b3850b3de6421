// Package main is the entrypoint for shipgridctl, the command-line
// companion of the Shipgrid API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiURL string

	rootCmd = &cobra.Command{
		Use:   "shipgridctl",
		Short: "Command-line client for the Shipgrid regularity report API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if apiURL == "" {
				apiURL = os.Getenv("SHIPGRID_API_URL")
			}
			if apiURL == "" {
				apiURL = "http://localhost:8080"
			}
		},
	}
)

func main() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the Shipgrid API (default $SHIPGRID_API_URL or http://localhost:8080)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
