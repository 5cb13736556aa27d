package main

import (
	"context"

	"github.com/spf13/cobra"

	"meettoken/internal/pkg/logx"
)

var rootCmd = &cobra.Command{
	Use:   "meettoken",
	Short: "Signed meeting-access token issuer for JaaS (8x8) meetings",
	Long: `meettoken mints short-lived RS256 tokens that let a user join a hosted
video meeting. Configuration is read from the environment and an optional .env file.
Running without a subcommand starts the HTTP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logx.Fatal(err, "Command failed")
	}
}

func init() {
	rootCmd.RunE = runServe
	rootCmd.AddCommand(serveCmd, issueCmd, jwksCmd)
}
