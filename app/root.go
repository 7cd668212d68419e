// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oncall-relay",
	Short: "oncall-relay mirrors on-call assignments into Slack user groups",
	Long: `oncall-relay receives on-call assignment events from an incident
management platform and replaces the membership of the mapped Slack user
group with the newly on-call person.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
