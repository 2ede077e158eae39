package cmd

import (
	"github.com/spf13/cobra"
	"job-dashboard/config"
)

func Root(config *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "job-dashboard",
		Short: "job management dashboard backend",
	}
	rootCmd.AddCommand(server(config))
	rootCmd.AddCommand(migrate(config))
	return rootCmd
}
