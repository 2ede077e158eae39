package cmd

import (
	"github.com/spf13/cobra"
	"job-dashboard/config"
	server2 "job-dashboard/server"
)

func server(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "serve the job dashboard API and run the notification consumer",
		Run: func(cmd *cobra.Command, args []string) {
			server2.RunHttp(cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Server.HttpPort, "port", cfg.Server.HttpPort, "http listen port")
	cmd.Flags().IntVar(&cfg.Server.Workers, "workers", cfg.Server.Workers, "notification consumer workers")
	return cmd
}
