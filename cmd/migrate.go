package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"job-dashboard/config"
	"job-dashboard/repository"
)

func migrate(config *config.Config) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := repository.Open(config.DB, false)
			if err != nil {
				return err
			}
			if err := repository.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info().Msg("schema migrated")

			if !seed {
				return nil
			}
			if err := repository.Seed(cmd.Context(), db); err != nil {
				return err
			}
			log.Info().Msg("default data seeded")
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", true, "seed default statuses, job types and payment channels")
	return cmd
}
