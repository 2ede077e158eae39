package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"job-dashboard/cmd"
	"job-dashboard/config"
	"os"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	workdir, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot resolve working directory")
	}
	cfg, err := config.Load(workdir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", workdir).Msg("failed to load config")
	}

	if err := cmd.Root(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
