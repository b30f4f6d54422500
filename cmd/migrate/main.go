package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/zealand/roombooking/internal/config"
	"github.com/zealand/roombooking/internal/db"
	"github.com/zealand/roombooking/internal/pkg/logger"
	"github.com/zealand/roombooking/migrations"
)

func main() {
	action := flag.String("action", db.MigrateUp, "migration action: up, down, step-up or drop")
	flag.Parse()

	cfg, err := config.LoadDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.LogLevel, cfg.IsProduction)

	if err := db.Migrate(migrations.FS, cfg.DBDSN, *action); err != nil {
		logger.ErrorWithStack(err, "migration failed")
		log.Fatal().Str("action", *action).Msg("migration aborted")
	}
}
