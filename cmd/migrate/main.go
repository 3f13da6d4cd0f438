package main

import (
	"flag"
	"os"

	"chefpay/internal/db"
	"chefpay/internal/logging"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	down := flag.Int("down", 0, "number of migrations to roll back instead of migrating up")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	logging.Setup(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL not set")
	}

	if *down > 0 {
		if err := db.Rollback(dsn, *down); err != nil {
			log.Fatal().Err(err).Msg("rollback failed")
		}
		log.Info().Int("steps", *down).Msg("rollback complete")
		return
	}

	if err := db.Migrate(dsn); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("database migration complete")
}
