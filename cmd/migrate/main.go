package main

import (
	"errors"
	"flag"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/jayvico/ams-api/pkg/config"
	"github.com/jayvico/ams-api/pkg/logger"
)

func main() {
	var (
		dir  = flag.String("dir", "migrations", "directory with migration files")
		down = flag.Bool("down", false, "roll back one migration instead of applying all")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	m, err := migrate.New("file://"+*dir, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("init migrator")
	}
	defer func() {
		_, _ = m.Close()
	}()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no pending migrations")
			return
		}
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
	log.Info().Str("dir", *dir).Msg("migrations applied")
}
