package commands

import (
	"fmt"

	"github.com/monocle-dev/trackr/db"
	"github.com/monocle-dev/trackr/internal/auth"
	"github.com/monocle-dev/trackr/internal/config"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/repository/memory"
	"github.com/monocle-dev/trackr/internal/services"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// openStore returns the configured store and a function that releases it.
func openStore(cfg *config.Config) (repository.Store, *gorm.DB, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		return memory.NewStore(), nil, func() {}, nil
	}

	database, err := db.Connect(cfg.Database.URL, cfg.Database.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	closeFn := func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return repository.NewGormStore(database), database, closeFn, nil
}

func buildServices(cfg *config.Config, store repository.Store, log zerolog.Logger) (*services.Services, *auth.Issuer, error) {
	issuer, err := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return nil, nil, err
	}

	loc, err := cfg.Deadline.Location()
	if err != nil {
		return nil, nil, fmt.Errorf("deadline timezone: %w", err)
	}

	svc := services.New(store, services.Options{
		Logger:   log,
		Tokens:   issuer,
		Location: loc,
	})

	return svc, issuer, nil
}
