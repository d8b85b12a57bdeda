package commands

import (
	"gorm.io/gorm"

	"imobicrm/internal/config"
	"imobicrm/internal/logger"
	"imobicrm/internal/store"
)

// setup loads configuration, initializes logging and opens the
// configured database. Shared by every subcommand.
func setup() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Initialize(cfg.Debug); err != nil {
		return nil, nil, err
	}
	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
