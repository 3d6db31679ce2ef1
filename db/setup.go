package db

import (
	"fmt"
	"strings"

	"github.com/monocle-dev/trackr/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres database. logLevel is one of silent, error,
// warn or info and controls gorm's own SQL logging.
func Connect(dsn, logLevel string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(logLevel)),
	})

	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return database, nil
}

func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.Issue{},
		&models.Note{},
	}
}

// Migrate creates missing tables and columns for every model.
func Migrate(database *gorm.DB) error {
	for _, model := range Models() {
		if err := database.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	return nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
