package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/pkg/logger"
)

// Migrator applies the SQL files under one directory to a postgres database
type Migrator struct {
	m    *migrate.Migrate
	path string
}

// NewMigrator binds the migrations directory to an open connection
func NewMigrator(db *sql.DB, migrationsPath string) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations from %s: %w", migrationsPath, err)
	}

	return &Migrator{m: m, path: migrationsPath}, nil
}

// Version returns the applied schema version; 0 means no migration has run
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// Up applies every pending migration. A dirty schema is forced back to its
// recorded version first so the failed step is retried.
func (mg *Migrator) Up() error {
	from, dirty, err := mg.Version()
	if err != nil {
		return err
	}

	if dirty {
		logger.Warn("schema is dirty, forcing recorded version", zap.Uint("version", from))
		if err := mg.m.Force(int(from)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", from, err)
		}
	}

	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("schema up to date", zap.Uint("version", from))
			return nil
		}
		return fmt.Errorf("failed to apply migrations from %s: %w", mg.path, err)
	}

	to, _, err := mg.Version()
	if err != nil {
		return err
	}

	logger.Info("schema migrated",
		zap.Uint("from", from),
		zap.Uint("to", to),
	)
	return nil
}

// RunMigrations brings the schema under migrationsPath up to date
func RunMigrations(db *sql.DB, migrationsPath string) error {
	mg, err := NewMigrator(db, migrationsPath)
	if err != nil {
		return err
	}
	return mg.Up()
}
