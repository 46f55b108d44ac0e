// Package migrate provides database migration management.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/database/config"
	"github.com/festy23/judging_rounds/migrations"
)

// GetMigrationsPath returns the migrations directory override.
// An empty value selects the migrations embedded in the binary.
func GetMigrationsPath() string {
	return config.GetEnv("MIGRATIONS_PATH", "")
}

// Migrate applies all pending migrations for the connection's driver.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func newMigrator(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driverName := db.Dialector.Name()

	var driver database.Driver
	switch driverName {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	case config.DriverSQLite:
		driver, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driverName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", driverName, err)
	}

	if dir := GetMigrationsPath(); dir != "" {
		migrationsPath, err := filepath.Abs(filepath.Join(dir, driverName))
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
		}
		if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
			return nil, fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
		}

		m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, driverName, driver)
		if err != nil {
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return m, nil
	}

	source, err := iofs.New(migrations.FS, driverName)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}
