package sqldb

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/aussiebroadwan/yup/internal/rsvp/store/drivers/sqldb/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations applies any pending embedded migrations for the store's
// dialect.
//
// The migrate instance is deliberately not closed: closing it closes the
// *sql.DB it was handed.
func (s *Store) ApplyMigrations() error {
	var (
		driver database.Driver
		files  fs.FS
		dir    string
		err    error
	)

	switch s.dialect {
	case DialectSQLite:
		driver, err = sqlite.WithInstance(s.db.DB, &sqlite.Config{})
		files, dir = migrations.SQLite, "sqlite"
	case DialectPostgres:
		driver, err = postgres.WithInstance(s.db.DB, &postgres.Config{})
		files, dir = migrations.Postgres, "postgres"
	default:
		return fmt.Errorf("sqldb: no migrations for dialect %q", s.dialect)
	}
	if err != nil {
		return fmt.Errorf("sqldb: migration driver: %w", err)
	}

	src, err := iofs.New(files, dir)
	if err != nil {
		return fmt.Errorf("sqldb: migration source: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", src, string(s.dialect), driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("sqldb: migrate up: %w", err)
	}
	return nil
}
