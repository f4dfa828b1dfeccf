package kvstore

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"tour-booking-console/internal/pkg/config"
)

// Migrate applies the schema needed by PostgresKV. sourceURL is a
// golang-migrate source such as "file://migrations".
func Migrate(sourceURL string, cfg config.DBConfig) error {
	m, err := migrate.New(sourceURL, cfg.BuildDSN())
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	return nil
}
