package store

import (
	"database/sql"

	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/migrations"
)

// DB wraps the raw database handle together with the store's logger.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations to the vault database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
