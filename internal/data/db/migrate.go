package db

import (
	"github.com/penelope-tex/penelope-backend/internal/domain/catalog"
)

// AutoMigrateAll creates or updates the four catalog tables. The API serves
// them read-only; rows are written only by the loader command.
func (s *PostgresService) AutoMigrateAll() error {
	return s.db.AutoMigrate(
		&catalog.Woven{},
		&catalog.Variant{},
		&catalog.Stock{},
		&catalog.PantoneColor{},
	)
}
