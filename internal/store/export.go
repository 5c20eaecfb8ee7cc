package store

import (
	"context"

	"neongrid/internal/model"
)

// ExportAll returns every record ordered by coordinate.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Record, error) {
	return s.queryRecords(ctx,
		`SELECT `+recordColumns+` FROM cubes ORDER BY x, y, z`)
}
