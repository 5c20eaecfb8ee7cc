package store

import (
	"context"

	"neongrid/internal/model"
)

// Search finds records whose description matches the query substring,
// newest first.
func (s *SQLiteStore) Search(ctx context.Context, query string, limit int) ([]model.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRecords(ctx,
		`SELECT `+recordColumns+` FROM cubes
		 WHERE description LIKE ?
		 ORDER BY created_at DESC
		 LIMIT ?`, "%"+query+"%", limit)
}
