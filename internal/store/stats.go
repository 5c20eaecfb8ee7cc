package store

import (
	"context"
	"fmt"

	"neongrid/internal/model"
)

// Count returns the number of persisted records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cubes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Recent returns the most recently created records, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]model.Record, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRecords(ctx,
		`SELECT `+recordColumns+` FROM cubes ORDER BY created_at DESC LIMIT ?`, limit)
}

func (s *SQLiteStore) queryRecords(ctx context.Context, query string, args ...interface{}) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}
