// Package store provides the world storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"neongrid/internal/model"
)

// ErrNotFound reports a coordinate with no persisted record.
var ErrNotFound = errors.New("record not found")

// Store defines the world storage interface.
type Store interface {
	// Get retrieves the record for a coordinate, or ErrNotFound.
	Get(ctx context.Context, c model.Coordinate) (*model.Record, error)

	// Put upserts the record keyed by its coordinate. At most one record
	// per coordinate exists afterwards.
	Put(ctx context.Context, rec *model.Record) error

	// NeighborsWithin returns persisted records at most radius away from c
	// on every axis (a cube neighborhood), excluding c itself, ordered by
	// ascending Chebyshev distance then by offset X, then Y, then Z.
	// An empty neighborhood yields an empty slice, not an error.
	NeighborsWithin(ctx context.Context, c model.Coordinate, radius int) ([]model.Neighbor, error)

	// Count returns the number of persisted records.
	Count(ctx context.Context) (int, error)

	// Recent returns the most recently created records, newest first.
	Recent(ctx context.Context, limit int) ([]model.Record, error)

	// ExportAll returns every record ordered by coordinate.
	ExportAll(ctx context.Context) ([]model.Record, error)

	// Search finds records whose description matches the query substring.
	Search(ctx context.Context, query string, limit int) ([]model.Record, error)

	// Delete removes the record for a coordinate, or ErrNotFound.
	Delete(ctx context.Context, c model.Coordinate) error

	// Clear deletes all records, returning the number removed.
	Clear(ctx context.Context) (int, error)

	// Close closes the store.
	Close() error
}
