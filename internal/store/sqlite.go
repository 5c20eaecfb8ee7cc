package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"neongrid/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// NewID returns a fresh ULID for a record.
func (s *SQLiteStore) NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cubes (
		x           INTEGER NOT NULL,
		y           INTEGER NOT NULL,
		z           INTEGER NOT NULL,
		id          TEXT NOT NULL,
		description TEXT NOT NULL,
		source      TEXT NOT NULL DEFAULT 'generated',
		context     TEXT,
		created_at  TEXT NOT NULL,
		PRIMARY KEY (x, y, z)
	);
	CREATE INDEX IF NOT EXISTS idx_cubes_created ON cubes(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

const recordColumns = `x, y, z, id, description, source, context, created_at`

// Get retrieves the record for a coordinate, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, c model.Coordinate) (*model.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM cubes WHERE x = ? AND y = ? AND z = ?`,
		c.X, c.Y, c.Z)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// Put upserts a record keyed by its coordinate. A missing ID or timestamp
// is filled in before the write.
func (s *SQLiteStore) Put(ctx context.Context, rec *model.Record) error {
	if rec.ID == "" {
		rec.ID = s.NewID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	var contextPtr *string
	if rec.ContextSummary != "" {
		contextPtr = &rec.ContextSummary
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO cubes (x, y, z, id, description, source, context, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Coord.X, rec.Coord.Y, rec.Coord.Z,
		rec.ID, rec.Description, rec.Source, contextPtr,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store record: %w", err)
	}
	return nil
}

// NeighborsWithin returns persisted records in the cube neighborhood of c,
// excluding c itself, ordered by ascending Chebyshev distance then by
// offset X, then Y, then Z.
func (s *SQLiteStore) NeighborsWithin(ctx context.Context, c model.Coordinate, radius int) ([]model.Neighbor, error) {
	neighbors := []model.Neighbor{}
	if radius <= 0 {
		return neighbors, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM cubes
		 WHERE x BETWEEN ? AND ? AND y BETWEEN ? AND ? AND z BETWEEN ? AND ?
		   AND NOT (x = ? AND y = ? AND z = ?)`,
		c.X-radius, c.X+radius, c.Y-radius, c.Y+radius, c.Z-radius, c.Z+radius,
		c.X, c.Y, c.Z)
	if err != nil {
		return nil, fmt.Errorf("query neighbors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		neighbors = append(neighbors, model.Neighbor{
			Offset: rec.Coord.Sub(c),
			Record: *rec,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	origin := model.Coordinate{}
	sort.Slice(neighbors, func(i, j int) bool {
		a, b := neighbors[i].Offset, neighbors[j].Offset
		da, db := a.Chebyshev(origin), b.Chebyshev(origin)
		if da != db {
			return da < db
		}
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})

	return neighbors, nil
}

// Delete removes the record for a coordinate.
func (s *SQLiteStore) Delete(ctx context.Context, c model.Coordinate) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM cubes WHERE x = ? AND y = ? AND z = ?`, c.X, c.Y, c.Z)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear deletes all records, returning the number removed.
func (s *SQLiteStore) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cubes`)
	if err != nil {
		return 0, fmt.Errorf("clear records: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*model.Record, error) {
	var rec model.Record
	var contextSummary sql.NullString
	var createdAt string

	err := row.Scan(
		&rec.Coord.X, &rec.Coord.Y, &rec.Coord.Z,
		&rec.ID, &rec.Description, &rec.Source, &contextSummary, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if contextSummary.Valid {
		rec.ContextSummary = contextSummary.String
	}

	return &rec, nil
}
