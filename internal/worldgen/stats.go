package worldgen

import (
	"context"
	"fmt"
	"math"

	"neongrid/internal/model"
)

// Stats describes world generation progress.
type Stats struct {
	TotalCubes    int            `json:"total_cubes"`
	TotalPossible int            `json:"total_possible"`
	CoveragePct   float64        `json:"coverage_pct"`
	WorldExtent   int            `json:"world_extent"`
	Recent        []model.Record `json:"recent,omitempty"`
}

// Stats returns generation statistics for the world.
func (w *World) Stats(ctx context.Context) (*Stats, error) {
	total, err := w.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := w.store.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}

	possible := w.extent * w.extent * w.extent
	coverage := 0.0
	if possible > 0 {
		coverage = math.Round(float64(total)/float64(possible)*100*100) / 100
	}

	return &Stats{
		TotalCubes:    total,
		TotalPossible: possible,
		CoveragePct:   coverage,
		WorldExtent:   w.extent,
		Recent:        recent,
	}, nil
}

// Validation reports world data integrity issues.
type Validation struct {
	Valid        bool     `json:"valid"`
	CubesChecked int      `json:"cubes_checked"`
	Errors       []string `json:"errors,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
}

// Validate checks every persisted record for coordinate bounds and
// non-empty descriptions.
func (w *World) Validate(ctx context.Context) (*Validation, error) {
	records, err := w.store.ExportAll(ctx)
	if err != nil {
		return nil, err
	}

	v := &Validation{Valid: true, CubesChecked: len(records)}
	for _, rec := range records {
		c := rec.Coord
		for _, axis := range []struct {
			name string
			val  int
		}{{"x", c.X}, {"y", c.Y}, {"z", c.Z}} {
			if axis.val < 0 || axis.val >= w.extent {
				v.Errors = append(v.Errors,
					fmt.Sprintf("cube (%d, %d, %d) has invalid %s coordinate", c.X, c.Y, c.Z, axis.name))
				v.Valid = false
			}
		}
		if rec.Description == "" {
			v.Warnings = append(v.Warnings,
				fmt.Sprintf("cube (%d, %d, %d) has empty description", c.X, c.Y, c.Z))
		}
	}
	return v, nil
}
