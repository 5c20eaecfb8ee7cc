package worldgen

import (
	"context"
	"errors"
	"fmt"

	"neongrid/internal/model"
	"neongrid/internal/player"
	"neongrid/internal/store"
)

// Describer produces a description record for a cell. Implementations
// never fail; they fall back internally (see internal/generator).
type Describer interface {
	Describe(ctx context.Context, c model.Coordinate, contextSummary string) *model.Record
}

// World ties store, assembler, and generator together. It owns all world
// session state so multiple worlds (or tests) can run in isolation.
type World struct {
	store  store.Store
	asm    *Assembler
	gen    Describer
	extent int
}

// New creates a world session over the given collaborators.
func New(s store.Store, asm *Assembler, gen Describer, extent int) *World {
	return &World{store: s, asm: asm, gen: gen, extent: extent}
}

// Extent returns the world size per axis.
func (w *World) Extent() int { return w.extent }

// Resolve returns the record for a coordinate, generating and persisting
// it on first visit. The second return reports a cache hit. An error means
// the record could not be persisted; nothing is stored in that case and
// the caller should report the move as failed.
func (w *World) Resolve(ctx context.Context, c model.Coordinate) (*model.Record, bool, error) {
	rec, err := w.store.Get(ctx, c)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("lookup cell: %w", err)
	}

	payload, err := w.asm.Build(ctx, c)
	if err != nil {
		return nil, false, err
	}

	rec = w.gen.Describe(ctx, c, payload.Summary)
	if err := w.store.Put(ctx, rec); err != nil {
		return nil, false, fmt.Errorf("persist cell: %w", err)
	}
	return rec, false, nil
}

// PregenResult summarizes a pregeneration sweep.
type PregenResult struct {
	Total     int `json:"total"`
	Generated int `json:"generated"`
	Existing  int `json:"existing"`
}

// Pregenerate resolves every cell in a cube of the given radius around
// center, clamped to world bounds. Cells already persisted are counted
// but not regenerated.
func (w *World) Pregenerate(ctx context.Context, center model.Coordinate, radius int) (*PregenResult, error) {
	if radius < 0 {
		radius = 0
	}
	lo, _ := player.Clamp(center.Add(-radius, -radius, -radius), w.extent)
	hi, _ := player.Clamp(center.Add(radius, radius, radius), w.extent)

	res := &PregenResult{}
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				res.Total++
				_, hit, err := w.Resolve(ctx, model.Coordinate{X: x, Y: y, Z: z})
				if err != nil {
					return res, err
				}
				if hit {
					res.Existing++
				} else {
					res.Generated++
				}
			}
		}
	}
	return res, nil
}

// Clear wipes all world data, returning the number of records removed.
func (w *World) Clear(ctx context.Context) (int, error) {
	return w.store.Clear(ctx)
}
