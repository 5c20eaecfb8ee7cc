// Package worldgen assembles generation context and orchestrates the
// get-or-generate flow for world cells.
package worldgen

import (
	"context"
	"fmt"
	"strings"

	"neongrid/internal/model"
	"neongrid/internal/store"
)

// NoContext is the summary used when no neighbors have been generated yet.
// The generator treats it as valid (if uninteresting) input.
const NoContext = "No surrounding context available."

// ContextPayload is the ephemeral neighbor context for one generation.
// It is built fresh on every cache miss and never persisted; only the
// resulting record is.
type ContextPayload struct {
	Target    model.Coordinate
	Neighbors []model.Neighbor
	Summary   string
}

// Empty reports whether any neighbor context was found.
func (p *ContextPayload) Empty() bool { return len(p.Neighbors) == 0 }

// Assembler builds context payloads from previously generated neighbors.
type Assembler struct {
	store        store.Store
	radius       int
	maxNeighbors int
	charBudget   int
}

// NewAssembler creates an assembler reading neighbors within radius.
// maxNeighbors caps how many neighbor records are considered and
// charBudget bounds the summary size; nearest neighbors win.
func NewAssembler(s store.Store, radius, maxNeighbors, charBudget int) *Assembler {
	if maxNeighbors <= 0 {
		maxNeighbors = 26
	}
	if charBudget <= 0 {
		charBudget = 2000
	}
	return &Assembler{store: s, radius: radius, maxNeighbors: maxNeighbors, charBudget: charBudget}
}

// Build gathers persisted neighbors of c and greedily packs them into a
// bounded textual summary. The store already orders neighbors nearest
// first (Chebyshev, then axis priority), so trimming keeps the closest.
func (a *Assembler) Build(ctx context.Context, c model.Coordinate) (*ContextPayload, error) {
	neighbors, err := a.store.NeighborsWithin(ctx, c, a.radius)
	if err != nil {
		return nil, fmt.Errorf("gather neighbors: %w", err)
	}
	if len(neighbors) > a.maxNeighbors {
		neighbors = neighbors[:a.maxNeighbors]
	}

	payload := &ContextPayload{Target: c}
	if len(neighbors) == 0 {
		payload.Summary = NoContext
		return payload, nil
	}

	var b strings.Builder
	used := 0
	for _, n := range neighbors {
		line := fmt.Sprintf("- %s (%d, %d, %d): %s",
			offsetHint(n.Offset), n.Record.Coord.X, n.Record.Coord.Y, n.Record.Coord.Z,
			n.Record.Description)
		if used+len(line)+1 > a.charBudget {
			break
		}
		if used > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		used += len(line) + 1
		payload.Neighbors = append(payload.Neighbors, n)
	}

	if len(payload.Neighbors) == 0 {
		payload.Summary = NoContext
		return payload, nil
	}
	payload.Summary = b.String()
	return payload, nil
}

// offsetHint names the direction a neighbor lies in, for axis-aligned
// offsets; diagonal neighbors fall back to a generic label.
func offsetHint(off model.Coordinate) string {
	switch off {
	case model.Coordinate{X: 0, Y: 1, Z: 0}:
		return "above"
	case model.Coordinate{X: 0, Y: -1, Z: 0}:
		return "below"
	case model.Coordinate{X: -1, Y: 0, Z: 0}:
		return "to the left"
	case model.Coordinate{X: 1, Y: 0, Z: 0}:
		return "to the right"
	case model.Coordinate{X: 0, Y: 0, Z: 1}:
		return "ahead"
	case model.Coordinate{X: 0, Y: 0, Z: -1}:
		return "behind"
	}
	return "nearby"
}
