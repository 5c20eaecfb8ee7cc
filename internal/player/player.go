// Package player tracks the explorer's position in the world grid.
package player

import (
	"fmt"

	"neongrid/internal/model"
)

// State holds the current position within a world of the given extent.
// Move is the only mutator; the position is always in bounds.
type State struct {
	Position model.Coordinate
	Extent   int
}

// New creates a player state at start. The starting coordinate must be
// inside [0, extent-1] on every axis.
func New(start model.Coordinate, extent int) (*State, error) {
	if extent < 1 {
		return nil, fmt.Errorf("world extent must be at least 1, got %d", extent)
	}
	clamped, was := Clamp(start, extent)
	if was.Any() {
		return nil, fmt.Errorf("start (%d, %d, %d) is out of bounds [0, %d]",
			start.X, start.Y, start.Z, extent-1)
	}
	return &State{Position: clamped, Extent: extent}, nil
}

// Move applies one step in the given direction, clamping each axis
// independently to [0, Extent-1]. Moving past a boundary leaves that axis
// unchanged (saturating clamp, not wraparound). It reports which axes hit
// a boundary and never fails. Unknown directions are a no-op.
func (s *State) Move(dir model.Direction) (model.Coordinate, model.Clamped) {
	v, ok := model.Vectors[dir]
	if !ok {
		return s.Position, model.Clamped{}
	}
	next, clamped := Clamp(s.Position.Add(v[0], v[1], v[2]), s.Extent)
	s.Position = next
	return next, clamped
}

// Clamp saturates each axis of c into [0, extent-1], reporting per axis
// whether the value was held at a boundary.
func Clamp(c model.Coordinate, extent int) (model.Coordinate, model.Clamped) {
	var cl model.Clamped
	c.X, cl.X = clampAxis(c.X, extent)
	c.Y, cl.Y = clampAxis(c.Y, extent)
	c.Z, cl.Z = clampAxis(c.Z, extent)
	return c, cl
}

func clampAxis(v, extent int) (int, bool) {
	if v < 0 {
		return 0, true
	}
	if v > extent-1 {
		return extent - 1, true
	}
	return v, false
}
