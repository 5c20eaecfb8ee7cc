// Package model defines the core world data types.
package model

import "time"

// Coordinate identifies a cell in the 3D world grid. It is a plain
// comparable value type so it works directly as a map key.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns the coordinate offset by (dx, dy, dz). No clamping.
func (c Coordinate) Add(dx, dy, dz int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// Sub returns the offset from o to c.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Chebyshev returns the Chebyshev distance to o (max per-axis delta).
func (c Coordinate) Chebyshev(o Coordinate) int {
	d := abs(c.X - o.X)
	if dy := abs(c.Y - o.Y); dy > d {
		d = dy
	}
	if dz := abs(c.Z - o.Z); dz > d {
		d = dz
	}
	return d
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Record sources.
const (
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

// Record is the persisted description of one world cell. At most one
// record exists per coordinate.
type Record struct {
	ID             string     `json:"id"`
	Coord          Coordinate `json:"coord"`
	Description    string     `json:"description"`
	Source         string     `json:"source"`
	ContextSummary string     `json:"context_summary,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Neighbor pairs a persisted record with its offset from a query center.
type Neighbor struct {
	Offset Coordinate `json:"offset"`
	Record Record     `json:"record"`
}

// Direction is one of the six axis-aligned movement directions.
type Direction string

const (
	DirUp       Direction = "up"       // +Y
	DirDown     Direction = "down"     // -Y
	DirLeft     Direction = "left"     // -X
	DirRight    Direction = "right"    // +X
	DirForward  Direction = "forward"  // +Z
	DirBackward Direction = "backward" // -Z
)

// Vectors maps each direction to its unit vector as (dx, dy, dz).
var Vectors = map[Direction][3]int{
	DirUp:       {0, 1, 0},
	DirDown:     {0, -1, 0},
	DirLeft:     {-1, 0, 0},
	DirRight:    {1, 0, 0},
	DirForward:  {0, 0, 1},
	DirBackward: {0, 0, -1},
}

// Clamped reports which axes were held at a world boundary by a move.
type Clamped struct {
	X bool `json:"x"`
	Y bool `json:"y"`
	Z bool `json:"z"`
}

// Any reports whether any axis was clamped.
func (cl Clamped) Any() bool { return cl.X || cl.Y || cl.Z }
