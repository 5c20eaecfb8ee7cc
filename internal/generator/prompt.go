package generator

import (
	"fmt"
	"strings"

	"neongrid/internal/model"
)

func (g *Generator) buildPrompt(c model.Coordinate, contextSummary string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Create a vivid, immersive description for a location at coordinates (%d, %d, %d) in a %dx%dx%d cube world.

The location is %s, %s, %s.

The description should be:
- Never mention the coordinates in the description.
- Cyberpunk themed (neon lights, technology, urban decay, corporate control)
- 2-3 sentences long
- Atmospheric and immersive
- Unique to this specific location
- Include sensory details (sights, sounds, smells)`,
		c.X, c.Y, c.Z, g.extent, g.extent, g.extent,
		edgeDescriptor(c, g.extent), districtFor(c.X, g.extent), levelFor(c.Y, g.extent))

	if contextSummary != "" {
		b.WriteString("\n\nSurrounding area context:\n")
		b.WriteString(contextSummary)
		b.WriteString("\n\nKeep the description consistent with the surrounding area while still being unique to this specific location.")
		b.WriteString("\nDo not copy the neighbor descriptions; use them as hints for what lies in each direction from here.")
	}

	b.WriteString("\n\nDescription:")
	return b.String()
}

// edgeDescriptor places the coordinate relative to the world's boundaries.
func edgeDescriptor(c model.Coordinate, extent int) string {
	edge := c.X
	for _, d := range []int{c.Y, c.Z, extent - 1 - c.X, extent - 1 - c.Y, extent - 1 - c.Z} {
		if d < edge {
			edge = d
		}
	}
	switch {
	case edge == 0:
		return "at the world's edge"
	case edge <= extent/10:
		return "near the world's edge"
	default:
		return "deep in the central sprawl"
	}
}

func districtFor(x, extent int) string {
	switch {
	case x < extent/4:
		return "in the industrial district"
	case x < 3*extent/4:
		return "in the central business district"
	default:
		return "in the residential sector"
	}
}

func levelFor(y, extent int) string {
	switch {
	case y < extent/4:
		return "at street level"
	case y < 3*extent/4:
		return "on the mid-level walkways"
	default:
		return "on the upper levels"
	}
}
