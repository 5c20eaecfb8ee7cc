package generator

import (
	"fmt"
	"time"

	"neongrid/internal/model"
)

// fallbackTemplates are the canned descriptions used when the provider is
// unreachable. Selection is keyed to the coordinate so repeated failures
// for the same cell stay consistent.
var fallbackTemplates = []string{
	"A dimly lit cyberpunk alleyway with flickering neon signs casting eerie shadows on the wet pavement.",
	"An abandoned tech facility with exposed wiring and broken holographic displays scattered across the floor.",
	"A corporate plaza dominated by towering megacorp buildings, their windows reflecting the neon glow of the city below.",
	"An underground data hub with rows of humming servers and the constant buzz of electronic equipment.",
	"A rooftop garden oasis in the urban sprawl, where nature fights to reclaim space from the concrete jungle.",
	"A bustling street market where vendors sell black-market tech and illegal neural implants.",
	"A derelict subway station with flickering lights and the distant sound of trains echoing through the tunnels.",
	"A high-security corporate lobby with armed guards and biometric scanners at every entrance.",
	"A hacker's den filled with multiple monitors, energy drinks, and the glow of code scrolling across screens.",
	"A polluted canal where toxic waste mixes with rainwater, creating an otherworldly luminescent effect.",
}

// fallback builds the deterministic placeholder record for a coordinate.
func (g *Generator) fallback(c model.Coordinate, contextSummary string) *model.Record {
	idx := (c.X*10000 + c.Y*100 + c.Z) % len(fallbackTemplates)
	if idx < 0 {
		idx += len(fallbackTemplates)
	}

	desc := fmt.Sprintf("%s This location is %s %s.",
		fallbackTemplates[idx], districtFor(c.X, g.extent), levelFor(c.Y, g.extent))

	return &model.Record{
		ID:             g.newID(),
		Coord:          c,
		Description:    desc,
		Source:         model.SourceFallback,
		ContextSummary: contextSummary,
		CreatedAt:      time.Now().UTC(),
	}
}
