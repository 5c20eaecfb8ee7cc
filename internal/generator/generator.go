package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"neongrid/internal/model"
)

const systemPrompt = "You are a creative cyberpunk world generator. Generate immersive, atmospheric descriptions."

// Generator turns a coordinate and assembled neighbor context into a
// description record. Transient provider failures are retried with
// exponential backoff; when every attempt fails a deterministic fallback
// record is returned instead of an error, so exploration never stalls on
// an outage.
type Generator struct {
	provider   Provider
	extent     int
	maxRetries int
	retryDelay time.Duration
	newID      func() string
	sleep      func(time.Duration)
}

// New creates a generator for a world of the given extent. newID supplies
// record IDs (the store's ULID source in production).
func New(p Provider, extent, maxRetries int, retryDelay time.Duration, newID func() string) *Generator {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Generator{
		provider:   p,
		extent:     extent,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		newID:      newID,
		sleep:      time.Sleep,
	}
}

// Describe produces a record for the coordinate. contextSummary is the
// assembled neighbor summary actually used, snapshotted onto the record.
// Describe never fails; the returned record's Source distinguishes genuine
// content from the fallback.
func (g *Generator) Describe(ctx context.Context, c model.Coordinate, contextSummary string) *model.Record {
	prompt := g.buildPrompt(c, contextSummary)
	delay := g.retryDelay

	var lastErr error
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		if attempt > 0 {
			g.sleep(delay)
			delay *= 2
		}

		text, err := g.provider.Complete(ctx, systemPrompt, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		text = cleanDescription(text)
		if text == "" {
			lastErr = errors.New("empty response")
			continue
		}

		return &model.Record{
			ID:             g.newID(),
			Coord:          c,
			Description:    text,
			Source:         model.SourceGenerated,
			ContextSummary: contextSummary,
			CreatedAt:      time.Now().UTC(),
		}
	}

	fmt.Fprintf(os.Stderr, "warning: generation failed for (%d, %d, %d): %v\n", c.X, c.Y, c.Z, lastErr)
	return g.fallback(c, contextSummary)
}

// cleanDescription trims whitespace and strips one pair of surrounding
// quotes, if present.
func cleanDescription(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			text = text[1 : len(text)-1]
		}
	}
	return strings.TrimSpace(text)
}
