package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"neongrid/internal/model"
)

// stubProvider returns queued results in order; an entry with err set
// simulates a transient failure.
type stubProvider struct {
	results []stubResult
	calls   int
	prompts []string
}

type stubResult struct {
	text string
	err  error
}

func (p *stubProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	i := p.calls
	p.calls++
	if i >= len(p.results) {
		return "", errors.New("no more stub results")
	}
	return p.results[i].text, p.results[i].err
}

func newTestGenerator(p Provider) *Generator {
	n := 0
	g := New(p, 100, 3, time.Second, func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	g.sleep = func(time.Duration) {}
	return g
}

func TestDescribeSuccess(t *testing.T) {
	p := &stubProvider{results: []stubResult{{text: `"A rain-slick arcade hums with dead pixels."`}}}
	g := newTestGenerator(p)

	summary := "No surrounding context available."
	rec := g.Describe(context.Background(), model.Coordinate{X: 50, Y: 50, Z: 50}, summary)
	if rec.Source != model.SourceGenerated {
		t.Errorf("expected generated source, got %q", rec.Source)
	}
	if rec.Description != "A rain-slick arcade hums with dead pixels." {
		t.Errorf("expected quotes stripped, got %q", rec.Description)
	}
	if rec.ContextSummary != summary {
		t.Errorf("expected context snapshot, got %q", rec.ContextSummary)
	}
	if rec.ID == "" || rec.CreatedAt.IsZero() {
		t.Error("expected ID and timestamp set")
	}
	if p.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", p.calls)
	}
}

func TestDescribeRetriesThenSucceeds(t *testing.T) {
	p := &stubProvider{results: []stubResult{
		{err: errors.New("rate limited")},
		{text: "   "},
		{text: "A flooded maintenance tunnel."},
	}}
	g := newTestGenerator(p)

	var delays []time.Duration
	g.sleep = func(d time.Duration) { delays = append(delays, d) }

	rec := g.Describe(context.Background(), model.Coordinate{X: 1, Y: 2, Z: 3}, "")
	if rec.Source != model.SourceGenerated {
		t.Fatalf("expected generated source, got %q", rec.Source)
	}
	if p.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", p.calls)
	}
	// Exponential backoff between attempts.
	if len(delays) != 2 || delays[0] != time.Second || delays[1] != 2*time.Second {
		t.Errorf("expected backoff [1s 2s], got %v", delays)
	}
}

func TestDescribeFallbackAfterExhaustion(t *testing.T) {
	p := &stubProvider{results: []stubResult{
		{err: errors.New("down")}, {err: errors.New("down")}, {err: errors.New("down")},
	}}
	g := newTestGenerator(p)

	c := model.Coordinate{X: 10, Y: 10, Z: 10}
	rec := g.Describe(context.Background(), c, "summary")
	if rec.Source != model.SourceFallback {
		t.Fatalf("expected fallback source, got %q", rec.Source)
	}
	if rec.Description == "" {
		t.Fatal("expected non-empty fallback description")
	}
	if rec.ContextSummary != "summary" {
		t.Errorf("expected context snapshot kept, got %q", rec.ContextSummary)
	}
	if p.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", p.calls)
	}

	// Deterministic per coordinate.
	p2 := &stubProvider{results: []stubResult{
		{err: errors.New("down")}, {err: errors.New("down")}, {err: errors.New("down")},
	}}
	rec2 := newTestGenerator(p2).Describe(context.Background(), c, "summary")
	if rec2.Description != rec.Description {
		t.Errorf("fallback not deterministic:\n%q\n%q", rec.Description, rec2.Description)
	}

	idx := (10*10000 + 10*100 + 10) % len(fallbackTemplates)
	if !strings.HasPrefix(rec.Description, fallbackTemplates[idx]) {
		t.Errorf("expected template %d, got %q", idx, rec.Description)
	}
}

func TestPromptIncludesContextAndPosition(t *testing.T) {
	p := &stubProvider{results: []stubResult{{text: "ok"}}}
	g := newTestGenerator(p)

	g.Describe(context.Background(), model.Coordinate{X: 0, Y: 50, Z: 50}, "- nearby (1, 50, 50): a drone bay")
	if len(p.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(p.prompts))
	}
	prompt := p.prompts[0]
	if !strings.Contains(prompt, "a drone bay") {
		t.Error("expected prompt to include neighbor context")
	}
	if !strings.Contains(prompt, "at the world's edge") {
		t.Error("expected prompt to describe the boundary position")
	}
	if !strings.Contains(prompt, "in the industrial district") {
		t.Error("expected prompt to include the district band")
	}
}

func TestCleanDescription(t *testing.T) {
	cases := map[string]string{
		`"quoted"`:      "quoted",
		`'single'`:      "single",
		"  padded  ":    "padded",
		`"`:             `"`,
		"plain text":    "plain text",
		`"outer 'in'" `: "outer 'in'",
	}
	for in, want := range cases {
		if got := cleanDescription(in); got != want {
			t.Errorf("cleanDescription(%q) = %q, want %q", in, got, want)
		}
	}
}
