package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIProviderComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "a neon plaza"}},
			},
		})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(Options{BaseURL: srv.URL, APIKey: "test-key", Model: "gpt-3.5-turbo"})
	got, err := p.Complete(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "a neon plaza" {
		t.Errorf("expected 'a neon plaza', got %q", got)
	}
}

func TestOpenAIProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(Options{BaseURL: srv.URL})
	_, err := p.Complete(context.Background(), "s", "p")
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestOpenAIProviderEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(Options{BaseURL: srv.URL})
	if _, err := p.Complete(context.Background(), "s", "p"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}

func TestOllamaProviderComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Stream {
			t.Error("expected stream disabled")
		}
		json.NewEncoder(w).Encode(ollamaResponse{Response: "a humming substation"})
	}))
	defer srv.Close()

	p := NewOllamaProvider(Options{BaseURL: srv.URL, Model: "llama3"})
	got, err := p.Complete(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "a humming substation" {
		t.Errorf("expected 'a humming substation', got %q", got)
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(Options{Provider: "carrier-pigeon"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if p, err := NewProvider(Options{Provider: "openai"}); err != nil || p == nil {
		t.Fatalf("expected openai provider, got %v", err)
	}
	if p, err := NewProvider(Options{Provider: "ollama"}); err != nil || p == nil {
		t.Fatalf("expected ollama provider, got %v", err)
	}
}
