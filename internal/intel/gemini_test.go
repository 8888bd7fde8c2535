package intel

import (
	"context"
	"testing"
)

var _ JudgmentProvider = (*Gemini)(nil)

func TestNewGeminiDefaultsModel(t *testing.T) {
	g, err := NewGemini(context.Background(), "test-key", "")
	if err != nil {
		t.Fatalf("NewGemini: %v", err)
	}
	if g.Model() != DefaultGeminiModel {
		t.Fatalf("model = %q, want %q", g.Model(), DefaultGeminiModel)
	}
	if g.Name() != "gemini" {
		t.Fatalf("name = %q", g.Name())
	}
}

func TestNewGeminiKeepsConfiguredModel(t *testing.T) {
	g, err := NewGemini(context.Background(), "test-key", "gemini-2.0-flash")
	if err != nil {
		t.Fatalf("NewGemini: %v", err)
	}
	if g.Model() != "gemini-2.0-flash" {
		t.Fatalf("model = %q", g.Model())
	}
}
