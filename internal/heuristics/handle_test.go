package heuristics

import "testing"

func TestHandleScorerDigits(t *testing.T) {
	res := NewHandleScorer().Score("crypto_guy_2024")
	if res.Score != 40 {
		t.Fatalf("score = %d, want 40 for a handle with digits", res.Score)
	}
}

func TestHandleScorerNoDigits(t *testing.T) {
	res := NewHandleScorer().Score("elonmusk")
	if res.Score != 10 {
		t.Fatalf("score = %d, want 10 for a plain handle", res.Score)
	}
}

func TestHandleScorerFixedFlag(t *testing.T) {
	res := NewHandleScorer().Score("whoever")
	if len(res.Flags) != 1 || res.Flags[0] != "heuristic analysis based on handle string" {
		t.Fatalf("unexpected flags: %v", res.Flags)
	}
}

func TestHandleScorerEmpty(t *testing.T) {
	res := NewHandleScorer().Score("")
	if res.Score != 10 {
		t.Fatalf("score = %d, want 10 for empty handle", res.Score)
	}
}
