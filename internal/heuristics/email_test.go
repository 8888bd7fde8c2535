package heuristics

import (
	"strings"
	"testing"
)

func TestEmailScorerTwoKeywords(t *testing.T) {
	res := NewEmailScorer(DefaultLists()).Score("This is urgent, please verify.")
	if res.Score != 24 {
		t.Fatalf("score = %d, want 24; flags: %v", res.Score, res.Flags)
	}
	if len(res.Flags) != 2 {
		t.Fatalf("expected 2 flags, got %v", res.Flags)
	}
}

func TestEmailScorerCaseInsensitive(t *testing.T) {
	res := NewEmailScorer(DefaultLists()).Score("URGENT: VERIFY YOUR PASSWORD")
	if res.Score != 36 {
		t.Fatalf("score = %d, want 36; flags: %v", res.Score, res.Flags)
	}
}

func TestEmailScorerClean(t *testing.T) {
	res := NewEmailScorer(DefaultLists()).Score("Lunch on Tuesday?")
	if res.Score != 0 || len(res.Flags) != 0 {
		t.Fatalf("clean text should score 0 with no flags, got %+v", res)
	}
}

func TestEmailScorerClamp(t *testing.T) {
	all := strings.Join(DefaultLists().EmailKeywords, " ")
	res := NewEmailScorer(DefaultLists()).Score(all + " " + all)
	if res.Score != 100 {
		t.Fatalf("score = %d, want clamped 100", res.Score)
	}
}

func TestEmailScorerScoresFullText(t *testing.T) {
	// A keyword far past any external truncation budget still counts for
	// local scoring.
	content := strings.Repeat("a", 5000) + " unusual activity"
	res := NewEmailScorer(DefaultLists()).Score(content)
	if res.Score != 12 {
		t.Fatalf("score = %d, want 12 (keyword beyond the truncation budget)", res.Score)
	}
}

func TestEmailScorerEmpty(t *testing.T) {
	res := NewEmailScorer(DefaultLists()).Score("")
	if res.Score != 0 {
		t.Fatalf("empty content must score 0, got %d", res.Score)
	}
}
