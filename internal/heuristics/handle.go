package heuristics

import (
	"strings"
	"unicode"
)

// HandleScorer is deliberately the simplest scorer: a safe default for
// social handles when no external judgment is available.
type HandleScorer struct{}

func NewHandleScorer() *HandleScorer {
	return &HandleScorer{}
}

func (s *HandleScorer) Score(handle string) Result {
	score := 10
	if strings.ContainsFunc(handle, unicode.IsDigit) {
		score = 40
	}
	return Result{
		Score:  score,
		Flags:  []string{"heuristic analysis based on handle string"},
		Detail: "Maintain organic posting habits.",
	}
}
