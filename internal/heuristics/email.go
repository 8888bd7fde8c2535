package heuristics

import (
	"fmt"
	"strings"

	"github.com/Rayxworld/Vegil/internal/verdict"
)

// Points per phishing keyword found in email text.
const pointsEmailKeyword = 12

// EmailScorer tests email text for known phishing keywords. It always
// scores the full text; truncation limits apply only to what gets sent to
// an external judgment provider, never to local scoring.
type EmailScorer struct {
	lists Lists
}

func NewEmailScorer(lists Lists) *EmailScorer {
	return &EmailScorer{lists: lists}
}

func (s *EmailScorer) Score(content string) Result {
	c := strings.ToLower(content)

	sum := 0
	var flags []string
	for _, kw := range s.lists.EmailKeywords {
		if strings.Contains(c, kw) {
			sum += pointsEmailKeyword
			flags = append(flags, fmt.Sprintf("phishing keyword %q", kw))
		}
	}

	score := verdict.Clamp(sum)
	detail := "No known phishing keywords found in the message."
	if len(flags) > 0 {
		detail = fmt.Sprintf("Detected %d suspicious keyword(s) in the message.", len(flags))
	}
	return Result{Score: score, Flags: flags, Detail: detail}
}
