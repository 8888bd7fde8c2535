package heuristics

import (
	"fmt"
	"strings"

	"github.com/Rayxworld/Vegil/internal/verdict"
)

// Result is a scorer outcome before final verdict assembly: the clamped
// score, raw flags in rule order, and a detail line. Flags may be empty
// here; the sentinel is applied when the verdict is assembled.
type Result struct {
	Score  int
	Flags  []string
	Detail string
}

// Rule weights for the URL scorer. Every rule contributes its weight
// independently; the keyword rule contributes once per matched keyword.
const (
	pointsTyposquat     = 80
	pointsNonASCIIHost  = 60
	pointsIPHost        = 50
	pointsSuspiciousTLD = 30
	pointsManySubs      = 25
	pointsShortener     = 20
	pointsLongHost      = 20
	pointsManyHyphens   = 15
	pointsKeyword       = 15
)

// URLScorer evaluates a fixed rule table against one URL. It never fails:
// the worst input yields a zero score, not an error.
type URLScorer struct {
	lists    Lists
	tldSet   map[string]struct{}
	shortSet map[string]struct{}
}

func NewURLScorer(lists Lists) *URLScorer {
	s := &URLScorer{
		lists:    lists,
		tldSet:   make(map[string]struct{}, len(lists.SuspiciousTLDs)),
		shortSet: make(map[string]struct{}, len(lists.Shorteners)),
	}
	for _, t := range lists.SuspiciousTLDs {
		s.tldSet[t] = struct{}{}
	}
	for _, h := range lists.Shorteners {
		s.shortSet[h] = struct{}{}
	}
	return s
}

// ruleHit is one triggered rule's contribution.
type ruleHit struct {
	points int
	flag   string
}

// evaluate returns every triggered rule in table order. Summation is
// order-independent but flag order must be deterministic, so the table
// order is fixed here.
func (s *URLScorer) evaluate(f URLFeatures) []ruleHit {
	var hits []ruleHit

	for _, brand := range s.lists.Brands {
		if isTyposquat(f.Host, brand) {
			hits = append(hits, ruleHit{pointsTyposquat,
				fmt.Sprintf("possible typosquat of %q", brand)})
			break
		}
	}
	if f.IsIPv4 {
		hits = append(hits, ruleHit{pointsIPHost,
			"host is a literal IP address"})
	}
	if f.NonASCII {
		hits = append(hits, ruleHit{pointsNonASCIIHost,
			fmt.Sprintf("host contains non-ASCII characters (%s)", f.ASCIIHost)})
	}
	if _, ok := s.tldSet[f.TLD]; ok {
		hits = append(hits, ruleHit{pointsSuspiciousTLD,
			fmt.Sprintf("suspicious top-level domain %s", f.TLD)})
	}
	if f.HostDots > 3 {
		hits = append(hits, ruleHit{pointsManySubs,
			fmt.Sprintf("excessive subdomain nesting (%d dots)", f.HostDots)})
	}
	if _, ok := s.shortSet[f.Host]; ok {
		hits = append(hits, ruleHit{pointsShortener,
			"known URL shortener"})
	}
	if f.HostLen > 40 {
		hits = append(hits, ruleHit{pointsLongHost,
			fmt.Sprintf("unusually long host name (%d characters)", f.HostLen)})
	}
	if f.Hyphens > 2 {
		hits = append(hits, ruleHit{pointsManyHyphens,
			fmt.Sprintf("many hyphens in host (%d)", f.Hyphens)})
	}

	lower := strings.ToLower(f.Raw)
	for _, kw := range s.lists.URLKeywords {
		if strings.Contains(lower, kw) {
			hits = append(hits, ruleHit{pointsKeyword,
				fmt.Sprintf("suspicious keyword %q in URL", kw)})
		}
	}
	return hits
}

// Score runs the rule table over raw. The rule sum accumulates without
// bound and is clamped exactly once at the end.
func (s *URLScorer) Score(raw string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Detail: "URL could not be analyzed; treating as unknown."}
		}
	}()

	f := ExtractURLFeatures(raw)
	hits := s.evaluate(f)

	sum := 0
	flags := make([]string, 0, len(hits))
	for _, h := range hits {
		sum += h.points
		flags = append(flags, h.flag)
	}

	score := verdict.Clamp(sum)
	return Result{Score: score, Flags: flags, Detail: urlDetail(score)}
}

func urlDetail(score int) string {
	switch {
	case score > 70:
		return "Strong indicators of a malicious or deceptive URL. Do not enter credentials."
	case score >= 30:
		return "Some suspicious traits detected. Verify the destination before proceeding."
	default:
		return "No strong risk indicators found in the URL structure."
	}
}
