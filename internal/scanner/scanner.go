package scanner

import (
	"context"
	"strings"
	"time"

	"github.com/Rayxworld/Vegil/internal/heuristics"
	"github.com/Rayxworld/Vegil/internal/intel"
	"github.com/Rayxworld/Vegil/internal/redact"
	"github.com/Rayxworld/Vegil/internal/telemetry"
	"github.com/Rayxworld/Vegil/internal/verdict"
)

// urlShortCircuitScore is the heuristic confidence above which the URL
// path skips external intelligence entirely. A heuristic verdict at this
// level is already actionable, and the external call costs money.
const urlShortCircuitScore = 60

// truncationMarker is appended to email content cut down for an external
// judgment call.
const truncationMarker = "... [Content Truncated for Analysis]"

// Options configures a Scanner. Reputation and Judgment are nil when the
// corresponding credential is absent; a nil provider is never called.
type Options struct {
	Lists           heuristics.Lists
	Reputation      intel.ReputationLookup
	Judgment        intel.JudgmentProvider
	Telemetry       *telemetry.Provider
	ExternalTimeout time.Duration
	MaxEmailChars   int
}

// Scanner runs heuristic scoring and, when configured, external
// intelligence, combining the two per a fixed per-subject policy. It holds
// no mutable state; concurrent assessments need no coordination.
type Scanner struct {
	urls    *heuristics.URLScorer
	emails  *heuristics.EmailScorer
	handles *heuristics.HandleScorer

	reputation intel.ReputationLookup
	judgment   intel.JudgmentProvider
	tel        *telemetry.Provider

	timeout       time.Duration
	maxEmailChars int
}

func New(opts Options) *Scanner {
	if opts.ExternalTimeout <= 0 {
		opts.ExternalTimeout = 15 * time.Second
	}
	if opts.MaxEmailChars <= 0 {
		opts.MaxEmailChars = 2000
	}
	return &Scanner{
		urls:          heuristics.NewURLScorer(opts.Lists),
		emails:        heuristics.NewEmailScorer(opts.Lists),
		handles:       heuristics.NewHandleScorer(),
		reputation:    opts.Reputation,
		judgment:      opts.Judgment,
		tel:           opts.Telemetry,
		timeout:       opts.ExternalTimeout,
		maxEmailChars: opts.MaxEmailChars,
	}
}

// AssessURL scores a URL. The heuristic result stands alone when it is
// already confident or when no reputation source is configured; otherwise
// the reputation score is fused in by taking the max and appending any
// findings the heuristics missed. AssessURL never returns an error: every
// provider failure falls back to the heuristic verdict.
func (s *Scanner) AssessURL(ctx context.Context, rawURL string) verdict.Verdict {
	h := s.urls.Score(rawURL)
	v := verdict.Verdict{
		Score:  h.Score,
		Flags:  h.Flags,
		Detail: h.Detail,
		Source: verdict.SourceHeuristic,
		URL:    rawURL,
	}

	if h.Score >= urlShortCircuitScore || s.reputation == nil {
		return finalize(v, verdict.URLBands)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	start := time.Now()
	rep, err := s.reputation.LookupURL(ctx, rawURL)
	s.recordProviderCall(s.reputation.Name(), start, err)
	if err != nil {
		redact.Logf("reputation lookup via %s unavailable: %v", s.reputation.Name(), err)
		return finalize(v, verdict.URLBands)
	}

	if rep.Score > v.Score {
		v.Score = rep.Score
	}
	v.Flags = appendMissing(h.Flags, rep.Flags)
	if rep.Detail != "" {
		v.Detail = rep.Detail
	}
	v.Source = verdict.SourceFused
	return finalize(v, verdict.URLBands)
}

// AssessEmail scores email text. Unlike URLs, email does not fuse: the
// judgment provider's verdict is preferred wholesale when available, and
// the keyword heuristic covers every failure mode. Local scoring always
// sees the full text; only the provider sees the truncated form.
func (s *Scanner) AssessEmail(ctx context.Context, content string) verdict.Verdict {
	if s.judgment != nil {
		jctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		start := time.Now()
		j, err := s.judgment.JudgeEmail(jctx, truncateRunes(content, s.maxEmailChars))
		s.recordProviderCall(s.judgment.Name(), start, err)
		if err == nil {
			v := verdict.Verdict{
				Score:  verdict.Clamp(j.Score),
				Flags:  j.Flags,
				Detail: j.Detail,
				Source: verdict.ExternalSource(s.judgment.Name()),
			}
			return finalize(v, verdict.TextBands)
		}
		redact.Logf("email judgment via %s unavailable: %v", s.judgment.Name(), err)
	}

	h := s.emails.Score(content)
	return finalize(verdict.Verdict{
		Score:  h.Score,
		Flags:  h.Flags,
		Detail: h.Detail,
		Source: verdict.SourceHeuristic,
	}, verdict.TextBands)
}

// AssessHandle scores a social handle, preferring an external judgment
// like AssessEmail does. A leading @ is tolerated and stripped.
func (s *Scanner) AssessHandle(ctx context.Context, handle string) verdict.Verdict {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")

	if s.judgment != nil {
		jctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		start := time.Now()
		j, err := s.judgment.JudgeHandle(jctx, handle)
		s.recordProviderCall(s.judgment.Name(), start, err)
		if err == nil {
			v := verdict.Verdict{
				Score:  verdict.Clamp(j.Score),
				Flags:  j.Flags,
				Detail: j.Detail,
				Source: verdict.ExternalSource(s.judgment.Name()),
				Handle: handle,
			}
			return finalize(v, verdict.TextBands)
		}
		redact.Logf("handle judgment via %s unavailable: %v", s.judgment.Name(), err)
	}

	h := s.handles.Score(handle)
	return finalize(verdict.Verdict{
		Score:  h.Score,
		Flags:  h.Flags,
		Detail: h.Detail,
		Source: verdict.SourceHeuristic,
		Handle: handle,
	}, verdict.TextBands)
}

// ProviderNames reports which external providers are active. An empty
// name means that capability runs heuristics-only.
func (s *Scanner) ProviderNames() (reputation, judgment string) {
	if s.reputation != nil {
		reputation = s.reputation.Name()
	}
	if s.judgment != nil {
		judgment = s.judgment.Name()
	}
	return reputation, judgment
}

// JudgmentModel reports the generative model behind the active judgment
// provider, empty when none is configured or it names no model.
func (s *Scanner) JudgmentModel() string {
	if m, ok := s.judgment.(interface{ Model() string }); ok {
		return m.Model()
	}
	return ""
}

// recordProviderCall emits duration and failure metrics for one external
// call. Safe on a nil telemetry provider.
func (s *Scanner) recordProviderCall(provider string, start time.Time, err error) {
	s.tel.RecordProviderCall(provider, float64(time.Since(start).Milliseconds()), err != nil)
}

// finalize classifies the score and guarantees a non-empty flag list.
func finalize(v verdict.Verdict, b verdict.Bands) verdict.Verdict {
	if len(v.Flags) == 0 {
		v.Flags = []string{verdict.NoSignalFlag}
	}
	v.Level = b.Classify(v.Score)
	return v
}

// appendMissing appends the extras not already present in base, keeping
// base order first.
func appendMissing(base, extras []string) []string {
	out := make([]string, len(base), len(base)+len(extras))
	copy(out, base)
	for _, e := range extras {
		seen := false
		for _, b := range base {
			if b == e {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, e)
		}
	}
	return out
}

// truncateRunes cuts s to at most max runes, marking the cut. Counting
// runes keeps multi-byte text from being split mid-character.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + truncationMarker
}
