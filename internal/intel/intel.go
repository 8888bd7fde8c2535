package intel

import "context"

// Report is a normalized URL reputation finding.
type Report struct {
	Score  int
	Flags  []string
	Detail string
}

// Judgment is a normalized generative-model risk judgment.
type Judgment struct {
	Score  int
	Flags  []string
	Detail string
}

// ReputationLookup queries an external URL reputation source. Callers hold
// a nil ReputationLookup when no credential is configured, and treat an
// error from LookupURL exactly like absence: the heuristic result stands.
type ReputationLookup interface {
	Name() string
	LookupURL(ctx context.Context, rawURL string) (*Report, error)
}

// JudgmentProvider asks a generative model for a structured risk judgment.
// Implementations must honor ctx deadlines; a single failed attempt is
// final, there are no retries.
type JudgmentProvider interface {
	Name() string
	JudgeEmail(ctx context.Context, content string) (*Judgment, error)
	JudgeHandle(ctx context.Context, handle string) (*Judgment, error)
}
