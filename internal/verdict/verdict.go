package verdict

// Level buckets a numeric risk score for human consumption.
type Level string

const (
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
	LevelCritical Level = "Critical"
)

// Bands holds the exclusive lower thresholds of a score→level mapping:
// a score is Critical above Critical, High above High, Medium above
// Medium, and Low otherwise.
type Bands struct {
	Critical int
	High     int
	Medium   int
}

// URL verdicts and text/handle verdicts historically use different
// thresholds. That divergence is kept on purpose; do not unify.
var (
	URLBands  = Bands{Critical: 75, High: 50, Medium: 25}
	TextBands = Bands{Critical: 70, High: 50, Medium: 30}
)

// Classify maps a score to its level. It is a pure function of the score.
func (b Bands) Classify(score int) Level {
	switch {
	case score > b.Critical:
		return LevelCritical
	case score > b.High:
		return LevelHigh
	case score > b.Medium:
		return LevelMedium
	default:
		return LevelLow
	}
}

// NoSignalFlag replaces an empty flag list so callers never render an
// empty set of indicators.
const NoSignalFlag = "no suspicious patterns detected"

const (
	SourceHeuristic = "heuristic"
	SourceFused     = "fused"
)

// ExternalSource labels a verdict taken verbatim from one provider.
func ExternalSource(provider string) string {
	return "external:" + provider
}

// Verdict is the single output shape for every assessment kind. The URL
// or handle that was analyzed is echoed back for traceability; email
// content never is.
type Verdict struct {
	Score  int      `json:"risk_score"`
	Level  Level    `json:"risk_level"`
	Flags  []string `json:"flags"`
	Detail string   `json:"details"`
	Source string   `json:"source"`
	URL    string   `json:"url,omitempty"`
	Handle string   `json:"handle,omitempty"`
}

// Clamp bounds a raw rule sum to the valid score range. Rule evaluation
// accumulates without bounds; the clamp happens exactly once, here.
func Clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
