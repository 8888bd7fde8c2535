package scanner

import (
	"context"
	"time"

	"github.com/Rayxworld/Vegil/internal/config"
	"github.com/Rayxworld/Vegil/internal/heuristics"
	"github.com/Rayxworld/Vegil/internal/intel"
	"github.com/Rayxworld/Vegil/internal/redact"
	"github.com/Rayxworld/Vegil/internal/telemetry"
)

// FromConfig builds a Scanner with whatever providers have credentials.
// Absent credentials are not an error: the scanner degrades to
// heuristics-only and performs no network I/O at all. tel may be nil.
func FromConfig(ctx context.Context, cfg *config.Config, tel *telemetry.Provider) *Scanner {
	timeout := time.Duration(cfg.Providers.TimeoutSeconds) * time.Second

	var reputation intel.ReputationLookup
	if key := cfg.Providers.VirusTotal.APIKey(); key != "" {
		reputation = intel.NewVirusTotal(cfg.Providers.VirusTotal.BaseURL, key, timeout)
	}

	judgment := judgmentFromConfig(ctx, cfg, timeout)

	return New(Options{
		Lists:           heuristics.DefaultLists(),
		Reputation:      reputation,
		Judgment:        judgment,
		Telemetry:       tel,
		ExternalTimeout: timeout,
		MaxEmailChars:   cfg.Limits.MaxEmailChars,
	})
}

func judgmentFromConfig(ctx context.Context, cfg *config.Config, timeout time.Duration) intel.JudgmentProvider {
	orKey := cfg.Providers.OpenRouter.APIKey()
	gemKey := cfg.Providers.Gemini.APIKey()

	useGemini := cfg.Providers.Judgment == "gemini" || (cfg.Providers.Judgment == "" && orKey == "" && gemKey != "")
	if useGemini {
		if gemKey == "" {
			return nil
		}
		g, err := intel.NewGemini(ctx, gemKey, cfg.Providers.Gemini.Model)
		if err != nil {
			redact.Logf("gemini unavailable, falling back to heuristics: %v", err)
			return nil
		}
		return g
	}

	if orKey == "" {
		return nil
	}
	return intel.NewOpenRouter(cfg.Providers.OpenRouter.BaseURL, orKey,
		cfg.Providers.OpenRouter.Model, timeout)
}
