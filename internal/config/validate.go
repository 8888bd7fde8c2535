package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Validate checks the loaded config for safe values. It runs after
// applyDefaults, so empty optional sections have already been filled.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}

	switch cfg.Providers.Judgment {
	case "", "openrouter", "gemini":
	default:
		return fmt.Errorf("providers.judgment must be openrouter or gemini, got %q", cfg.Providers.Judgment)
	}
	if cfg.Providers.TimeoutSeconds <= 0 {
		return errors.New("providers.timeout_seconds must be positive")
	}

	if cfg.Limits.MaxEmailChars <= 0 {
		return errors.New("limits.max_email_chars must be positive")
	}

	if _, ok := new(big.Int).SetString(cfg.Subscription.MinFlowRate, 10); !ok {
		return fmt.Errorf("subscription.min_flow_rate is not a decimal integer: %q", cfg.Subscription.MinFlowRate)
	}
	for chain, u := range cfg.Subscription.SubgraphURLs {
		if strings.TrimSpace(u) == "" {
			return fmt.Errorf("subscription.subgraph_urls[%d] is empty", chain)
		}
	}

	switch strings.ToLower(cfg.Telemetry.Protocol) {
	case "grpc", "http":
	default:
		return fmt.Errorf("telemetry.protocol must be grpc or http, got %q", cfg.Telemetry.Protocol)
	}
	if cfg.Telemetry.Enabled && strings.TrimSpace(cfg.Telemetry.Endpoint) == "" {
		return errors.New("telemetry.endpoint must be set when telemetry is enabled")
	}

	return nil
}
