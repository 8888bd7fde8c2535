package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds Vegil configuration. Credentials are referenced by
// environment variable name, never stored in the file itself.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Providers    ProvidersConfig    `yaml:"providers"`
	Limits       LimitsConfig       `yaml:"limits"`
	Bot          BotConfig          `yaml:"bot"`
	Subscription SubscriptionConfig `yaml:"subscription"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // HTTP listen address, e.g. ":8000"
}

type ProvidersConfig struct {
	// Judgment selects which generative provider answers email/handle
	// judgments: "openrouter" or "gemini". Empty picks whichever has a
	// key, openrouter first.
	Judgment       string         `yaml:"judgment"`
	TimeoutSeconds int            `yaml:"timeout_seconds"`
	VirusTotal     ProviderConfig `yaml:"virustotal"`
	OpenRouter     ProviderConfig `yaml:"openrouter"`
	Gemini         ProviderConfig `yaml:"gemini"`
}

type ProviderConfig struct {
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
}

// APIKey resolves the provider credential from the environment. Empty
// means the provider is not configured and must never be called.
func (p ProviderConfig) APIKey() string {
	if p.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(p.APIKeyEnv)
}

type LimitsConfig struct {
	// MaxEmailChars bounds what is sent to an external judgment provider.
	// Local keyword scoring always runs on the full text.
	MaxEmailChars int `yaml:"max_email_chars"`
}

type BotConfig struct {
	TokenEnv string `yaml:"token_env"`
}

// Token resolves the Telegram bot token from the environment.
func (b BotConfig) Token() string {
	if b.TokenEnv == "" {
		return ""
	}
	return os.Getenv(b.TokenEnv)
}

type SubscriptionConfig struct {
	// MinFlowRate is the wei-per-second stream rate that counts as an
	// active subscription (~$10/month by default).
	MinFlowRate    string           `yaml:"min_flow_rate"`
	TimeoutSeconds int              `yaml:"timeout_seconds"`
	SubgraphURLs   map[int64]string `yaml:"subgraph_urls"`
}

type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Protocol string `yaml:"protocol"` // grpc | http
}

// Load reads configuration from a YAML file. A missing file is not an
// error: defaults apply, and the service runs heuristics-only until
// credentials appear in the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8000"
	}
	if cfg.Providers.TimeoutSeconds <= 0 {
		cfg.Providers.TimeoutSeconds = 15
	}
	if cfg.Providers.VirusTotal.APIKeyEnv == "" {
		cfg.Providers.VirusTotal.APIKeyEnv = "VIRUSTOTAL_API_KEY"
	}
	if cfg.Providers.OpenRouter.APIKeyEnv == "" {
		cfg.Providers.OpenRouter.APIKeyEnv = "OPENROUTER_API_KEY"
	}
	if cfg.Providers.Gemini.APIKeyEnv == "" {
		cfg.Providers.Gemini.APIKeyEnv = "GEMINI_API_KEY"
	}
	if cfg.Limits.MaxEmailChars <= 0 {
		cfg.Limits.MaxEmailChars = 2000
	}
	if cfg.Bot.TokenEnv == "" {
		cfg.Bot.TokenEnv = "TELEGRAM_BOT_TOKEN"
	}
	if cfg.Subscription.MinFlowRate == "" {
		cfg.Subscription.MinFlowRate = "385802469135802"
	}
	if cfg.Subscription.TimeoutSeconds <= 0 {
		cfg.Subscription.TimeoutSeconds = 10
	}
	if cfg.Subscription.SubgraphURLs == nil {
		cfg.Subscription.SubgraphURLs = map[int64]string{
			1:        "https://api.thegraph.com/subgraphs/name/superfluid-finance/protocol-v1-ethereum-mainnet",
			56:       "https://api.thegraph.com/subgraphs/name/superfluid-finance/protocol-v1-bsc",
			8453:     "https://base.subgraph.superfluid.finance",
			42161:    "https://arbitrum.subgraph.superfluid.finance",
			11155111: "https://api.thegraph.com/subgraphs/name/superfluid-finance/protocol-v1-sepolia",
			97:       "https://api.thegraph.com/subgraphs/name/superfluid-finance/protocol-v1-bsc-testnet",
		}
	}
	if cfg.Telemetry.Protocol == "" {
		cfg.Telemetry.Protocol = "grpc"
	}
}
