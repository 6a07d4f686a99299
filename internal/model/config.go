package model

import "time"

// Config is the full tool configuration, assembled from defaults, the
// config file, PRESCREEN_* environment variables, and CLI flags.
type Config struct {
	Corpus      CorpusConfig      `yaml:"corpus" mapstructure:"corpus"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// CorpusConfig selects the approved-claim corpus
type CorpusConfig struct {
	// Path to a YAML corpus file; empty means the built-in corpus
	Path string `yaml:"path" mapstructure:"path"`
}

// CacheConfig controls caller-side memoization of rendered reports.
// The engine itself never caches; identical input always re-runs the
// same deterministic analysis.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ServerConfig controls the HTTP API
type ServerConfig struct {
	Addr              string        `yaml:"addr" mapstructure:"addr"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	ReadTimeout       time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LLMConfig controls the optional post-analysis summary. The summary is
// generated after the engine finishes and never feeds back into issues,
// counts, or the verdict.
type LLMConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	Timeout   int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			RequestsPerSecond: 5,
			Burst:             10,
			MaxBodyBytes:      2_000_000,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Enabled:   false,
			Model:     "gpt-4o-mini",
			MaxTokens: 1000,
			Timeout:   30,
		},
	}
}
