package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model.
// It names the tweet fixture to analyze and defaults for filters and output.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Filter  FilterConfig  `yaml:"filter"`
	Ranking RankingConfig `yaml:"ranking"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type InputConfig struct {
	// Tweet fixture file (YAML or JSON). If empty, read from env TWITNET_INPUT
	Path string `yaml:"path"`
}

type FilterConfig struct {
	// Keywords used by `containing` when -words is not given
	Keywords []string `yaml:"keywords"`
	// Author used by `written-by` when -user is not given
	Author string `yaml:"author"`
}

type RankingConfig struct {
	// How many influencers to print; 0 prints all
	Top int `yaml:"top"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type MetricsConfig struct {
	// e.g. ":9090"; empty disables the endpoint. If empty, read from env METRICS_ADDR
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Input:   InputConfig{Path: "./testdata/tweets.yaml"},
		Filter:  FilterConfig{Keywords: []string{"rivest", "talk"}},
		Ranking: RankingConfig{Top: 10},
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
// A .env file in the working directory is read first when present.
func (c *Config) ResolveEnv() {
	_ = godotenv.Load()
	if c.Input.Path == "" {
		c.Input.Path = os.Getenv("TWITNET_INPUT")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = os.Getenv("TWITNET_LOG_LEVEL")
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
