package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"speakup/generator"
)

// Config is the speakup configuration file.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"` // memory, sqlite
	Path    string `yaml:"path"`
}

type GeneratorConfig struct {
	TweakStrategy string `yaml:"tweak_strategy"` // mutate, regenerate
	Seed          int64  `yaml:"seed"`           // 0 seeds from the clock
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "10s",
		},
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    "speakup.db",
		},
		Generator: GeneratorConfig{
			TweakStrategy: string(generator.StrategyMutate),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and applies env overrides. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("SPEAKUP_ADDR", &c.Server.Addr)
	setString("SPEAKUP_STORE_BACKEND", &c.Store.Backend)
	setString("SPEAKUP_STORE_PATH", &c.Store.Path)
	setString("SPEAKUP_TWEAK_STRATEGY", &c.Generator.TweakStrategy)
	setString("SPEAKUP_LOG_LEVEL", &c.Logging.Level)

	if v := os.Getenv("SPEAKUP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SPEAKUP_SEED %q: %w", v, err)
		}
		c.Generator.Seed = seed
	}
	return nil
}

// Validate checks enumerated and parsed fields.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "memory":
	case "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("invalid store.backend %q: want memory or sqlite", c.Store.Backend)
	}
	if _, err := generator.ParseTweakStrategy(c.Generator.TweakStrategy); err != nil {
		return fmt.Errorf("invalid generator.tweak_strategy: %w", err)
	}
	if _, err := c.ShutdownTimeout(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) ShutdownTimeout() (time.Duration, error) {
	if c.Server.ShutdownTimeout == "" {
		return 10 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid server.shutdown_timeout %q: %w", c.Server.ShutdownTimeout, err)
	}
	return d, nil
}

func (c *Config) TweakStrategy() generator.TweakStrategy {
	s, err := generator.ParseTweakStrategy(c.Generator.TweakStrategy)
	if err != nil {
		return generator.StrategyMutate
	}
	return s
}

func (c *Config) LogLevel() (zap.AtomicLevel, error) {
	level := c.Logging.Level
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid logging.level %q: %w", c.Logging.Level, err)
	}
	return lvl, nil
}

// NewLogger builds the process logger. verbose forces debug.
func (c *Config) NewLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zc.Level = lvl
	return zc.Build()
}
