// Package config loads funkdigen settings from a TOML file, a .env file and
// the environment.
//
// Precedence, lowest first: built-in defaults, the config file, the
// environment (including variables set by .env), command line flags. Flags
// are applied by the caller.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/funkdigen/pkg/errors"
	"github.com/matzehuels/funkdigen/pkg/generate"
)

// Environment variables that override the config file.
const (
	EnvStrategy   = "FUNKDIGEN_STRATEGY"
	EnvLoopless   = "FUNKDIGEN_LOOPLESS"
	EnvAddr       = "FUNKDIGEN_ADDR"
	EnvMaxSize    = "FUNKDIGEN_MAX_SIZE"
	EnvCountCache = "FUNKDIGEN_COUNT_CACHE"
)

// Config holds the settings shared by the commands.
type Config struct {
	// Strategy is the default generation strategy.
	Strategy string `toml:"strategy"`
	// Loopless makes digraph6 output drop loops by default.
	Loopless bool `toml:"loopless"`

	Serve ServeConfig `toml:"serve"`
}

// ServeConfig configures the HTTP service.
type ServeConfig struct {
	Addr string `toml:"addr"`
	// MaxSize is the largest size a request may ask for.
	MaxSize int `toml:"max_size"`
	// CountCache is the number of counts kept in memory.
	CountCache int `toml:"count_cache"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Strategy: string(generate.StrategySuccessor),
		Serve: ServeConfig{
			Addr:       ":8080",
			MaxSize:    12,
			CountCache: 128,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/funkdigen/config.toml, falling back
// to ~/.config. It returns "" if neither directory is known.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "funkdigen", "config.toml")
}

// Load reads .env from the working directory if present, then the config
// file at path (DefaultPath if empty), then the environment. A missing file
// at the default path is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.loadFile(path, explicit); err != nil {
			return nil, err
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v, ok := lookup(EnvStrategy); ok {
		c.Strategy = v
	}
	if v, ok := lookup(EnvAddr); ok {
		c.Serve.Addr = v
	}
	if v, ok := lookup(EnvLoopless); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", EnvLoopless)
		}
		c.Loopless = b
	}
	for name, dst := range map[string]*int{EnvMaxSize: &c.Serve.MaxSize, EnvCountCache: &c.Serve.CountCache} {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", name)
		}
		*dst = n
	}
	return nil
}

func lookup(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	return v, v != ""
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if _, err := generate.ParseStrategy(c.Strategy); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "strategy")
	}
	if c.Serve.MaxSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "serve.max_size must be nonnegative, got %d", c.Serve.MaxSize)
	}
	if c.Serve.CountCache < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "serve.count_cache must be positive, got %d", c.Serve.CountCache)
	}
	if c.Serve.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "serve.addr must not be empty")
	}
	return nil
}
