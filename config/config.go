// Package config loads tweenlog settings from YAML or TOML files and the
// environment, and assembles a Debugger from them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rediwo/tweenlog/diag"
	"gopkg.in/yaml.v3"
)

// Config is the file representation of the settings
type Config struct {
	LogBehaviour         string        `yaml:"log_behaviour" toml:"log_behaviour"`
	SafeModeLogBehaviour string        `yaml:"safe_mode_log_behaviour" toml:"safe_mode_log_behaviour" validate:"omitempty,oneof=none normal warning error"`
	DebugMode            bool          `yaml:"debug_mode" toml:"debug_mode"`
	LogLevel             string        `yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=debug info warn warning error none off"`
	Console              ConsoleConfig `yaml:"console" toml:"console"`
	Hook                 HookConfig    `yaml:"hook" toml:"hook"`
	Store                StoreConfig   `yaml:"store" toml:"store"`
	Server               ServerConfig  `yaml:"server" toml:"server"`
}

// ConsoleConfig controls the terminal console sink
type ConsoleConfig struct {
	Disabled    bool `yaml:"disabled" toml:"disabled"`
	Color       bool `yaml:"color" toml:"color"`
	Timestamps  bool `yaml:"timestamps" toml:"timestamps"`
	ForceStdErr bool `yaml:"force_stderr" toml:"force_stderr"`
}

// HookConfig controls the interception hook
type HookConfig struct {
	Script      string `yaml:"script" toml:"script"`
	MinSeverity string `yaml:"min_severity" toml:"min_severity" validate:"omitempty,oneof=info warning error"`
	TimeoutMS   int    `yaml:"timeout_ms" toml:"timeout_ms" validate:"gte=0"`
}

// StoreConfig controls where entries are kept
type StoreConfig struct {
	URI              string `yaml:"uri" toml:"uri" validate:"omitempty,store_uri"`
	RecorderCapacity int    `yaml:"recorder_capacity" toml:"recorder_capacity" validate:"gte=0"`
}

// ServerConfig controls the GraphQL inspector
type ServerConfig struct {
	Addr       string `yaml:"addr" toml:"addr" validate:"omitempty,hostname_port"`
	CORS       bool   `yaml:"cors" toml:"cors"`
	Playground bool   `yaml:"playground" toml:"playground"`
}

// Default returns errors-only logging, safe mode errors as warnings, a
// colored console and an in-memory recorder.
func Default() *Config {
	return &Config{
		LogBehaviour:         diag.LogBehaviourErrorsOnly.String(),
		SafeModeLogBehaviour: diag.SafeModeWarning.String(),
		LogLevel:             "info",
		Console:              ConsoleConfig{Color: true},
		Store:                StoreConfig{RecorderCapacity: 1000},
		Server:               ServerConfig{Addr: ":8070", Playground: true},
	}
}

// Load reads path on top of Default, applies TWEENLOG_* overrides and
// validates. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, c); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, c); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return fmt.Errorf("failed to parse config file %s at line %d, column %d: %w", path, row, col, err)
			}
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file extension: %s", filepath.Ext(path))
	}
	return nil
}

// Environment variables read by ApplyEnv
const (
	EnvLogBehaviour = "TWEENLOG_LOG_BEHAVIOUR"
	EnvSafeMode     = "TWEENLOG_SAFE_MODE"
	EnvDebugMode    = "TWEENLOG_DEBUG_MODE"
	EnvLogLevel     = "TWEENLOG_LOG_LEVEL"
	EnvStoreURI     = "TWEENLOG_STORE_URI"
	EnvHookScript   = "TWEENLOG_HOOK_SCRIPT"
	EnvServerAddr   = "TWEENLOG_SERVER_ADDR"
)

// ApplyEnv overrides fields from the environment. lookup is os.LookupEnv in
// production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvLogBehaviour: &c.LogBehaviour,
		EnvSafeMode:     &c.SafeModeLogBehaviour,
		EnvLogLevel:     &c.LogLevel,
		EnvStoreURI:     &c.Store.URI,
		EnvHookScript:   &c.Hook.Script,
		EnvServerAddr:   &c.Server.Addr,
	}
	for key, field := range strs {
		if v, ok := lookup(key); ok {
			*field = v
		}
	}

	if v, ok := lookup(EnvDebugMode); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDebugMode, err)
		}
		c.DebugMode = on
	}
	return nil
}

// DiagConfig converts the settings to a diag.Config without a hook
func (c *Config) DiagConfig() diag.Config {
	safeMode, err := diag.ParseSafeModeLogBehaviour(c.SafeModeLogBehaviour)
	if err != nil {
		safeMode = diag.SafeModeWarning
	}
	return diag.Config{
		LogBehaviour:         diag.ParseLogBehaviour(c.LogBehaviour),
		SafeModeLogBehaviour: safeMode,
		DebugMode:            c.DebugMode,
	}
}
