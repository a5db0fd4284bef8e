// Package config reads rolint.toml.
package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"rolint/internal/lint"
	"rolint/internal/stdlib"
)

// StdAuto picks roblox or lua51 per file from dialect evidence.
const StdAuto = "auto"

const defaultStd = "roblox"

var (
	ErrUnknownRule = lint.ErrUnknownRule
	ErrUnknownStd  = stdlib.ErrUnknownStd
)

// Config is the effective configuration. Zero values are not meaningful;
// start from Default or Load.
type Config struct {
	// Path is the file this configuration came from, empty for defaults.
	Path string
	// Dir anchors relative std paths.
	Dir   string
	Std   string
	Rules map[string]RuleSetting
	Cache CacheConfig
}

// RuleSetting is one entry of [rules]: `name = false` or `name = "warning"`.
type RuleSetting struct {
	Enabled bool
	// Severity is set only when the file names a level.
	Severity    lint.Severity
	HasSeverity bool
}

type CacheConfig struct {
	Enabled bool
	Dir     string
}

type fileConfig struct {
	Std   string         `toml:"std"`
	Rules map[string]any `toml:"rules"`
	Cache struct {
		Enabled bool   `toml:"enabled"`
		Dir     string `toml:"dir"`
	} `toml:"cache"`
}

// Default is the configuration used when no rolint.toml is found.
func Default(dir string) *Config {
	return &Config{
		Dir:   dir,
		Std:   defaultStd,
		Rules: map[string]RuleSetting{},
	}
}

// Load parses a rolint.toml file.
func Load(path string) (*Config, error) {
	var f fileConfig
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	cfg := Default(filepath.Dir(path))
	cfg.Path = path
	if meta.IsDefined("std") {
		cfg.Std = strings.TrimSpace(f.Std)
		if cfg.Std == "" {
			return nil, fmt.Errorf("%s: std must not be empty", path)
		}
	}
	for name, raw := range f.Rules {
		setting, err := parseRuleSetting(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: [rules].%s: %w", path, name, err)
		}
		cfg.Rules[name] = setting
	}
	cfg.Cache.Enabled = f.Cache.Enabled
	if dir := strings.TrimSpace(f.Cache.Dir); dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cfg.Dir, dir)
		}
		cfg.Cache.Dir = dir
	}
	return cfg, nil
}

func parseRuleSetting(raw any) (RuleSetting, error) {
	switch v := raw.(type) {
	case bool:
		return RuleSetting{Enabled: v}, nil
	case string:
		sev, err := lint.ParseSeverity(strings.TrimSpace(v))
		if err != nil {
			return RuleSetting{}, err
		}
		return RuleSetting{Enabled: sev != lint.SeverityAllow, Severity: sev, HasSeverity: true}, nil
	}
	return RuleSetting{}, fmt.Errorf("expected a boolean or a severity, got %T", raw)
}

// Discover finds and loads the configuration for a lint target, falling
// back to defaults anchored at the target's directory.
func Discover(target string) (*Config, error) {
	start := StartDir(target)
	path, ok, err := Find(start)
	if err != nil {
		return nil, err
	}
	if !ok {
		abs, err := filepath.Abs(start)
		if err != nil {
			abs = start
		}
		return Default(abs), nil
	}
	return Load(path)
}

// Validate checks rule names against reg and that std can be resolved.
func (c *Config) Validate(reg *lint.Registry) error {
	var unknown []string
	for name := range c.Rules {
		if !reg.Has(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%s: %w: %s", c.source(), ErrUnknownRule, strings.Join(unknown, ", "))
	}
	if c.Std == StdAuto {
		return nil
	}
	if _, err := stdlib.Resolve(c.Std, c.Dir); err != nil {
		return fmt.Errorf("%s: std: %w", c.source(), err)
	}
	return nil
}

// Toggles is the on/off view of [rules] for lint.Registry.Enabled.
func (c *Config) Toggles() map[string]bool {
	out := make(map[string]bool, len(c.Rules))
	for name, s := range c.Rules {
		out[name] = s.Enabled
	}
	return out
}

// BuildRules builds the enabled rules with configured severities applied.
func (c *Config) BuildRules(reg *lint.Registry) ([]lint.Rule, error) {
	rules, err := reg.Enabled(c.Toggles())
	if err != nil {
		return nil, err
	}
	for i, r := range rules {
		if s, ok := c.Rules[r.Name()]; ok && s.HasSeverity {
			rules[i] = lint.WithSeverity(r, s.Severity)
		}
	}
	return rules, nil
}

func (c *Config) source() string {
	if c.Path == "" {
		return "default config"
	}
	return c.Path
}
