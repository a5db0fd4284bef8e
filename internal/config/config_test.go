package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rolint/internal/lint"
	"rolint/internal/lint/roblox"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func registry() *lint.Registry {
	reg := lint.NewRegistry()
	roblox.Register(reg)
	return reg
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `std = "lua51"`)
	deep := filepath.Join(root, "src", "ui", "components")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := Find(deep)
	if err != nil || !ok {
		t.Fatalf("Find = %q, %v, %v", path, ok, err)
	}
	want, _ := filepath.Abs(filepath.Join(root, FileName))
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "init.lua")
	writeFile(t, file, "return nil")
	cfg, err := Discover(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" || cfg.Std != "roblox" || cfg.Cache.Enabled || len(cfg.Rules) != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(registry()); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, `std = "auto"

[rules]
roblox_incorrect_roact_usage = "warning"

[cache]
enabled = true
dir = ".cache"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Std != StdAuto || !cfg.Cache.Enabled || cfg.Cache.Dir != filepath.Join(dir, ".cache") {
		t.Errorf("cfg = %+v", cfg)
	}
	s := cfg.Rules[roblox.IncorrectRoactUsageName]
	if !s.Enabled || !s.HasSeverity || s.Severity != lint.SeverityWarning {
		t.Errorf("rule setting = %+v", s)
	}

	rules, err := cfg.BuildRules(registry())
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 || rules[0].Severity() != lint.SeverityWarning {
		t.Errorf("rules = %v", rules)
	}
}

func TestDisabledRule(t *testing.T) {
	for _, value := range []string{"false", `"allow"`} {
		t.Run(value, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, "[rules]\nroblox_incorrect_roact_usage = "+value+"\n")
			cfg, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			rules, err := cfg.BuildRules(registry())
			if err != nil {
				t.Fatal(err)
			}
			if len(rules) != 0 {
				t.Errorf("rule still enabled")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":        "std = ",
		"unknown key":   "colour = 1",
		"empty std":     `std = ""`,
		"bad level":     "[rules]\nx = \"loud\"",
		"bad rule type": "[rules]\nx = 3",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, body)
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	reg := registry()

	cfg := Default(dir)
	cfg.Rules["no_such_rule"] = RuleSetting{Enabled: true}
	if err := cfg.Validate(reg); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("unknown rule err = %v", err)
	}

	cfg = Default(dir)
	cfg.Std = "roblox2"
	if err := cfg.Validate(reg); !errors.Is(err, ErrUnknownStd) {
		t.Errorf("unknown std err = %v", err)
	}

	writeFile(t, filepath.Join(dir, "game.toml"), `base = "roblox"`)
	cfg.Std = "game.toml"
	if err := cfg.Validate(reg); err != nil {
		t.Errorf("file std: %v", err)
	}
}
