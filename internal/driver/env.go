package driver

import (
	"fmt"
	"slices"
	"strings"

	"rolint/internal/config"
	"rolint/internal/dialect"
	"rolint/internal/lint"
	"rolint/internal/lint/roblox"
	"rolint/internal/stdlib"
	"rolint/internal/version"
)

// DefaultRegistry holds every rule rolint ships.
func DefaultRegistry() *lint.Registry {
	reg := lint.NewRegistry()
	roblox.Register(reg)
	return reg
}

// autoClassifier needs at least one real signal before leaving the fallback.
var autoClassifier = dialect.Classifier{MinScore: 1}

// Env is the per-run lint setup shared by every file: enabled rules, the
// standard library and the cache key derived from both. Safe for concurrent use.
type Env struct {
	Config *config.Config
	Rules  []lint.Rule
	std    stdChoice
	key    Digest
}

type stdChoice struct {
	name   string
	auto   bool
	fixed  *stdlib.Library
	roblox *stdlib.Library
	lua    *stdlib.Library
}

// NewEnv validates cfg against reg and loads the standard library it names.
// A nil reg means DefaultRegistry.
func NewEnv(cfg *config.Config, reg *lint.Registry) (*Env, error) {
	if cfg == nil {
		return nil, fmt.Errorf("driver: nil config")
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	if err := cfg.Validate(reg); err != nil {
		return nil, err
	}
	rules, err := cfg.BuildRules(reg)
	if err != nil {
		return nil, err
	}
	std, err := loadStd(cfg)
	if err != nil {
		return nil, err
	}
	key, err := envDigest(std, rules)
	if err != nil {
		return nil, err
	}
	return &Env{Config: cfg, Rules: rules, std: std, key: key}, nil
}

func loadStd(cfg *config.Config) (stdChoice, error) {
	choice := stdChoice{name: cfg.Std}
	if cfg.Std != config.StdAuto {
		lib, err := stdlib.Resolve(cfg.Std, cfg.Dir)
		if err != nil {
			return stdChoice{}, err
		}
		choice.fixed = lib
		return choice, nil
	}
	choice.auto = true
	var err error
	if choice.roblox, err = stdlib.Builtin("roblox"); err != nil {
		return stdChoice{}, err
	}
	if choice.lua, err = stdlib.Builtin("lua51"); err != nil {
		return stdChoice{}, err
	}
	return choice, nil
}

// StdName is the std setting the environment was built from.
func (e *Env) StdName() string { return e.std.name }

// Key identifies everything besides file content that affects lint output.
func (e *Env) Key() Digest { return e.key }

// lintContext picks the library for one file. With a fixed std, the file is
// Roblox code exactly when the library defines classes; with auto, the
// dialect evidence decides and plain Lua is the fallback.
func (e *Env) lintContext(ev *dialect.Evidence) (*lint.Context, *stdlib.Library) {
	lib := e.std.fixed
	if e.std.auto {
		lib = e.std.lua
		if autoClassifier.Resolve(ev, dialect.Lua51) == dialect.Roblox {
			lib = e.std.roblox
		}
	}
	kind := dialect.Lua51
	if lib.Len() > 0 {
		kind = dialect.Roblox
	}
	return &lint.Context{Dialect: kind, Schema: lib}, lib
}

func envDigest(std stdChoice, rules []lint.Rule) (Digest, error) {
	var libs []Digest
	for _, lib := range []*stdlib.Library{std.fixed, std.roblox, std.lua} {
		if lib == nil {
			continue
		}
		d, err := lib.Digest()
		if err != nil {
			return Digest{}, err
		}
		libs = append(libs, d)
	}
	ruleParts := make([]string, 0, len(rules))
	for _, r := range rules {
		ruleParts = append(ruleParts, r.Name()+"="+r.Severity().String())
	}
	slices.Sort(ruleParts)
	head := digestStrings("rolint", version.Version, fmt.Sprintf("auto=%v", std.auto), strings.Join(ruleParts, ","))
	return combineDigest(head, libs...), nil
}
