package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // в кольцо, печатается только при падении
	LevelPhase        // driver и pass
	LevelDetail       // плюс по событию на файл
	LevelDebug        // плюс спаны правил
)

var levels = [...]struct {
	name string
	// deepest scope emitted at this level, 0 emits nothing
	max Scope
}{
	LevelOff:    {"off", 0},
	LevelError:  {"error", ScopeFile},
	LevelPhase:  {"phase", ScopePass},
	LevelDetail: {"detail", ScopeFile},
	LevelDebug:  {"debug", ScopeRule},
}

func (l Level) String() string {
	if int(l) < len(levels) {
		return levels[l].name
	}
	return "unknown"
}

// ParseLevel parses a --trace-level value, case-insensitively.
func ParseLevel(s string) (Level, error) {
	for l, info := range levels {
		if strings.EqualFold(s, info.name) {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
}

// ShouldEmit reports whether events of scope are recorded at level l.
// LevelError keeps file events too, so a failure dump shows which file broke.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levels) {
		return false
	}
	return scope != 0 && scope <= levels[l].max
}
