package trace

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Tracer receives trace events. Implementations must be goroutine-safe.
type Tracer interface {
	Emit(ev *Event)
	// Flush writes out anything buffered.
	Flush() error
	// Close flushes and releases the output.
	Close() error
	Level() Level
	// Enabled reports Level() > LevelOff.
	Enabled() bool
}

// StorageMode selects where events go.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // сразу в вывод
	ModeRing                          // только кольцевой буфер
	ModeBoth
)

var modeNames = map[StorageMode]string{
	ModeStream: "stream",
	ModeRing:   "ring",
	ModeBoth:   "both",
}

func (m StorageMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMode parses a --trace-mode value.
func ParseMode(s string) (StorageMode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return ModeStream, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
}

const defaultRingSize = 4096

// Config describes a tracer built by New.
type Config struct {
	Level  Level
	Mode   StorageMode
	Format Format // FormatAuto picks NDJSON for .ndjson/.json outputs
	// Output wins over OutputPath. An empty OutputPath or "-" means stderr.
	Output     io.Writer
	OutputPath string
	RingSize   int
	// FileGlob keeps only file-attributed events whose path matches
	// (path.Match against the slash path or its base name). Events outside
	// any file always pass.
	FileGlob string
	// Heartbeat is informational here; the caller starts the heartbeat.
	Heartbeat time.Duration
}

// New builds the tracer described by cfg. LevelOff yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.FileGlob != "" {
		if _, err := path.Match(cfg.FileGlob, ""); err != nil {
			return nil, fmt.Errorf("invalid trace file glob %q: %w", cfg.FileGlob, err)
		}
	}

	var t Tracer
	switch cfg.Mode {
	case ModeRing:
		t = NewRingTracer(cfg.RingSize, cfg.Level)
	case ModeStream, ModeBoth:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		t = NewStreamTracer(w, cfg.Level, resolveFormat(cfg))
		if cfg.Mode == ModeBoth {
			t = NewMultiTracer(cfg.Level, t, NewRingTracer(cfg.RingSize, cfg.Level))
		}
	default:
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	}

	if cfg.FileGlob != "" {
		t = &fileFilter{Tracer: t, glob: cfg.FileGlob}
	}
	return t, nil
}

func resolveFormat(cfg Config) Format {
	if cfg.Format != FormatAuto {
		return cfg.Format
	}
	switch filepath.Ext(cfg.OutputPath) {
	case ".ndjson", ".json":
		return FormatNDJSON
	}
	return FormatText
}

func openOutput(cfg Config) (io.Writer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// fileFilter drops events attributed to files that do not match glob.
type fileFilter struct {
	Tracer
	glob string
}

func (f *fileFilter) Emit(ev *Event) {
	if ev.File != "" && !f.matches(ev.File) {
		return
	}
	f.Tracer.Emit(ev)
}

func (f *fileFilter) matches(p string) bool {
	slash := filepath.ToSlash(p)
	if ok, _ := path.Match(f.glob, slash); ok {
		return true
	}
	ok, _ := path.Match(f.glob, path.Base(slash))
	return ok
}

// RingOf returns the ring buffer behind t, looking through filters and fan-outs.
func RingOf(t Tracer) (*RingTracer, bool) {
	switch tr := t.(type) {
	case *RingTracer:
		return tr, true
	case *MultiTracer:
		return tr.Ring()
	case *fileFilter:
		return RingOf(tr.Tracer)
	}
	return nil, false
}
