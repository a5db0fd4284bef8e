package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevelAndMode(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	if m, err := ParseMode("both"); err != nil || m != ModeBoth {
		t.Errorf("ParseMode(both) = %v, %v", m, err)
	}
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Errorf("ParseFormat(ndjson) = %v, %v", f, err)
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeRule, false},
		{LevelDebug, ScopeRule, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v", tt.level, tt.scope, got)
		}
	}
}

func TestStartSpanPropagatesParent(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	outer, ctx := StartSpan(ctx, ScopeDriver, "check")
	inner, _ := StartSpan(ctx, ScopePass, "parse")
	inner.WithExtra("tokens", "12").End("")
	outer.End("done")

	events := ring.Snapshot()
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[1].Name != "parse" || events[1].ParentID != outer.ID() {
		t.Errorf("inner parent = %d, want %d", events[1].ParentID, outer.ID())
	}
	if events[2].Kind != KindSpanEnd || events[2].Extra["tokens"] != "12" {
		t.Errorf("inner end = %+v", events[2])
	}
	if events[3].Detail != "done" {
		t.Errorf("outer detail = %q", events[3].Detail)
	}
}

func TestRingWrapsAround(t *testing.T) {
	ring := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		ring.Emit(&Event{Kind: KindPoint, Scope: ScopeDriver, Name: name})
	}
	events := ring.Snapshot()
	if len(events) != 2 || events[0].Name != "b" || events[1].Name != "c" {
		t.Errorf("snapshot = %+v", events)
	}
}

func TestStreamFormats(t *testing.T) {
	var text bytes.Buffer
	st := NewStreamTracer(&text, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), st)
	span, _ := StartSpan(ctx, ScopePass, "lint")
	span.End("3 findings")
	Point(ctx, ScopeFile, "skipped", "")
	out := text.String()
	if !strings.Contains(out, "→ lint") || !strings.Contains(out, "← lint (3 findings)") {
		t.Errorf("text output:\n%s", out)
	}
	if strings.Contains(out, "skipped") {
		t.Error("file scope emitted at phase level")
	}

	var nd bytes.Buffer
	nj := NewStreamTracer(&nd, LevelPhase, FormatNDJSON)
	Begin(nj, ScopeDriver, "check", SpanContext{}).End("")
	lines := strings.Split(strings.TrimSpace(nd.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("ndjson lines = %d", len(lines))
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev["kind"] != "end" || ev["name"] != "check" || ev["scope"] != "driver" {
		t.Errorf("ndjson event = %v", ev)
	}
}

func TestNopWhenDisabled(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	if FromContext(context.Background()) != Nop {
		t.Error("empty context must yield Nop")
	}
	span, ctx := StartSpan(context.Background(), ScopeDriver, "x")
	if span.ID() != 0 || CurrentSpan(ctx).SpanID != 0 {
		t.Error("disabled span must be inert")
	}
	if d := span.End(""); d != 0 {
		t.Errorf("disabled span duration = %v", d)
	}
}

func TestMultiTracerFindsRing(t *testing.T) {
	tr, err := New(Config{Level: LevelDetail, Mode: ModeBoth, Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	m, ok := tr.(*MultiTracer)
	if !ok {
		t.Fatalf("ModeBoth tracer is %T", tr)
	}
	Begin(m, ScopeFile, "lint_file", SpanContext{File: "a.lua"}).End("")
	ring, ok := m.Ring()
	if !ok || len(ring.Snapshot()) != 2 {
		t.Error("ring did not receive events")
	}
}

func TestWithFileAttributesChildren(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	file, fctx := StartSpan(WithFile(ctx, "src/App.lua"), ScopeFile, "lint_file")
	rule, _ := StartSpan(fctx, ScopeRule, "roblox_incorrect_roact_usage")
	Point(fctx, ScopePass, "dialect", "luau")
	rule.End("")
	file.End("")

	for _, ev := range ring.Snapshot() {
		if ev.File != "src/App.lua" {
			t.Errorf("%s %s: file = %q", ev.Kind, ev.Name, ev.File)
		}
	}
	if CurrentSpan(ctx).File != "" {
		t.Error("WithFile leaked into the parent context")
	}
}

func TestFileGlobFilter(t *testing.T) {
	var out bytes.Buffer
	tr, err := New(Config{Level: LevelDebug, Mode: ModeStream, Output: &out, FileGlob: "*.luau"})
	if err != nil {
		t.Fatal(err)
	}
	ctx := WithTracer(context.Background(), tr)
	Point(ctx, ScopeDriver, "start", "")
	Point(WithFile(ctx, "ui/Button.luau"), ScopeFile, "kept", "")
	Point(WithFile(ctx, "ui/Button.lua"), ScopeFile, "dropped", "")

	text := out.String()
	if !strings.Contains(text, "start") || !strings.Contains(text, "kept @ui/Button.luau") {
		t.Errorf("missing events:\n%s", text)
	}
	if strings.Contains(text, "dropped") {
		t.Errorf("filtered file traced:\n%s", text)
	}
	if _, err := New(Config{Level: LevelPhase, Mode: ModeRing, FileGlob: "["}); err == nil {
		t.Error("bad glob accepted")
	}
}

func TestRingTailAndOpenFiles(t *testing.T) {
	ring := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	done, _ := StartSpan(WithFile(ctx, "a.lua"), ScopeFile, "lint_file")
	done.End("")
	StartSpan(WithFile(ctx, "b.lua"), ScopeFile, "lint_file")

	if got := ring.OpenFiles(); len(got) != 1 || got[0] != "b.lua" {
		t.Errorf("open files = %v, want [b.lua]", got)
	}
	tail := ring.Tail(2)
	if len(tail) != 2 || tail[1].File != "b.lua" || tail[0].Kind != KindSpanEnd {
		t.Errorf("tail = %+v", tail)
	}

	var dump bytes.Buffer
	if err := ring.Dump(&dump, FormatText, 1); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(dump.String(), "\n"); n != 1 {
		t.Errorf("dump has %d lines, want 1", n)
	}
}

func TestHeartbeatReportsStatus(t *testing.T) {
	ring := NewRingTracer(64, LevelPhase)
	hb := StartHeartbeat(ring, time.Millisecond, func() string { return "3/7 files" })
	deadline := time.Now().Add(2 * time.Second)
	for len(ring.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	hb.Stop()
	hb.Stop()

	events := ring.Snapshot()
	if len(events) == 0 {
		t.Fatal("no heartbeat within 2s")
	}
	if events[0].Kind != KindHeartbeat || events[0].Detail != "#1 3/7 files" {
		t.Errorf("first heartbeat = %+v", events[0])
	}
	if StartHeartbeat(Nop, time.Second, nil) != nil {
		t.Error("heartbeat started for a disabled tracer")
	}
}
