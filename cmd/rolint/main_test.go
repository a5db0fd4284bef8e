package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"rolint/internal/diagfmt"
	"rolint/internal/stdlib"
)

const misuse = `local e = Roact.createElement("Frame", {
	Size = UDim2.new(1, 0, 1, 0),
	Text = "nope",
	[Roact.Event.Activated] = onClick,
})
`

// resetFlags returns every flag of cmd and its parents to the default;
// cobra keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for c := cmd; c != nil; c = c.Parent() {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	sub, _, err := rootCmd.Find(args)
	if err != nil {
		t.Fatalf("find %v: %v", args, err)
	}
	resetFlags(sub)
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckShortReportsAndFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ui.lua", misuse)
	out, _, err := execute(t, "", "check", "--format", "short", "--ui", "off", "--color", "off", path)
	if code, ok := exitCodeOf(err); !ok || code != 1 {
		t.Fatalf("err = %v, want exit status 1", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "error LNT4001 ") || !strings.Contains(lines[0], "`Activated` is not a valid event for `Frame`") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "`Text` is not a property of `Frame`") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestCheckStdinJSON(t *testing.T) {
	out, _, err := execute(t, misuse, "check", "--format", "json", "--stdin-filename", "App.lua", "-")
	if _, ok := exitCodeOf(err); !ok {
		t.Fatalf("err = %v, want exit status", err)
	}
	var payload diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if payload.Count != 2 {
		t.Fatalf("count = %d", payload.Count)
	}
	for _, d := range payload.Diagnostics {
		if d.Rule != "roblox_incorrect_roact_usage" || d.Location.File != "App.lua" {
			t.Errorf("diagnostic = %+v", d)
		}
	}
}

func TestCheckNoWarningsKeepsErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ui.lua", misuse)
	_, _, err := execute(t, "", "check", "--format", "short", "--no-warnings", "--ui", "off", path)
	if code, ok := exitCodeOf(err); !ok || code != 1 {
		t.Fatalf("err = %v, want exit status 1", err)
	}
}

func TestCheckLua51StdIsQuiet(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ui.lua", misuse)
	out, _, err := execute(t, "", "check", "--format", "short", "--std", "lua51", path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a/clean.lua", `local e = Roact.createElement("Frame", { Size = UDim2.new() })`+"\n")
	writeFile(t, dir, "b/bad.luau", misuse)
	writeFile(t, dir, "notes.txt", misuse)

	out, errOut, err := execute(t, "", "check", "--format", "pretty", "--ui", "off", "--color", "off", dir)
	if code, ok := exitCodeOf(err); !ok || code != 1 {
		t.Fatalf("err = %v, want exit status 1", err)
	}
	if strings.Contains(out, "clean.lua") || strings.Contains(out, "notes.txt") {
		t.Errorf("output mentions files without findings:\n%s", out)
	}
	if !strings.Contains(out, "bad.luau:4:") {
		t.Errorf("missing event finding:\n%s", out)
	}
	if !strings.Contains(errOut, "2 errors, 0 warnings in 2 files") {
		t.Errorf("summary = %q", errOut)
	}
	if got := lintProgress.status(); got != "2/2 files" {
		t.Errorf("progress status = %q", got)
	}
}

func TestCheckTraceToNDJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.lua", misuse)
	writeFile(t, dir, "b.lua", misuse)
	traceOut := filepath.Join(t.TempDir(), "run.ndjson")

	_, _, err := execute(t, "", "check", "--format", "short", "--ui", "off",
		"--trace", traceOut, "--trace-level", "detail", "--trace-file", "b.lua", dir)
	if code, ok := exitCodeOf(err); !ok || code != 1 {
		t.Fatalf("err = %v, want exit status 1", err)
	}
	data, err := os.ReadFile(traceOut)
	if err != nil {
		t.Fatal(err)
	}
	files := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var ev struct {
			Name string `json:"name"`
			File string `json:"file"`
		}
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("bad trace line %q: %v", line, err)
		}
		if ev.File != "" {
			files[filepath.Base(ev.File)] = true
		}
	}
	if !files["b.lua"] || files["a.lua"] {
		t.Errorf("traced files = %v, want only b.lua", files)
	}
}

func TestCheckConfigDisablesRule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rolint.toml", "[rules]\nroblox_incorrect_roact_usage = false\n")
	path := writeFile(t, dir, "ui.lua", misuse)
	out, _, err := execute(t, "", "check", "--format", "short", path)
	if err != nil || out != "" {
		t.Fatalf("err = %v, out = %q", err, out)
	}
}

func TestCheckCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	path := writeFile(t, dir, "ui.lua", misuse)

	first, _, _ := execute(t, "", "check", "--format", "short", "--cache", "--cache-dir", cacheDir, path)
	second, _, _ := execute(t, "", "check", "--format", "short", "--cache", "--cache-dir", cacheDir, path)
	if first == "" || first != second {
		t.Fatalf("cached output differs:\n%s\n---\n%s", first, second)
	}
	if _, err := os.Stat(filepath.Join(cacheDir, "lint")); err != nil {
		t.Errorf("cache not written: %v", err)
	}
}

func TestCheckRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ui.lua", "")
	_, _, err := execute(t, "", "check", "--format", "xml", path)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v", err)
	}
}

func TestRulesJSON(t *testing.T) {
	out, _, err := execute(t, "", "rules", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var rows []ruleOutput
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "roblox_incorrect_roact_usage" || !rows[0].Enabled || rows[0].Severity != "error" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestStdShowClass(t *testing.T) {
	out, _, err := execute(t, "", "std", "show", "--std", "roblox", "--format", "json", "Frame")
	if err != nil {
		t.Fatal(err)
	}
	var view classOutput
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := []string{"Frame", "GuiObject", "GuiBase2d", "GuiBase", "Instance"}
	if !slices.Equal(view.Chain, want) {
		t.Errorf("chain = %v", view.Chain)
	}
	if !slices.Contains(view.Properties, "Style") || !slices.Contains(view.Properties, "Name") {
		t.Errorf("properties miss own or inherited members: %v", view.Properties)
	}
	if !slices.Contains(view.Events, "AncestryChanged") {
		t.Errorf("events = %v", view.Events)
	}
}

func TestDescribeUnknownClass(t *testing.T) {
	lib, err := stdlib.Builtin("roblox")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := describeClass(lib, "NotAClass"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "", "version", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"tool": "rolint"`) {
		t.Errorf("output = %s", out)
	}
}

func TestModeParsing(t *testing.T) {
	if m, err := readUIMode(" ON "); err != nil || m != uiModeOn {
		t.Errorf("ui on = %v, %v", m, err)
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Error("bad ui mode accepted")
	}
	if m, err := readColorMode("never"); err != nil || m != colorOff {
		t.Errorf("color never = %v, %v", m, err)
	}
	if _, err := readColorMode("blue"); err == nil {
		t.Error("bad color mode accepted")
	}
	if shouldUseTUI(uiModeAuto, "json") {
		t.Error("tui enabled for json output")
	}
}

func TestPlural(t *testing.T) {
	if got := countLabel(1, 3); got != "1 error, 3 warnings" {
		t.Errorf("got %q", got)
	}
	if got := plural(0, "file"); got != "0 files" {
		t.Errorf("got %q", got)
	}
}

func TestTokenizeStdinStats(t *testing.T) {
	out, errOut, err := execute(t, "-- ui\nx += 1\n", "tokenize", "--format", "json", "--stats", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid([]byte(out)) {
		t.Errorf("tokens are not json:\n%s", out)
	}
	if !strings.Contains(errOut, "stdin.lua: 4 tokens, 1 comments, 2 lines, 1 dialect hints") {
		t.Errorf("stats = %q", errOut)
	}
}
