package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"rolint/internal/diag"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLintDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b/ui.luau":       misuse,
		"a.lua":           `Roact.createElement("TextButton", { Text = "ok" })`,
		"notes.txt":       misuse,
		".git/hooks.lua":  misuse,
		"c/Broken.LUA":    "if x then",
		"c/deep/more.lua": `Roact.createElement("Nope")`,
	})

	var mu sync.Mutex
	counts := map[ProgressStatus]int{}
	sink := func(ev ProgressEvent) {
		mu.Lock()
		counts[ev.Status]++
		mu.Unlock()
	}

	res, err := LintDir(context.Background(), root, Options{Env: newEnv(t, nil), EnableTimings: true}, 2, sink)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.lua", "b/ui.luau", "c/Broken.LUA", "c/deep/more.lua"}
	if len(res.Files) != len(want) {
		t.Fatalf("files = %d, want %d", len(res.Files), len(want))
	}
	for i, w := range want {
		rel, _ := filepath.Rel(root, res.Files[i].File.Path)
		if filepath.ToSlash(rel) != w {
			t.Errorf("file %d = %s, want %s", i, rel, w)
		}
	}
	lens := []int{0, 2, -1, 1}
	for i, n := range lens {
		got := res.Files[i].Bag.Len()
		if n < 0 {
			if !hasCodeIn(res.Files[i].Bag, diag.SynExpectEnd) {
				t.Errorf("%s: no syntax error", want[i])
			}
			continue
		}
		if got != n {
			t.Errorf("%s: %d diagnostics, want %d", want[i], got, n)
		}
	}
	if res.Diagnostics() < 4 || !res.HasErrors() {
		t.Errorf("total = %d, errors = %v", res.Diagnostics(), res.HasErrors())
	}
	if counts[ProgressQueued] != 4 || counts[ProgressStarted] != 4 || counts[ProgressDone] != 4 {
		t.Errorf("progress counts = %v", counts)
	}
	if res.Timing == nil || len(res.Timing.Phases) == 0 {
		t.Errorf("merged timing missing")
	}
}

func TestLintDirEmpty(t *testing.T) {
	res, err := LintDir(context.Background(), t.TempDir(), Options{Env: newEnv(t, nil)}, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 0 || res.HasErrors() {
		t.Errorf("empty dir: %+v", res)
	}
}

func TestLintDirUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can read everything")
	}
	root := writeTree(t, map[string]string{"x.lua": "print(1)"})
	if err := os.Chmod(filepath.Join(root, "x.lua"), 0o000); err != nil {
		t.Fatal(err)
	}
	res, err := LintDir(context.Background(), root, Options{Env: newEnv(t, nil)}, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	items := res.Files[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Errorf("diagnostics = %+v", items)
	}
}

func TestLintDirCancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"a.lua": misuse, "b.lua": misuse})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LintDir(ctx, root, Options{Env: newEnv(t, nil)}, 1, nil); err == nil {
		t.Errorf("expected cancellation error")
	}
}

func TestIsLuaFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.lua": true, "b.luau": true, "C.LUA": true, "d.txt": false, "lua": false,
	} {
		if IsLuaFile(path) != want {
			t.Errorf("IsLuaFile(%q) != %v", path, want)
		}
	}
}

func hasCodeIn(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
