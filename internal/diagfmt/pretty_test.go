package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"rolint/internal/diag"
	"rolint/internal/source"
)

func TestPrettyLayout(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	want := "ui.lua:2:2: ERROR LNT4001: `Text` is not a property of `Frame`\n" +
		" 2 | \tText = \"x\",\n" +
		"   | \t^~~~\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1})
	out := buf.String()
	for _, want := range []string{" 1 | local e = Roact", " 3 | })"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPrettyColor(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	Pretty(&colored, bag, fs, PrettyOpts{PathMode: PathModeBasename, Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output has escapes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escapes")
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	content := "x = \"日本\" .. y\n"
	id := fs.AddVirtual("w.lua", []byte(content))
	start := uint32(strings.Index(content, "y"))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevWarning, diag.LintIncorrectRoactUsage, source.Span{File: id, Start: start, End: start + 1}, "w"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	// `x = "日本" .. ` занимает 14 колонок на экране
	if lines[2] != "   | "+strings.Repeat(" ", 14)+"^" {
		t.Errorf("underline = %q", lines[2])
	}
}

func TestPrettyNotes(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	d := bag.Items()[0]
	note := source.Span{File: d.Primary.File, Start: 0, End: 5}
	withNote := diag.NewBag(0)
	withNote.Add(d.WithNote(note, "declared here"))

	var buf bytes.Buffer
	Pretty(&buf, withNote, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	if !strings.Contains(buf.String(), "note: ui.lua:1:1: declared here") {
		t.Errorf("note missing:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, withNote, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed without ShowNotes")
	}
}

func TestPrettyEmptyFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("gone.lua", nil)
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: id}, "failed to load file: denied"))
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if buf.String() != "gone.lua:1:1: ERROR IO5001: failed to load file: denied\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPathModes(t *testing.T) {
	fs, bag := uiBag(t, "/home/user/project/src/ui.lua")
	fs.SetBaseDir("/home/user/project")

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/ui.lua:2:2"},
		{PathModeRelative, "src/ui.lua:2:2"},
		{PathModeBasename, "ui.lua:2:2"},
		{PathModeAuto, "/home/user/project/src/ui.lua:2:2"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("mode %d: got %q", tt.mode, strings.SplitN(buf.String(), "\n", 2)[0])
		}
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{"": PathModeAuto, "abs": PathModeAbsolute, "relative": PathModeRelative, "base": PathModeBasename} {
		if got, ok := ParsePathMode(in); !ok || got != want {
			t.Errorf("ParsePathMode(%q) = %d, %v", in, got, ok)
		}
	}
	if _, ok := ParsePathMode("nope"); ok {
		t.Errorf("unknown mode accepted")
	}
}

func TestShort(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	var buf bytes.Buffer
	if err := Short(&buf, bag, fs, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "error LNT4001 ui.lua:2:2 `Text` is not a property of `Frame`\n" {
		t.Errorf("got %q", buf.String())
	}
	buf.Reset()
	if err := Short(&buf, diag.NewBag(0), fs, false); err != nil || buf.Len() != 0 {
		t.Errorf("empty bag wrote %q", buf.String())
	}
}
