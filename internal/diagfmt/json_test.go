package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"rolint/internal/diag"
	"rolint/internal/source"
)

func TestJSONOutput(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LNT4001" || d.Rule != "roblox_incorrect_roact_usage" {
		t.Errorf("header = %+v", d)
	}
	loc := d.Location
	if loc.File != "ui.lua" || loc.StartLine != 2 || loc.StartCol != 2 || loc.EndCol != 6 || loc.EndByte-loc.StartByte != 4 {
		t.Errorf("location = %+v", loc)
	}
}

func TestJSONWithoutPositionsAndMax(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	d := bag.Items()[0]
	bag.Add(d.WithNote(source.Span{File: d.Primary.File, Start: 0, End: 5}, "here"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 || out.Dropped != 1 {
		t.Errorf("count = %d, dropped = %d", out.Count, out.Dropped)
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Errorf("positions included without IncludePositions")
	}

	out = BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeNotes: true})
	if len(out.Diagnostics[1].Notes) != 1 || out.Diagnostics[1].Notes[0].Message != "here" {
		t.Errorf("notes = %+v", out.Diagnostics[1].Notes)
	}
	out = BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if len(out.Diagnostics[1].Notes) != 0 {
		t.Errorf("notes included without IncludeNotes")
	}
}

func TestJSONNonLintHasNoRule(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.lua", []byte("if x then"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectEnd, source.Span{File: id, Start: 9, End: 9}, "expected 'end'"))
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if out.Diagnostics[0].Rule != "" {
		t.Errorf("rule = %q", out.Diagnostics[0].Rule)
	}
}

func TestJSONFileSummary(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	other := fs.AddVirtual("list.lua", []byte("x"))
	bag.Add(diag.New(diag.SevWarning, diag.LintIncorrectRoactUsage, source.Span{File: other, Start: 0, End: 1}, "w"))
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: other, Start: 0, End: 1}, "e"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{PathMode: PathModeBasename})
	if out.Errors != 2 || out.Warnings != 1 {
		t.Errorf("errors = %d, warnings = %d", out.Errors, out.Warnings)
	}
	want := []FileSummaryJSON{
		{File: "ui.lua", Errors: 1},
		{File: "list.lua", Errors: 1, Warnings: 1},
	}
	if len(out.Files) != len(want) {
		t.Fatalf("files = %+v", out.Files)
	}
	for i := range want {
		if out.Files[i] != want[i] {
			t.Errorf("files[%d] = %+v, want %+v", i, out.Files[i], want[i])
		}
	}
}
