package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("parse")
	b := tm.Begin("lint")
	tm.End(b, "findings=2")
	tm.End(a, "")
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "parse" || r.Phases[1].Note != "findings=2" {
		t.Fatalf("report = %+v", r)
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Errorf("total %.3f below a phase %.3f", r.TotalMS, r.Phases[0].DurationMS)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Error("nil timer produced phases")
	}
}

func TestReportMergeAndSummary(t *testing.T) {
	var total Report
	total.Merge(Report{TotalMS: 3, Phases: []PhaseReport{{Name: "parse", DurationMS: 1}, {Name: "lint", DurationMS: 2, Note: "a.lua"}}})
	total.Merge(Report{TotalMS: 4, Phases: []PhaseReport{{Name: "lint", DurationMS: 3}, {Name: "cache", DurationMS: 1}}})

	want := []PhaseReport{{Name: "parse", DurationMS: 1}, {Name: "lint", DurationMS: 5}, {Name: "cache", DurationMS: 1}}
	if len(total.Phases) != len(want) {
		t.Fatalf("phases = %+v", total.Phases)
	}
	for i, p := range want {
		if total.Phases[i] != p {
			t.Errorf("phase %d = %+v, want %+v", i, total.Phases[i], p)
		}
	}
	if total.TotalMS != 7 {
		t.Errorf("total = %v", total.TotalMS)
	}
	s := total.Summary("")
	if !strings.HasPrefix(s, "timings:\n") || !strings.Contains(s, "lint") || !strings.Contains(s, "total") {
		t.Errorf("summary:\n%s", s)
	}
}
