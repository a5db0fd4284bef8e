package ui

import (
	"strings"
	"testing"

	"rolint/internal/driver"
)

func feed(m *progressModel, events ...driver.ProgressEvent) {
	for _, ev := range events {
		m.Update(eventMsg(ev))
	}
}

func TestProgressModelTracksFiles(t *testing.T) {
	m := NewProgressModel("linting src", make(chan driver.ProgressEvent)).(*progressModel)
	feed(m,
		driver.ProgressEvent{Path: "a.lua", Status: driver.ProgressQueued},
		driver.ProgressEvent{Path: "b.lua", Status: driver.ProgressQueued},
		driver.ProgressEvent{Path: "a.lua", Status: driver.ProgressStarted},
		driver.ProgressEvent{Path: "a.lua", Status: driver.ProgressDone, Errors: 2},
		driver.ProgressEvent{Path: "b.lua", Status: driver.ProgressDone, Cached: true},
	)
	if len(m.items) != 2 {
		t.Fatalf("items = %d", len(m.items))
	}
	finished, errors := m.counts()
	if finished != 2 || errors != 1 {
		t.Errorf("finished = %d, errors = %d", finished, errors)
	}
	view := m.View()
	for _, want := range []string{"linting src (2/2 files, 1 with errors)", "2 errors", "cached", "b.lua"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
}

func TestProgressModelDone(t *testing.T) {
	m := NewProgressModel("x", make(chan driver.ProgressEvent)).(*progressModel)
	if m.View() != "" {
		t.Errorf("empty model should render nothing")
	}
	feed(m, driver.ProgressEvent{Path: "a.lua", Status: driver.ProgressFailed})
	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Errorf("done message must quit")
	}
	if !strings.Contains(m.View(), "done: x (1/1 files, 1 with errors)") {
		t.Errorf("view = %q", m.View())
	}
}

func TestVisibleRowsCapped(t *testing.T) {
	m := NewProgressModel("x", make(chan driver.ProgressEvent)).(*progressModel)
	for i := range maxRows + 5 {
		path := strings.Repeat("f", i+1) + ".lua"
		feed(m, driver.ProgressEvent{Path: path, Status: driver.ProgressStarted})
	}
	if got := len(m.visible()); got != maxRows {
		t.Errorf("visible = %d, want %d", got, maxRows)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefghij", 6); got != "abc..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Errorf("short value changed: %q", got)
	}
}
