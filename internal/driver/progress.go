package driver

import "time"

// ProgressStatus reports where a file is in the pipeline.
type ProgressStatus int

const (
	// ProgressQueued is sent once per file before any work starts.
	ProgressQueued ProgressStatus = iota
	ProgressStarted
	ProgressDone
	ProgressFailed
)

func (s ProgressStatus) String() string {
	switch s {
	case ProgressQueued:
		return "queued"
	case ProgressStarted:
		return "started"
	case ProgressDone:
		return "done"
	case ProgressFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProgressEvent describes one file changing state during LintDir.
type ProgressEvent struct {
	Path    string
	Index   int
	Total   int
	Status  ProgressStatus
	Cached  bool
	Errors  int
	Elapsed time.Duration
}

// ProgressSink receives events from worker goroutines; it must be safe for concurrent use.
type ProgressSink func(ProgressEvent)

func (s ProgressSink) emit(ev ProgressEvent) {
	if s != nil {
		s(ev)
	}
}
