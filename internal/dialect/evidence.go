package dialect

import "rolint/internal/source"

// Hint is one observation pointing at a dialect. Hints feed the Classifier
// and never become diagnostics.
type Hint struct {
	Dialect Kind
	Score   int
	Reason  string
	Span    source.Span
}

// Evidence collects the hints of one file. Scores are summed as hints arrive,
// so classification does not rescan them.
type Evidence struct {
	hints  []Hint
	scores [kindCount]int
}

func NewEvidence() *Evidence {
	return &Evidence{hints: make([]Hint, 0, 16)}
}

// Add records h. Hints for Unknown or with a non-positive score are kept for
// display but do not count.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
	if h.Score > 0 && h.Dialect > Unknown && h.Dialect < kindCount {
		e.scores[h.Dialect] += h.Score
	}
}

// Score is the summed weight of hints for k.
func (e *Evidence) Score(k Kind) int {
	if e == nil || k <= Unknown || k >= kindCount {
		return 0
	}
	return e.scores[k]
}

func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

func (e *Evidence) Len() int {
	if e == nil {
		return 0
	}
	return len(e.hints)
}
