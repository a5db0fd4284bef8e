package dialect

// Classification is the result of scoring evidence for a file.
type Classification struct {
	Kind            Kind
	Score           int
	TotalScore      int
	Confidence      float64
	RunnerUp        Kind
	RunnerUpScore   int
	ObservedSignals int
}

// Classifier scores evidence and chooses a dominant dialect.
// Callers apply their own thresholds and fallbacks.
type Classifier struct {
	// MinScore below which the result stays Unknown.
	MinScore int
}

func (c Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Unknown}
	}

	total := 0
	for k := Lua51; k < kindCount; k++ {
		total += e.Score(k)
	}
	observed := len(e.hints)

	bestKind := Unknown
	bestScore := 0
	runnerKind := Unknown
	runnerScore := 0
	for k := Lua51; k < kindCount; k++ {
		score := e.Score(k)
		if score > bestScore {
			runnerKind, runnerScore = bestKind, bestScore
			bestKind, bestScore = k, score
			continue
		}
		if score > runnerScore {
			runnerKind, runnerScore = k, score
		}
	}
	if bestScore < c.MinScore {
		bestKind = Unknown
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}

	return Classification{
		Kind:            bestKind,
		Score:           bestScore,
		TotalScore:      total,
		Confidence:      conf,
		RunnerUp:        runnerKind,
		RunnerUpScore:   runnerScore,
		ObservedSignals: observed,
	}
}

// Resolve returns the classified kind, or fallback when nothing is dominant.
func (c Classifier) Resolve(e *Evidence, fallback Kind) Kind {
	if got := c.Classify(e); got.Kind != Unknown {
		return got.Kind
	}
	return fallback
}
