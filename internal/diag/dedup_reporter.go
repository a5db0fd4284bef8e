package diag

import "rolint/internal/source"

// dedupKey: код и место начала. Сообщение не входит в ключ - после
// восстановления парсер часто повторяет ту же ошибку с другим "got ...".
type dedupKey struct {
	code  Code
	file  source.FileID
	start uint32
}

// DedupReporter forwards the first diagnostic reported for each code at a
// given start offset and drops the rest. Severity only escalates: a later
// error at the same key is forwarded even if a warning came first.
type DedupReporter struct {
	next       Reporter
	seen       map[dedupKey]Severity
	suppressed int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]Severity)}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil {
		return
	}
	key := dedupKey{code: code, file: primary.File, start: primary.Start}
	if prev, ok := r.seen[key]; ok && sev <= prev {
		r.suppressed++
		return
	}
	r.seen[key] = sev
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}

// Suppressed counts dropped repeats.
func (r *DedupReporter) Suppressed() int {
	if r == nil {
		return 0
	}
	return r.suppressed
}
