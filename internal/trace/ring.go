package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory so a failed run can show
// what led up to the failure.
type RingTracer struct {
	mu    sync.Mutex
	buf   []Event
	next  int // куда писать следующее событие
	count int // сколько слотов заполнено, не больше len(buf)
	level Level
}

// NewRingTracer allocates room for capacity events; non-positive means 4096.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{buf: make([]Event, capacity), level: level}
}

// Emit stores a copy of ev, overwriting the oldest event when full.
func (t *RingTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	t.buf[t.next] = *ev
	t.buf[t.next].Seq = NextSeq()
	t.next = (t.next + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
	t.mu.Unlock()
}

// Snapshot returns every stored event, oldest first.
func (t *RingTracer) Snapshot() []Event {
	return t.Tail(0)
}

// Tail returns the last n events, oldest first; n <= 0 means all of them.
func (t *RingTracer) Tail(n int) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n <= 0 || n > t.count {
		n = t.count
	}
	out := make([]Event, n)
	start := t.next - n
	if start < 0 {
		start += len(t.buf)
	}
	for i := range out {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// OpenFiles lists files whose lint_file span began but has not ended yet,
// in the order they began. After a panic these are the files in flight.
func (t *RingTracer) OpenFiles() []string {
	var order []string
	open := make(map[uint64]string)
	for _, ev := range t.Snapshot() {
		if ev.Scope != ScopeFile || ev.File == "" {
			continue
		}
		switch ev.Kind {
		case KindSpanBegin:
			open[ev.SpanID] = ev.File
			order = append(order, ev.File)
		case KindSpanEnd:
			if path, ok := open[ev.SpanID]; ok {
				delete(open, ev.SpanID)
				order = removeFirst(order, path)
			}
		}
	}
	return order
}

func removeFirst(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Dump writes the last limit events (all when limit <= 0) to w.
func (t *RingTracer) Dump(w io.Writer, format Format, limit int) error {
	events := t.Tail(limit)
	if len(events) == 0 {
		return nil
	}
	origin := events[0].Time
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format, origin)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
