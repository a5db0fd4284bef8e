package trace

import (
	"strconv"
	"sync"
	"time"
)

// StatusFunc describes run progress for heartbeat events, e.g. "12/40 files".
type StatusFunc func() string

// Heartbeat emits a driver-scope event every interval until stopped. A run
// whose heartbeats keep the same status is stuck on the last file begun.
type Heartbeat struct {
	tracer   Tracer
	interval time.Duration
	status   StatusFunc
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// StartHeartbeat returns nil when tracing is off or interval is not positive.
// status may be nil.
func StartHeartbeat(tracer Tracer, interval time.Duration, status StatusFunc) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{
		tracer:   tracer,
		interval: interval,
		status:   status,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go h.loop()
	return h
}

func (h *Heartbeat) loop() {
	defer close(h.done)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var beats uint64
	for {
		select {
		case now := <-ticker.C:
			beats++
			h.tracer.Emit(&Event{
				Time:   now,
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				GID:    goroutineID(),
				Name:   "heartbeat",
				Detail: h.detail(beats),
			})
		case <-h.stop:
			return
		}
	}
}

func (h *Heartbeat) detail(beats uint64) string {
	d := "#" + strconv.FormatUint(beats, 10)
	if h.status != nil {
		if s := h.status(); s != "" {
			d += " " + s
		}
	}
	return d
}

// Stop ends the loop and waits for it. Safe on nil and safe to call twice.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
