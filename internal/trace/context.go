package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
)

// SpanContext is what a child span inherits from its parent.
type SpanContext struct {
	SpanID uint64
	GID    uint64
	// File is the Lua file being linted, empty outside per-file work.
	File string
}

// WithTracer attaches t to ctx; nil installs Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// FromContext returns the tracer carried by ctx or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// CurrentSpan returns the span context carried by ctx, zero when there is none.
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	sc, _ := ctx.Value(spanKey{}).(SpanContext)
	return sc
}

func withSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(ctx, spanKey{}, sc)
}

// WithFile marks everything traced under ctx as belonging to path.
// Spans and points started from the returned context carry the path.
func WithFile(ctx context.Context, path string) context.Context {
	if ctx == nil || !FromContext(ctx).Enabled() {
		return ctx
	}
	sc := CurrentSpan(ctx)
	sc.File = path
	return withSpanContext(ctx, sc)
}
