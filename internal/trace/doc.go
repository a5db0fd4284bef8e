// Package trace provides the tracing subsystem rolint uses instead of a logger.
//
// Tracing shows where time goes in a lint run and which file a slow or stuck
// run is working on.
//
// # Usage
//
//	rolint check --trace=- --trace-level=detail src/
//	rolint check --trace=run.ndjson --trace-file='*Button*.lua' src/
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped on failure
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: ring buffer only, dumped when the run fails
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything, including per-rule spans
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "parse")
//	defer span.End("")
//
// # Files
//
// trace.WithFile(ctx, path) tags every span and point below ctx with the Lua
// file being linted. --trace-file limits output to matching files, and after a
// panic the ring reports which files were still open.
package trace
