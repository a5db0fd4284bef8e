// Package diag defines the diagnostic model shared by the lexer, parser,
// lint rules and driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string ID (LEX1xxx, SYN2xxx, LNT4xxx, IO5xxx), a message, a primary
// source.Span and optional notes.
//
// Producers emit through a Reporter so they stay decoupled from storage.
// BagReporter collects into a Bag, which supports capping, sorting,
// deduplication, filtering and transformation. Rendering lives in
// internal/diagfmt; this package only offers the single-line golden form
// used by tests and `--format short`.
//
// Lint rules are addressed by name in configuration; LintCode maps a rule
// name to its code, so every rule owns exactly one code.
package diag
