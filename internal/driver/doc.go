// Package driver runs the lint pipeline: load, tokenize and parse with
// syntax diagnostics, resolve the lint context, run rules, filter.
package driver
