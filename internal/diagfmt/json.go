package diagfmt

import (
	"encoding/json"
	"io"

	"rolint/internal/diag"
	"rolint/internal/source"
)

// LocationJSON - байтовый диапазон, line/col только с IncludePositions.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one finding. Rule is set for lint findings only.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Rule     string       `json:"rule,omitempty"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// FileSummaryJSON counts the emitted findings of one file.
type FileSummaryJSON struct {
	File     string `json:"file"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
}

// DiagnosticsOutput is the root object of `check --format json`.
// Files lists only files with at least one emitted finding, in first-seen order.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON  `json:"diagnostics"`
	Count       int               `json:"count"`
	Errors      int               `json:"errors"`
	Warnings    int               `json:"warnings"`
	Files       []FileSummaryJSON `json:"files,omitempty"`
	Dropped     int               `json:"dropped,omitempty"`
}

type jsonBuilder struct {
	fs     *source.FileSet
	opts   JSONOpts
	out    DiagnosticsOutput
	byFile map[string]int // индекс в out.Files
}

func (b *jsonBuilder) location(span source.Span) LocationJSON {
	loc := LocationJSON{
		File:      formatPath(b.fs.Get(span.File), b.fs, b.opts.PathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if b.opts.IncludePositions {
		start, end := b.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (b *jsonBuilder) add(d *diag.Diagnostic) {
	entry := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Rule:     d.Code.LintName(),
		Message:  d.Message,
		Location: b.location(d.Primary),
	}
	if b.opts.IncludeNotes {
		for _, note := range d.Notes {
			entry.Notes = append(entry.Notes, NoteJSON{Message: note.Msg, Location: b.location(note.Span)})
		}
	}
	b.out.Diagnostics = append(b.out.Diagnostics, entry)
	b.count(entry.Location.File, d.Severity)
}

func (b *jsonBuilder) count(file string, sev diag.Severity) {
	idx, ok := b.byFile[file]
	if !ok {
		idx = len(b.out.Files)
		b.byFile[file] = idx
		b.out.Files = append(b.out.Files, FileSummaryJSON{File: file})
	}
	fc := &b.out.Files[idx]
	switch {
	case sev >= diag.SevError:
		fc.Errors++
		b.out.Errors++
	case sev == diag.SevWarning:
		fc.Warnings++
		b.out.Warnings++
	}
}

// BuildDiagnosticsOutput builds the JSON document without encoding it.
// opts.Max trims the output only; the trimmed tail is counted in Dropped.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	shown := items
	if opts.Max > 0 && opts.Max < len(items) {
		shown = items[:opts.Max]
	}
	b := &jsonBuilder{
		fs:     fs,
		opts:   opts,
		out:    DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(shown))},
		byFile: make(map[string]int),
	}
	for i := range shown {
		b.add(&shown[i])
	}
	b.out.Count = len(b.out.Diagnostics)
	b.out.Dropped = bag.Dropped() + len(items) - len(shown)
	return b.out
}

// JSON writes the indented document to w.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
