package diagfmt

import (
	"io"

	"rolint/internal/diag"
	"rolint/internal/source"
)

// Short prints one line per diagnostic, `error LNT4001 path:line:col message`,
// keeping bag order.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	out := diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes)
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	if out[len(out)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
