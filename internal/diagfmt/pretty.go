package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rolint/internal/diag"
	"rolint/internal/source"
)

type palette struct {
	err, warn, info, note *color.Color
	path, gutter, caret   *color.Color
	bold                  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.path, p.gutter, p.caret, p.bold} {
		// глобальный color.NoColor не должен влиять на явный выбор
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид, в порядке bag.Items().
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := formatPath(f, fs, opts.PathMode)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", path, start.Line, start.Col),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.bold.Sprint(d.Code.ID()),
		d.Message,
	)
	writeSnippet(w, f, fs, d.Primary, int(opts.Context), p)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
			p.note.Sprint("note:"),
			formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
		if n.Span != d.Primary {
			writeSnippet(w, nf, fs, n.Span, 0, p)
		}
	}
}

// writeSnippet печатает строку span с номером и подчёркиванием.
// Многострочный span подчёркивается до конца первой строки.
func writeSnippet(w io.Writer, f *source.File, fs *source.FileSet, span source.Span, context int, p palette) {
	if len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(span)
	line := int(start.Line)
	first := max(1, line-context)
	last := line + context
	gutterWidth := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		text, ok := lineText(f, n)
		if !ok {
			break
		}
		fmt.Fprintf(w, " %s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, n), text)
		if n != line {
			continue
		}
		col := int(start.Col) - 1
		stop := len(text)
		if end.Line == start.Line {
			stop = min(int(end.Col)-1, len(text))
		}
		col = min(col, len(text))
		fmt.Fprintf(w, " %s %s%s\n",
			p.gutter.Sprintf("%*s |", gutterWidth, ""),
			underlinePad(text[:col]),
			p.caret.Sprint(underline(text[col:max(col, stop)])),
		)
	}
}

func lineText(f *source.File, n int) (string, bool) {
	if n < 1 || n > len(f.LineIdx)+1 {
		return "", false
	}
	return f.GetLine(uint32(n)), true // #nosec G115 -- n ограничен числом строк файла
}

// underlinePad повторяет табы исходной строки, остальное заменяет пробелами по ширине рун.
func underlinePad(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func underline(text string) string {
	width := runewidth.StringWidth(text)
	if width <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", width-1)
}
