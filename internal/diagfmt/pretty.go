package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lexa/internal/diag"
	"lexa/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> [<CODE>]: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	writeHeader(w, d.Severity, d.Code.ID(), d.Message, d.Primary, fs, opts)
	if !d.Primary.Empty() {
		writeContext(w, d.Primary, fs, opts)
	}
	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  note: %s\n", note.Msg)
			if !note.Span.Empty() {
				writeContext(w, note.Span, fs, opts)
			}
		}
	}
}

func writeHeader(w io.Writer, sev diag.Severity, code, msg string, primary source.Span, fs *source.FileSet, opts PrettyOpts) {
	// у I/O-диагностик нет осмысленного спана
	loc := "<input>"
	if fs != nil && !primary.Empty() {
		f := fs.Get(primary.File)
		start, _ := fs.Resolve(primary)
		loc = fmt.Sprintf("%s:%d:%d", displayPath(f.Path, opts.PathMode), start.Line, start.Col)
	}

	sevText := strings.ToUpper(sev.String())
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s: %s [%s]: %s\n", loc, sevText, code, msg)
}

// writeContext печатает исходную строку и подчёркивание ^~~~ под спаном.
func writeContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if fs == nil {
		return
	}
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)

	first := start.Line
	if opts.Context > 0 {
		ctx := uint32(opts.Context)
		if first > ctx {
			first -= ctx
		} else {
			first = 1
		}
	}
	for line := first; line < start.Line; line++ {
		fmt.Fprintf(w, "  %4d | %s\n", line, clipLine(f.GetLine(line), opts.Width))
	}

	lineText := f.GetLine(start.Line)
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, clipLine(lineText, opts.Width))

	// смещение каретки в экранных колонках, не в байтах
	col := int(start.Col) - 1
	if col > len(lineText) {
		col = len(lineText)
	}
	pad := runewidth.StringWidth(lineText[:col])

	markLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		markLen = int(end.Col - start.Col)
	}
	if rest := len(lineText) - col; markLen > rest && rest > 0 {
		markLen = rest
	}

	marker := "^"
	if markLen > 1 {
		marker += strings.Repeat("~", markLen-1)
	}
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "       | %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}

func clipLine(s string, width uint8) string {
	if width == 0 {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}
