package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"surge/internal/diag"
	"surge/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	locColor     = color.New(color.FgWhite, color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
	noteColor    = color.New(color.FgBlue, color.Bold)
	fixColor     = color.New(color.FgGreen, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty renders bag's diagnostics as human-readable text: a
// file:line:col header per diagnostic followed by an underlined
// source excerpt, then notes and fixes when requested. Call
// bag.Sort() beforehand for a deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnosticHeader(w, d.Severity, d.Code, d.Primary, d.Message, fs, opts)
		printSourceExcerpt(w, d.Primary, fs, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				printNote(w, note, fs, opts)
			}
		}

		if opts.ShowFixes {
			for i, fix := range d.Fixes {
				printFix(w, i+1, fix, fs, opts)
			}
		}
	}
}

func printDiagnosticHeader(w io.Writer, sev diag.Severity, code diag.Code, span source.Span, msg string, fs *source.FileSet, opts PrettyOpts) {
	loc := formatLocation(span, fs, opts.PathMode)
	sevLabel := sev.String()
	if opts.Color {
		loc = locColor.Sprint(loc)
		sevLabel = severityColor(sev).Sprint(sevLabel)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sevLabel, code.String(), msg)
}

func printNote(w io.Writer, note diag.Note, fs *source.FileSet, opts PrettyOpts) {
	loc := formatLocation(note.Span, fs, opts.PathMode)
	label := "note"
	if opts.Color {
		loc = locColor.Sprint(loc)
		label = noteColor.Sprint(label)
	}
	fmt.Fprintf(w, "  %s: %s: %s\n", label, loc, note.Msg)
}

func printFix(w io.Writer, idx int, f diag.Fix, fs *source.FileSet, opts PrettyOpts) {
	label := fmt.Sprintf("fix #%d", idx)
	if opts.Color {
		label = fixColor.Sprint(label)
	}
	fmt.Fprintf(w, "  %s: %s\n", label, f.Title)
	for _, edit := range f.Edits {
		loc := formatLocation(edit.Span, fs, opts.PathMode)
		fmt.Fprintf(w, "    at %s apply=%q\n", loc, edit.NewText)
	}
}

func formatLocation(span source.Span, fs *source.FileSet, mode PathMode) string {
	f := fs.Get(span.File)
	path := f.FormatPath(mode.format(), fs.BaseDir())
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// printSourceExcerpt prints the line containing span's start, followed
// by a caret/tilde underline spanning span's extent on that line.
func printSourceExcerpt(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	underline := buildUnderline(line, start.Col, end.Line, end.Col)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

// buildUnderline renders a "^~~~" marker aligned to startCol, padding by
// each preceding rune's display width so the marker lines up under
// multi-byte text. The marker is endCol-startCol characters long (at
// least one); the line of the span's end is not compared with its start.
func buildUnderline(line string, startCol, endLine, endCol uint32) string {
	width := 1
	if endLine == 0 || endCol > startCol {
		width = int(endCol - startCol)
	}
	if width < 1 {
		width = 1
	}

	// startCol counts bytes, so step through the line by byte offset.
	var b strings.Builder
	for i, r := range line {
		if uint32(i)+1 >= startCol {
			break
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	b.WriteByte('^')
	for i := 1; i < width; i++ {
		b.WriteByte('~')
	}
	return b.String()
}
