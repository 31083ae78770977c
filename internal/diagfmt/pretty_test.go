package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"surge/internal/diag"
	"surge/internal/source"
)

func TestPrettyPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.sg", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexError, source.Span{File: fileID, Start: 8, End: 28}, "unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.sg"},
		{"relative", PathModeRelative, "src/test.sg"},
		{"basename", PathModeBasename, "test.sg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode, Context: 1})
			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") {
				t.Error("expected ERROR in output")
			}
			if !strings.Contains(output, "LexError") {
				t.Error("expected LexError code in output")
			}
		})
	}
}

func TestPrettyUnderlinesSource(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("const x = bogus\n")
	fileID := fs.AddVirtual("test.sg", content)

	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevError, diag.ResolutionError, source.Span{File: fileID, Start: 10, End: 15}, "'bogus' was never declared"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	output := buf.String()

	if !strings.Contains(output, "const x = bogus") {
		t.Fatalf("expected source line in output, got:\n%s", output)
	}
	if !strings.Contains(output, "^~~~~") {
		t.Fatalf("expected a 5-wide underline, got:\n%s", output)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("const x = 1\nconst x = 2\n")
	fileID := fs.AddVirtual("test.sg", content)

	bag := diag.NewBag(4)
	d := diag.New(diag.SevError, diag.NameClashError, source.Span{File: fileID, Start: 18, End: 19}, "attempted to declare 'x'")
	d = d.WithNote(source.Span{File: fileID, Start: 6, End: 7}, "'x' is already declared here")
	d = d.WithFix("rename the duplicate", diag.FixEdit{Span: source.Span{File: fileID, Start: 18, End: 19}, NewText: "y"})
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true})
	output := buf.String()

	if !strings.Contains(output, "note: test.sg:1:7") {
		t.Fatalf("expected note with location, got:\n%s", output)
	}
	if !strings.Contains(output, "fix #1: rename the duplicate") {
		t.Fatalf("expected fix entry, got:\n%s", output)
	}
	if !strings.Contains(output, `apply="y"`) {
		t.Fatalf("expected fix edit preview, got:\n%s", output)
	}
}
