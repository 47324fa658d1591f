package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	// Добавляем файл первый раз
	id1 := fs.Add("test.mc", []byte("int a ;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.mc")
	if !exists {
		t.Error("Expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("Expected latest ID to be %d, got %d", id1, latestID)
	}

	// Тот же путь с новым содержимым даёт новый FileID
	id2 := fs.Add("test.mc", []byte("int b ;"), 0)
	if id2 == id1 {
		t.Error("Expected different FileID for second Add")
	}

	latestID, _ = fs.GetLatest("test.mc")
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}
}

func TestAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("repl.mc", []byte("x"))
	file := fs.Get(id)

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
	if file.Path != "repl.mc" {
		t.Errorf("Expected path %q, got %q", "repl.mc", file.Path)
	}
}

func TestLoad_NormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.mc")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int a ;\r\na = 1 ;\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	file := fs.Get(id)

	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag")
	}
	if string(file.Content) != "int a ;\na = 1 ;\n" {
		t.Errorf("unexpected normalized content: %q", file.Content)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.mc")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolve_MultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mc", []byte("int a ;\na = 5 ;\n"))

	// "5" на второй строке: байты 12..13
	span := Span{File: id, Start: 12, End: 13}
	start, end := fs.Resolve(span)

	if start != (LineCol{Line: 2, Col: 5}) {
		t.Errorf("start = %+v, want 2:5", start)
	}
	if end != (LineCol{Line: 2, Col: 6}) {
		t.Errorf("end = %+v, want 2:6", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mc", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{0, ""},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 2, End: 5}
	b := Span{File: 0, Start: 4, End: 9}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %+v", got)
	}

	other := Span{File: 1, Start: 0, End: 100}
	if a.Cover(other) != a {
		t.Error("Cover across files must be a no-op")
	}
}
