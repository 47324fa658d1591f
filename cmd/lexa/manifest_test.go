package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "lexa.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write lexa.toml: %v", err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[output]
format = "json"

[analyze]
max_diagnostics = 25
cache = true
`)

	m, ok, err := loadManifest(dir)
	if err != nil {
		t.Fatalf("loadManifest failed: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Config.Output.Format != "json" {
		t.Errorf("format = %q", m.Config.Output.Format)
	}
	if m.Config.Analyze.MaxDiagnostics != 25 {
		t.Errorf("max_diagnostics = %d", m.Config.Analyze.MaxDiagnostics)
	}
	if !m.Config.Analyze.Cache {
		t.Error("cache = false")
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadManifest_FoundInParent(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[output]\nformat = \"pretty\"\n")

	nested := filepath.Join(dir, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	m, ok, err := loadManifest(nested)
	if err != nil {
		t.Fatalf("loadManifest failed: %v", err)
	}
	if !ok {
		t.Fatal("manifest in parent not found")
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadManifest_BadFormat(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[output]\nformat = \"xml\"\n")

	if _, _, err := loadManifest(dir); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestLoadManifest_Missing(t *testing.T) {
	_, _, err := loadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("loadManifest failed: %v", err)
	}
}
