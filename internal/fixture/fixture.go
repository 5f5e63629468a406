// Package fixture materializes txtar archives as project trees for tests.
package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// Extract writes every file of the archive under dir.
func Extract(a *txtar.Archive, dir string) error {
	for _, f := range a.Files {
		target := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Load parses the txtar file at path and writes it into a fresh temporary
// directory, which is returned.
func Load(t testing.TB, path string) string {
	t.Helper()
	a, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	dir := t.TempDir()
	if err := Extract(a, dir); err != nil {
		t.Fatalf("extract %s: %v", path, err)
	}
	return dir
}

// Parse is Load for an inline archive.
func Parse(t testing.TB, archive string) string {
	t.Helper()
	dir := t.TempDir()
	if err := Extract(txtar.Parse([]byte(archive)), dir); err != nil {
		t.Fatalf("extract archive: %v", err)
	}
	return dir
}
