// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified
// directory, creating parents as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// NewModule scaffolds an empty gr-<name> module layout in a temp directory
// and returns its root. Files are added per test with Touch.
func NewModule(t *testing.T, name string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "gr-"+name)

	for _, dir := range []string{
		"grc",
		"lib",
		filepath.Join("include", "gnuradio", name),
		filepath.Join("python", name),
		filepath.Join("python", name, "bindings"),
	} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	WriteFile(t, root, "CMakeLists.txt", "project(gr-"+name+")\n")
	return root
}

// Touch creates empty files by path relative to root.
func Touch(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		WriteFile(t, root, p, "")
	}
}
