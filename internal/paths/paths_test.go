package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"pkg/auth.py", "auth"},
		{"auth.py", "auth"},
		{"a/b/c.test.js", "c.test"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := Stem(tt.path); got != tt.expected {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "src", "auth.py")
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, []byte("import os\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Canonicalize(file, root)
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	if got != "src/auth.py" {
		t.Errorf("Canonicalize = %q, want %q", got, "src/auth.py")
	}
}

func TestCanonicalizeMissingFile(t *testing.T) {
	root := t.TempDir()

	// Deleted changed files still canonicalize.
	got, err := Canonicalize(filepath.Join(root, "gone.py"), root)
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}
	if got != "gone.py" {
		t.Errorf("Canonicalize = %q, want %q", got, "gone.py")
	}
}

func TestFileExists(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.py"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(root, "a.py") {
		t.Error("expected relative path to exist")
	}
	if FileExists(root, "missing.py") {
		t.Error("expected missing path to not exist")
	}
	if FileExists(root, ".") {
		t.Error("directories are not files")
	}
}
