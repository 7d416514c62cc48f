// Package testutil provides test helpers for building throwaway workspaces.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteWorkspace materializes a workspace under t.TempDir(). Keys are
// workspace-relative file paths (forward slashes), values are file contents.
// Parent directories are created as needed. Returns the workspace root.
func WriteWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", full, err)
		}
	}
	return root
}
