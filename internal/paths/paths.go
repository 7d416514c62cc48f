// Package paths provides canonical path handling for the crawler.
// All graph bookkeeping uses workspace-relative forward-slash paths so the
// same file never appears under two spellings.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Canonicalize converts a path to a workspace-relative canonical path:
// symlinks resolved, relative to the workspace root, forward slashes.
// Paths that do not exist are canonicalized as-is (changed files may have
// been deleted by the change under review).
func Canonicalize(path string, workspaceRoot string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			resolved = path
		} else {
			return "", err
		}
	}

	rootResolved, err := filepath.EvalSymlinks(workspaceRoot)
	if err != nil {
		if os.IsNotExist(err) {
			rootResolved = workspaceRoot
		} else {
			return "", err
		}
	}

	if !filepath.IsAbs(resolved) {
		return Normalize(filepath.Clean(resolved)), nil
	}

	rel, err := filepath.Rel(rootResolved, resolved)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// IsWithinWorkspace reports whether a path is inside the workspace root.
func IsWithinWorkspace(path string, workspaceRoot string) bool {
	canonical, err := Canonicalize(path, workspaceRoot)
	if err != nil {
		return false
	}
	return !strings.HasPrefix(canonical, "..")
}

// Normalize converts backslashes to forward slashes. Useful for paths that
// are already relative but need a platform-independent form.
func Normalize(path string) string {
	return filepath.ToSlash(path)
}

// Stem returns the file name without its extension ("pkg/auth.py" -> "auth").
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// FileExists reports whether a workspace-relative or absolute path names an
// existing regular file.
func FileExists(workspaceRoot, path string) bool {
	p := path
	if !filepath.IsAbs(p) {
		p = filepath.Join(workspaceRoot, p)
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
