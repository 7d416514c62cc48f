package crawl

import (
	"io/fs"
	"path/filepath"
	"strings"

	"crit/internal/paths"
)

// TestLocator finds test files associated with a source file by naming
// convention. It searches a fixed set of roots: the workspace's tests/ and
// test/ directories plus the source file's own directory.
type TestLocator struct {
	workspaceRoot string
}

// NewTestLocator creates a test locator rooted at the workspace.
func NewTestLocator(workspaceRoot string) *TestLocator {
	return &TestLocator{workspaceRoot: workspaceRoot}
}

// FindTestFiles returns every file under the candidate roots whose name
// matches one of the conventions for the source file's stem:
// test_<stem>.*, <stem>_test.*, <stem>.test.*, <stem>.spec.*.
// Zero matches is a normal result. Result order is not significant.
func (l *TestLocator) FindTestFiles(sourcePath string) []string {
	stem := paths.Stem(sourcePath)
	if stem == "" {
		return nil
	}

	roots := []string{
		filepath.Join(l.workspaceRoot, "tests"),
		filepath.Join(l.workspaceRoot, "test"),
		filepath.Dir(l.abs(sourcePath)),
	}

	var matches []string
	seen := make(map[string]struct{})
	for _, root := range roots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil // unreadable entries are skipped, not fatal
			}
			if !matchesTestConvention(d.Name(), stem) {
				return nil
			}
			rel, cerr := paths.Canonicalize(path, l.workspaceRoot)
			if cerr != nil {
				return nil
			}
			if _, dup := seen[rel]; dup {
				return nil
			}
			seen[rel] = struct{}{}
			matches = append(matches, rel)
			return nil
		})
	}
	return matches
}

func (l *TestLocator) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.workspaceRoot, path)
}

func matchesTestConvention(name, stem string) bool {
	prefixes := []string{
		"test_" + stem + ".",
		stem + "_test.",
		stem + ".test.",
		stem + ".spec.",
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
