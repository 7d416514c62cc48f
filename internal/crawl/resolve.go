package crawl

import (
	"os"
	"path/filepath"
	"strings"

	"crit/internal/paths"
)

// probeExtensions is the order in which candidate source files are tried.
var probeExtensions = []string{".py", ".cs", ".js", ".ts"}

// Resolver maps raw import identifiers to files inside the workspace.
type Resolver struct {
	workspaceRoot string
}

// NewResolver creates a resolver rooted at the workspace.
func NewResolver(workspaceRoot string) *Resolver {
	return &Resolver{workspaceRoot: workspaceRoot}
}

// Resolve maps an import identifier to a workspace-relative file path.
//
// The identifier's segments are joined into a relative path, then candidate
// files are probed in extension order; if none exists and the joined path is
// a package directory, its __init__.py wins. The second return value is
// false when nothing resolves, which is expected and common: external and
// standard-library imports have no file in the workspace.
func (r *Resolver) Resolve(identifier string) (string, bool) {
	rel := identifierToPath(identifier)
	if rel == "" {
		return "", false
	}

	// Path-like identifiers may already name a file (require("./a/b.js")).
	if r.isFile(rel) {
		return paths.Normalize(rel), true
	}

	for _, ext := range probeExtensions {
		candidate := rel + ext
		if r.isFile(candidate) {
			return paths.Normalize(candidate), true
		}
	}

	marker := filepath.Join(rel, "__init__.py")
	if r.isFile(marker) {
		return paths.Normalize(marker), true
	}

	return "", false
}

func (r *Resolver) isFile(rel string) bool {
	info, err := os.Stat(filepath.Join(r.workspaceRoot, rel))
	return err == nil && !info.IsDir()
}

// identifierToPath converts "pkg.sub.mod" or "./pkg/mod" into a clean
// relative path. Identifiers that escape the workspace resolve to nothing.
func identifierToPath(identifier string) string {
	var joined string
	if strings.Contains(identifier, "/") {
		joined = strings.TrimPrefix(identifier, "./")
	} else {
		joined = strings.ReplaceAll(identifier, ".", "/")
	}

	cleaned := filepath.Clean(filepath.FromSlash(joined))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return ""
	}
	return cleaned
}
