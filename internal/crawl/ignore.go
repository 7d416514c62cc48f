package crawl

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"crit/internal/paths"
)

// alwaysIgnored applies regardless of what .gitignore says.
var alwaysIgnored = []string{"*.pyc", "__pycache__/", ".env", "*.log"}

// IgnoreRules is the immutable set of ignore patterns loaded at crawler
// construction.
//
// Matching is intentionally coarse, not full gitignore glob semantics: a
// pattern with a leading "*" matches any path with that suffix; any other
// pattern matches any path containing it as a substring (after stripping a
// trailing "*"). Arbitrary "*" positions and "**" are not handled. Known
// approximation, kept because downstream behavior depends on it.
type IgnoreRules struct {
	patterns []string
}

// LoadIgnoreRules reads <workspaceRoot>/.gitignore line by line, skipping
// blanks and comments, and appends the always-on defaults plus any extra
// patterns from configuration. A missing .gitignore is not an error.
func LoadIgnoreRules(workspaceRoot string, extra []string) *IgnoreRules {
	var patterns []string

	f, err := os.Open(filepath.Join(workspaceRoot, ".gitignore"))
	if err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, line)
		}
		_ = f.Close()
	}

	patterns = append(patterns, alwaysIgnored...)
	patterns = append(patterns, extra...)

	return &IgnoreRules{patterns: patterns}
}

// Ignored reports whether the path matches any ignore pattern.
func (r *IgnoreRules) Ignored(path string) bool {
	p := paths.Normalize(path)
	for _, pattern := range r.patterns {
		if matchesPattern(p, pattern) {
			return true
		}
	}
	return false
}

func matchesPattern(path, pattern string) bool {
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(path, suffix)
	}
	return strings.Contains(path, strings.TrimSuffix(pattern, "*"))
}
