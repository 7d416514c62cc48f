package crawl

import (
	"context"
	"os"
	"regexp"

	"crit/internal/lang"
	"crit/internal/parse"
)

// Best-effort, line-anchored import statement patterns per language.
var (
	pythonImportRe     = regexp.MustCompile(`(?m)^\s*import\s+([A-Za-z_][\w.]*)`)
	pythonFromImportRe = regexp.MustCompile(`(?m)^\s*from\s+([A-Za-z_][\w.]*)\s+import\b`)
	csharpUsingRe      = regexp.MustCompile(`(?m)^using\s+([A-Za-z_][\w.]*)\s*;`)
	jsImportRe         = regexp.MustCompile(`import\s+(?:[\w{}*,\s]+\s+from\s+)?['"]([^'"]+)['"]`)
	jsRequireRe        = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)
)

// Extractor returns the raw import identifiers declared in one source file.
// Identifiers are dotted module names or path-like strings, not yet resolved
// to files on disk.
type Extractor struct {
	parser *parse.Parser
}

// NewExtractor creates an import extractor.
func NewExtractor() *Extractor {
	return &Extractor{parser: parse.NewParser()}
}

// ExtractImports reads the file and extracts its imports by language.
// An unreadable or missing file, or an unsupported extension, yields an
// empty result; neither is an error condition.
func (e *Extractor) ExtractImports(path string) []string {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	switch lang.FromPath(path) {
	case lang.Python:
		return e.pythonImports(source)
	case lang.CSharp:
		return matchAll(source, csharpUsingRe)
	case lang.JavaScript:
		imports := matchAll(source, jsImportRe)
		return append(imports, matchAll(source, jsRequireRe)...)
	default:
		return nil
	}
}

// pythonImports tries a tree-sitter parse first and falls back to regex
// matching when the source does not parse cleanly. The fallback is an
// expected branch, not a recovered failure.
func (e *Extractor) pythonImports(source []byte) []string {
	if imports, ok := e.parser.PythonImports(context.Background(), source); ok {
		return imports
	}
	imports := matchAll(source, pythonImportRe)
	return append(imports, matchAll(source, pythonFromImportRe)...)
}

func matchAll(source []byte, re *regexp.Regexp) []string {
	var out []string
	for _, m := range re.FindAllSubmatch(source, -1) {
		out = append(out, string(m[1]))
	}
	return out
}
