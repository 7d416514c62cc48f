package crawl

import (
	"os"
	"path/filepath"
)

// unreadableFileChars is charged for a file that cannot be read when
// estimating tokens, instead of failing the estimate.
const unreadableFileChars = 500

// charsPerToken approximates one language-model token as four characters.
const charsPerToken = 4

// DependencyGraph is the bounded, deduplicated result of a crawl.
//
// The four categories are ordered and mutually exclusive: a path appears in
// at most one of them, first writer wins, with ChangedFiles taking precedence
// over DirectImports, which takes precedence over TestFiles and IndirectDeps.
type DependencyGraph struct {
	ChangedFiles  []string `json:"changedFiles"`
	DirectImports []string `json:"directImports"`
	TestFiles     []string `json:"testFiles"`
	IndirectDeps  []string `json:"indirectDeps"`

	// HasCircularDependencies is set once the crawl observes a back-edge
	// and is never cleared.
	HasCircularDependencies bool `json:"hasCircularDependencies"`

	workspaceRoot string
	seen          map[string]struct{}
}

// NewDependencyGraph creates an empty graph. File reads during token
// estimation resolve relative paths against workspaceRoot.
func NewDependencyGraph(workspaceRoot string) *DependencyGraph {
	return &DependencyGraph{
		workspaceRoot: workspaceRoot,
		seen:          make(map[string]struct{}),
	}
}

// Contains reports whether the path is already in any category.
func (g *DependencyGraph) Contains(path string) bool {
	_, ok := g.seen[path]
	return ok
}

// TotalFiles returns the size of the union across all four categories.
func (g *DependencyGraph) TotalFiles() int {
	return len(g.seen)
}

// MarkCircular records that a circular dependency was observed.
func (g *DependencyGraph) MarkCircular() {
	g.HasCircularDependencies = true
}

// AllFiles returns every collected path in category order:
// changed, direct, test, indirect.
func (g *DependencyGraph) AllFiles() []string {
	all := make([]string, 0, g.TotalFiles())
	all = append(all, g.ChangedFiles...)
	all = append(all, g.DirectImports...)
	all = append(all, g.TestFiles...)
	all = append(all, g.IndirectDeps...)
	return all
}

// EstimateTokens approximates the language-model token cost of every file in
// the graph: total byte count divided by four. A missing or unreadable file
// costs a fixed 500-character estimate rather than erroring.
func (g *DependencyGraph) EstimateTokens() int {
	totalChars := 0
	for _, path := range g.AllFiles() {
		data, err := os.ReadFile(g.abs(path))
		if err != nil {
			totalChars += unreadableFileChars
			continue
		}
		totalChars += len(data)
	}
	return totalChars / charsPerToken
}

func (g *DependencyGraph) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(g.workspaceRoot, path)
}

// addChanged records a changed file. Returns false if the path was already
// present in any category.
func (g *DependencyGraph) addChanged(path string) bool {
	return g.add(path, &g.ChangedFiles)
}

func (g *DependencyGraph) addDirect(path string) bool {
	return g.add(path, &g.DirectImports)
}

func (g *DependencyGraph) addTest(path string) bool {
	return g.add(path, &g.TestFiles)
}

func (g *DependencyGraph) addIndirect(path string) bool {
	return g.add(path, &g.IndirectDeps)
}

func (g *DependencyGraph) add(path string, category *[]string) bool {
	if g.Contains(path) {
		return false
	}
	g.seen[path] = struct{}{}
	*category = append(*category, path)
	return true
}
