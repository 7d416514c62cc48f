// Package crawl builds bounded, deduplicated dependency graphs from a set of
// changed source files. It replaces scan-everything review scoping with a
// capped traversal over direct imports, associated tests, and one further
// hop of indirect dependencies.
package crawl

import (
	"path/filepath"

	"crit/internal/logging"
	"crit/internal/paths"
)

// Crawler orchestrates import extraction, import resolution, and test file
// location to populate a DependencyGraph according to a CrawlStrategy.
//
// Each crawl is synchronous and operates on its own graph; the crawler
// itself holds only immutable state (workspace root, ignore rules) and is
// safe to reuse across calls.
type Crawler struct {
	workspaceRoot string
	extractor     *Extractor
	resolver      *Resolver
	testLocator   *TestLocator
	ignore        *IgnoreRules
	logger        *logging.Logger
}

// NewCrawler creates a crawler rooted at the workspace. Ignore rules are
// loaded once, here, from .gitignore plus the always-on defaults and any
// extra patterns.
func NewCrawler(workspaceRoot string, extraIgnores []string, logger *logging.Logger) *Crawler {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Format: logging.HumanFormat, Level: logging.WarnLevel})
	}
	return &Crawler{
		workspaceRoot: workspaceRoot,
		extractor:     NewExtractor(),
		resolver:      NewResolver(workspaceRoot),
		testLocator:   NewTestLocator(workspaceRoot),
		ignore:        LoadIgnoreRules(workspaceRoot, extraIgnores),
		logger:        logger,
	}
}

// WorkspaceRoot returns the root all relative paths resolve against.
func (c *Crawler) WorkspaceRoot() string {
	return c.workspaceRoot
}

// BuildDependencyGraph populates a graph from the changed files.
//
// Categories fill in a fixed order: changed files, direct imports, test
// files, indirect dependencies. The cap is checked after every single-file
// addition; once TotalFiles reaches the strategy's cap, no further files are
// added, but everything added before the check stays.
//
// A changed file that no longer exists on disk is still recorded: callers
// may legitimately reference files deleted by the change under review.
func (c *Crawler) BuildDependencyGraph(changedFiles []string, strategy CrawlStrategy) *DependencyGraph {
	graph := NewDependencyGraph(c.workspaceRoot)
	maxFiles := strategy.maxFiles()

	for _, path := range changedFiles {
		canonical := c.canonical(path)
		if c.ignore.Ignored(canonical) {
			continue
		}
		graph.addChanged(canonical)
		if graph.TotalFiles() >= maxFiles {
			break
		}
	}

	if graph.TotalFiles() < maxFiles {
		c.collectDirectImports(graph, maxFiles)
	}

	if strategy.IncludesTestFiles && graph.TotalFiles() < maxFiles {
		c.collectTestFiles(graph, maxFiles)
	}

	if strategy.IncludesIndirectDeps && graph.TotalFiles() < maxFiles {
		c.collectIndirectDeps(graph, maxFiles)
	}

	c.logger.Debug("Dependency graph built", map[string]interface{}{
		"changed":  len(graph.ChangedFiles),
		"direct":   len(graph.DirectImports),
		"tests":    len(graph.TestFiles),
		"indirect": len(graph.IndirectDeps),
		"circular": graph.HasCircularDependencies,
	})

	return graph
}

// collectDirectImports resolves every changed file's imports and detects
// circularity along the way. A back-edge exists when a resolved path was
// already visited in this pass and is itself a changed file, or when the
// resolved file's own imports lead back to the originating changed file.
func (c *Crawler) collectDirectImports(graph *DependencyGraph, maxFiles int) {
	changed := make(map[string]struct{}, len(graph.ChangedFiles))
	for _, path := range graph.ChangedFiles {
		changed[path] = struct{}{}
	}

	visited := make(map[string]struct{})

	for _, origin := range graph.ChangedFiles {
		visited[origin] = struct{}{}

		for _, identifier := range c.extractor.ExtractImports(c.abs(origin)) {
			resolved, ok := c.resolver.Resolve(identifier)
			if !ok {
				// External or library import; expected, skip.
				continue
			}
			if c.ignore.Ignored(resolved) {
				continue
			}

			if _, seen := visited[resolved]; seen {
				if _, isChanged := changed[resolved]; isChanged {
					graph.MarkCircular()
				}
			}
			visited[resolved] = struct{}{}

			if c.importsLeadBackTo(resolved, origin) {
				graph.MarkCircular()
			}

			graph.addDirect(resolved)
			if graph.TotalFiles() >= maxFiles {
				return
			}
		}
	}
}

// importsLeadBackTo reports whether candidate's own imports resolve back to
// the originating file.
func (c *Crawler) importsLeadBackTo(candidate, origin string) bool {
	for _, identifier := range c.extractor.ExtractImports(c.abs(candidate)) {
		resolved, ok := c.resolver.Resolve(identifier)
		if ok && resolved == origin {
			return true
		}
	}
	return false
}

func (c *Crawler) collectTestFiles(graph *DependencyGraph, maxFiles int) {
	sources := make([]string, 0, len(graph.ChangedFiles)+len(graph.DirectImports))
	sources = append(sources, graph.ChangedFiles...)
	sources = append(sources, graph.DirectImports...)

	for _, source := range sources {
		for _, testFile := range c.testLocator.FindTestFiles(source) {
			if c.ignore.Ignored(testFile) {
				continue
			}
			graph.addTest(testFile)
			if graph.TotalFiles() >= maxFiles {
				return
			}
		}
	}
}

// collectIndirectDeps walks one hop further from the direct-import set. The
// set is snapshotted first so growth during the step cannot cause
// re-visitation.
func (c *Crawler) collectIndirectDeps(graph *DependencyGraph, maxFiles int) {
	snapshot := make([]string, len(graph.DirectImports))
	copy(snapshot, graph.DirectImports)

	for _, source := range snapshot {
		for _, identifier := range c.extractor.ExtractImports(c.abs(source)) {
			resolved, ok := c.resolver.Resolve(identifier)
			if !ok {
				continue
			}
			if c.ignore.Ignored(resolved) {
				continue
			}
			graph.addIndirect(resolved)
			if graph.TotalFiles() >= maxFiles {
				return
			}
		}
	}
}

func (c *Crawler) canonical(path string) string {
	canonical, err := paths.Canonicalize(path, c.workspaceRoot)
	if err != nil {
		return paths.Normalize(path)
	}
	return canonical
}

func (c *Crawler) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.workspaceRoot, path)
}
