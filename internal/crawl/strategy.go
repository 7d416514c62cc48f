package crawl

// DefaultMaxFiles caps the total number of files a single crawl collects.
// The cap keeps graph construction bounded on large codebases; hitting it is
// a normal termination condition, not a failure.
const DefaultMaxFiles = 50

// CrawlStrategy controls how far a crawl traverses from the changed files.
// A strategy at level N collects a strict superset, by category, of level N-1.
type CrawlStrategy struct {
	// Level is the traversal depth: 1, 2, or 3.
	Level int `json:"level"`

	// IncludesTestFiles adds test files for every collected source file.
	IncludesTestFiles bool `json:"includesTestFiles"`

	// IncludesIndirectDeps adds one more hop of imports from the
	// direct-import set.
	IncludesIndirectDeps bool `json:"includesIndirectDeps"`

	// MaxFiles caps the crawl; zero or negative falls back to DefaultMaxFiles.
	MaxFiles int `json:"maxFiles"`
}

// Level1 collects changed files and their direct imports only.
func Level1() CrawlStrategy {
	return CrawlStrategy{Level: 1, MaxFiles: DefaultMaxFiles}
}

// Level2 is Level1 plus test files for all Level1 files.
func Level2() CrawlStrategy {
	return CrawlStrategy{Level: 2, IncludesTestFiles: true, MaxFiles: DefaultMaxFiles}
}

// Level3 is Level2 plus one additional hop of imports from the
// direct-import set.
func Level3() CrawlStrategy {
	return CrawlStrategy{
		Level:                3,
		IncludesTestFiles:    true,
		IncludesIndirectDeps: true,
		MaxFiles:             DefaultMaxFiles,
	}
}

// WithMaxFiles returns a copy of the strategy with a different file cap.
func (s CrawlStrategy) WithMaxFiles(maxFiles int) CrawlStrategy {
	if maxFiles > 0 {
		s.MaxFiles = maxFiles
	}
	return s
}

func (s CrawlStrategy) maxFiles() int {
	if s.MaxFiles > 0 {
		return s.MaxFiles
	}
	return DefaultMaxFiles
}
