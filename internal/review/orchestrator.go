package review

import (
	"time"

	"github.com/google/uuid"

	"crit/internal/crawl"
	"crit/internal/logging"
	"crit/internal/paths"
)

// Orchestrator is the top-level review entry point: it maps the requested
// depth to a crawl strategy, builds the dependency graph, derives the file
// set to inspect, dispatches each file to the analyzer, and aggregates the
// results into a report.
type Orchestrator struct {
	crawler  *crawl.Crawler
	analyzer Analyzer
	logger   *logging.Logger
	maxFiles int
}

// NewOrchestrator creates an orchestrator. maxFiles <= 0 uses the crawl
// default cap.
func NewOrchestrator(crawler *crawl.Crawler, analyzer Analyzer, maxFiles int, logger *logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Format: logging.HumanFormat, Level: logging.WarnLevel})
	}
	return &Orchestrator{
		crawler:  crawler,
		analyzer: analyzer,
		logger:   logger,
		maxFiles: maxFiles,
	}
}

// ReviewPR reviews a set of changed files at the given depth.
//
// No failure below this boundary aborts the review: files deleted since
// being listed are dropped silently, and an analyzer error for one file is
// treated as zero issues with the file still counted as analyzed, so one bad
// file cannot blank out an entire report.
func (o *Orchestrator) ReviewPR(changedFiles []string, depth AnalysisDepth) *CodeReviewReport {
	start := time.Now()

	// Defined fast path: nothing changed, nothing to crawl.
	if len(changedFiles) == 0 {
		return &CodeReviewReport{
			ID:                   uuid.NewString(),
			Depth:                depth,
			IssuesBySeverity:     map[Severity]int{},
			Issues:               []ReviewIssue{},
			ExecutionTimeSeconds: time.Since(start).Seconds(),
		}
	}

	strategy := depth.Strategy().WithMaxFiles(o.maxFiles)
	graph := o.crawler.BuildDependencyGraph(changedFiles, strategy)

	targets := o.selectFiles(graph, depth)

	var issues []ReviewIssue
	bySeverity := map[Severity]int{}
	filesAnalyzed := 0

	for _, path := range targets {
		// Files deleted since being listed as changed are not analyzable.
		if !paths.FileExists(o.crawler.WorkspaceRoot(), path) {
			continue
		}

		fileIssues, err := o.analyzer.AnalyzeFile(path)
		filesAnalyzed++
		if err != nil {
			o.logger.Warn("Analyzer failed for file, counting zero issues", map[string]interface{}{
				"file":  path,
				"error": err.Error(),
			})
			continue
		}

		for _, issue := range fileIssues {
			issues = append(issues, issue)
			bySeverity[issue.Severity]++
		}
	}

	if issues == nil {
		issues = []ReviewIssue{}
	}

	report := &CodeReviewReport{
		ID:                   uuid.NewString(),
		Depth:                depth,
		FilesAnalyzed:        filesAnalyzed,
		TotalIssues:          len(issues),
		IssuesBySeverity:     bySeverity,
		Issues:               issues,
		EstimatedTokens:      graph.EstimateTokens(),
		ExecutionTimeSeconds: time.Since(start).Seconds(),
	}

	o.logger.Info("Review completed", map[string]interface{}{
		"depth":       depth,
		"files":       filesAnalyzed,
		"issues":      report.TotalIssues,
		"tokens":      report.EstimatedTokens,
		"durationSec": report.ExecutionTimeSeconds,
	})

	return report
}

// selectFiles re-derives the analyzed set strictly by depth from the graph's
// categories. This is deliberately not "everything in the graph": a standard
// review must never pull in test files even when the crawler populated them.
func (o *Orchestrator) selectFiles(graph *crawl.DependencyGraph, depth AnalysisDepth) []string {
	var targets []string
	targets = append(targets, graph.ChangedFiles...)

	if depth == DepthStandard || depth == DepthDeep {
		targets = append(targets, graph.DirectImports...)
	}
	if depth == DepthDeep {
		targets = append(targets, graph.TestFiles...)
		targets = append(targets, graph.IndirectDeps...)
	}
	return targets
}
