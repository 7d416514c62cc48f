// Package review scopes and runs a code review over a dependency graph.
package review

import (
	"fmt"

	"crit/internal/crawl"
)

// Severity grades a review issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ReviewIssue is one finding from the analyzer. Issues are immutable once
// produced; this package only aggregates and counts them.
type ReviewIssue struct {
	Severity   Severity `json:"severity"`
	Category   string   `json:"category"`
	FilePath   string   `json:"filePath"`
	Line       int      `json:"line,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Analyzer is the external collaborator that inspects one file. It must
// never fail for a missing or unreadable file; it returns zero issues
// instead. The detection technique is opaque to this package.
type Analyzer interface {
	AnalyzeFile(filePath string) ([]ReviewIssue, error)
}

// AnalysisDepth selects how far the review reaches from the changed files.
type AnalysisDepth string

const (
	// DepthQuick reviews only the changed files themselves.
	DepthQuick AnalysisDepth = "quick"
	// DepthStandard adds the changed files' direct imports.
	DepthStandard AnalysisDepth = "standard"
	// DepthDeep adds test files and indirect dependencies.
	DepthDeep AnalysisDepth = "deep"
)

// ParseDepth parses a depth name from a flag or config value.
func ParseDepth(s string) (AnalysisDepth, error) {
	switch AnalysisDepth(s) {
	case DepthQuick, DepthStandard, DepthDeep:
		return AnalysisDepth(s), nil
	default:
		return "", fmt.Errorf("unknown analysis depth %q (want quick, standard, or deep)", s)
	}
}

// Strategy returns the crawl strategy for a depth. The mapping is fixed and
// total: quick -> Level1, standard -> Level2, deep -> Level3.
func (d AnalysisDepth) Strategy() crawl.CrawlStrategy {
	switch d {
	case DepthQuick:
		return crawl.Level1()
	case DepthDeep:
		return crawl.Level3()
	default:
		return crawl.Level2()
	}
}

// CodeReviewReport is the aggregated result of one ReviewPR call, immutable
// after construction and serializable to JSON.
type CodeReviewReport struct {
	ID                   string           `json:"id"`
	Depth                AnalysisDepth    `json:"depth"`
	FilesAnalyzed        int              `json:"filesAnalyzed"`
	TotalIssues          int              `json:"totalIssues"`
	IssuesBySeverity     map[Severity]int `json:"issuesBySeverity"`
	Issues               []ReviewIssue    `json:"issues"`
	EstimatedTokens      int              `json:"estimatedTokens"`
	ExecutionTimeSeconds float64          `json:"executionTimeSeconds"`
}
