package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"crit/internal/crawl"
	"crit/internal/review"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *review.CodeReviewReport:
		return formatReportHuman(v), nil
	case *crawl.DependencyGraph:
		return formatGraphHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatReportHuman(r *review.CodeReviewReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Review %s (depth: %s)\n", r.ID, r.Depth)
	fmt.Fprintf(&b, "Files analyzed:   %d\n", r.FilesAnalyzed)
	fmt.Fprintf(&b, "Issues found:     %d\n", r.TotalIssues)
	fmt.Fprintf(&b, "Estimated tokens: %d\n", r.EstimatedTokens)
	fmt.Fprintf(&b, "Elapsed:          %.3fs\n", r.ExecutionTimeSeconds)

	if len(r.IssuesBySeverity) > 0 {
		b.WriteString("\nBy severity:\n")
		for _, sev := range []review.Severity{
			review.SeverityCritical, review.SeverityHigh,
			review.SeverityMedium, review.SeverityLow,
		} {
			if n, ok := r.IssuesBySeverity[sev]; ok {
				fmt.Fprintf(&b, "  %-8s %d\n", sev, n)
			}
		}
	}

	if len(r.Issues) > 0 {
		b.WriteString("\nIssues:\n")
		for _, issue := range r.Issues {
			loc := issue.FilePath
			if issue.Line > 0 {
				loc = fmt.Sprintf("%s:%d", issue.FilePath, issue.Line)
			}
			fmt.Fprintf(&b, "  [%s] %s: %s (%s)\n", issue.Severity, loc, issue.Message, issue.Category)
			if issue.Suggestion != "" {
				fmt.Fprintf(&b, "           suggestion: %s\n", issue.Suggestion)
			}
		}
	}

	return b.String()
}

func formatGraphHuman(g *crawl.DependencyGraph) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dependency graph (%d files)\n", g.TotalFiles())
	if g.HasCircularDependencies {
		b.WriteString("Circular dependencies detected\n")
	}

	writeCategory(&b, "Changed files", g.ChangedFiles)
	writeCategory(&b, "Direct imports", g.DirectImports)
	writeCategory(&b, "Test files", g.TestFiles)
	writeCategory(&b, "Indirect dependencies", g.IndirectDeps)

	return b.String()
}

func writeCategory(b *strings.Builder, title string, files []string) {
	if len(files) == 0 {
		return
	}
	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	fmt.Fprintf(b, "\n%s (%d):\n", title, len(files))
	for _, f := range sorted {
		fmt.Fprintf(b, "  %s\n", f)
	}
}
