package review

import (
	"errors"
	"sort"
	"testing"

	"crit/internal/crawl"
	"crit/internal/testutil"
)

// fakeAnalyzer records the files it was asked to analyze and returns canned
// issues per file.
type fakeAnalyzer struct {
	analyzed []string
	issues   map[string][]ReviewIssue
	failOn   map[string]bool
}

func (f *fakeAnalyzer) AnalyzeFile(filePath string) ([]ReviewIssue, error) {
	f.analyzed = append(f.analyzed, filePath)
	if f.failOn[filePath] {
		return nil, errors.New("analyzer blew up")
	}
	return f.issues[filePath], nil
}

func reviewWorkspace(t *testing.T) string {
	t.Helper()
	return testutil.WriteWorkspace(t, map[string]string{
		"a.py":            "import b\nimport c\n",
		"b.py":            "x = 1\n",
		"c.py":            "y = 2\n",
		"tests/test_a.py": "import a\n",
	})
}

func newTestOrchestrator(t *testing.T, root string, analyzer Analyzer) *Orchestrator {
	t.Helper()
	return NewOrchestrator(crawl.NewCrawler(root, nil, nil), analyzer, 0, nil)
}

func TestReviewPREmptyChangedFiles(t *testing.T) {
	fake := &fakeAnalyzer{}
	o := newTestOrchestrator(t, t.TempDir(), fake)

	report := o.ReviewPR(nil, DepthStandard)

	if report.FilesAnalyzed != 0 {
		t.Errorf("FilesAnalyzed = %d, want 0", report.FilesAnalyzed)
	}
	if report.TotalIssues != 0 {
		t.Errorf("TotalIssues = %d, want 0", report.TotalIssues)
	}
	if report.ExecutionTimeSeconds < 0 {
		t.Errorf("ExecutionTimeSeconds = %f, want >= 0", report.ExecutionTimeSeconds)
	}
	if report.ID == "" {
		t.Error("report should carry an ID")
	}
	if len(fake.analyzed) != 0 {
		t.Errorf("crawler/analyzer must not run on empty input, analyzed %v", fake.analyzed)
	}
}

func TestReviewPRDepthSelection(t *testing.T) {
	tests := []struct {
		depth    AnalysisDepth
		expected []string
	}{
		{DepthQuick, []string{"a.py"}},
		{DepthStandard, []string{"a.py", "b.py", "c.py"}},
		{DepthDeep, []string{"a.py", "b.py", "c.py", "tests/test_a.py"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.depth), func(t *testing.T) {
			root := reviewWorkspace(t)
			fake := &fakeAnalyzer{}
			o := newTestOrchestrator(t, root, fake)

			report := o.ReviewPR([]string{"a.py"}, tt.depth)

			got := append([]string{}, fake.analyzed...)
			sort.Strings(got)
			want := append([]string{}, tt.expected...)
			sort.Strings(want)

			if len(got) != len(want) {
				t.Fatalf("analyzed %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("analyzed %v, want %v", got, want)
				}
			}
			if report.FilesAnalyzed != len(want) {
				t.Errorf("FilesAnalyzed = %d, want %d", report.FilesAnalyzed, len(want))
			}
			if report.Depth != tt.depth {
				t.Errorf("Depth = %q, want %q", report.Depth, tt.depth)
			}
		})
	}
}

func TestReviewPRSkipsDeletedFiles(t *testing.T) {
	root := reviewWorkspace(t)
	fake := &fakeAnalyzer{}
	o := newTestOrchestrator(t, root, fake)

	// deleted.py is recorded in the graph but cannot be analyzed.
	report := o.ReviewPR([]string{"a.py", "deleted.py"}, DepthQuick)

	if report.FilesAnalyzed != 1 {
		t.Errorf("FilesAnalyzed = %d, want 1", report.FilesAnalyzed)
	}
	for _, f := range fake.analyzed {
		if f == "deleted.py" {
			t.Error("deleted file must not reach the analyzer")
		}
	}
}

func TestReviewPRAnalyzerFailureIsolation(t *testing.T) {
	root := reviewWorkspace(t)
	fake := &fakeAnalyzer{
		failOn: map[string]bool{"b.py": true},
		issues: map[string][]ReviewIssue{
			"c.py": {{Severity: SeverityHigh, Category: "security", FilePath: "c.py", Message: "m"}},
		},
	}
	o := newTestOrchestrator(t, root, fake)

	report := o.ReviewPR([]string{"a.py"}, DepthStandard)

	// The failing file still counts as analyzed, with zero issues.
	if report.FilesAnalyzed != 3 {
		t.Errorf("FilesAnalyzed = %d, want 3", report.FilesAnalyzed)
	}
	if report.TotalIssues != 1 {
		t.Errorf("TotalIssues = %d, want 1", report.TotalIssues)
	}
}

func TestReviewPRSeverityTally(t *testing.T) {
	root := reviewWorkspace(t)
	fake := &fakeAnalyzer{
		issues: map[string][]ReviewIssue{
			"a.py": {
				{Severity: SeverityCritical, FilePath: "a.py", Message: "m1"},
				{Severity: SeverityCritical, FilePath: "a.py", Message: "m2"},
				{Severity: SeverityLow, FilePath: "a.py", Message: "m3"},
			},
		},
	}
	o := newTestOrchestrator(t, root, fake)

	report := o.ReviewPR([]string{"a.py"}, DepthQuick)

	if report.IssuesBySeverity[SeverityCritical] != 2 {
		t.Errorf("critical = %d, want 2", report.IssuesBySeverity[SeverityCritical])
	}
	if report.IssuesBySeverity[SeverityLow] != 1 {
		t.Errorf("low = %d, want 1", report.IssuesBySeverity[SeverityLow])
	}
	// Absent severities are absent keys, not zeros.
	if _, ok := report.IssuesBySeverity[SeverityMedium]; ok {
		t.Error("medium should be an absent key")
	}
	if report.TotalIssues != 3 {
		t.Errorf("TotalIssues = %d, want 3", report.TotalIssues)
	}
	if report.EstimatedTokens <= 0 {
		t.Errorf("EstimatedTokens = %d, want > 0", report.EstimatedTokens)
	}
}

func TestParseDepth(t *testing.T) {
	tests := []struct {
		input   string
		want    AnalysisDepth
		wantErr bool
	}{
		{"quick", DepthQuick, false},
		{"standard", DepthStandard, false},
		{"deep", DepthDeep, false},
		{"DEEP", "", true},
		{"", "", true},
		{"full", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDepth(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDepth(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDepth(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDepth(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDepthStrategyMapping(t *testing.T) {
	if s := DepthQuick.Strategy(); s.Level != 1 || s.IncludesTestFiles || s.IncludesIndirectDeps {
		t.Errorf("quick strategy = %+v", s)
	}
	if s := DepthStandard.Strategy(); s.Level != 2 || !s.IncludesTestFiles || s.IncludesIndirectDeps {
		t.Errorf("standard strategy = %+v", s)
	}
	if s := DepthDeep.Strategy(); s.Level != 3 || !s.IncludesTestFiles || !s.IncludesIndirectDeps {
		t.Errorf("deep strategy = %+v", s)
	}
}
