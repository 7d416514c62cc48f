// Package analyze provides the built-in analyzer collaborator: regex passes
// over single files producing review issues. The orchestrator treats it as
// opaque; any analyzer satisfying the same contract can replace it.
package analyze

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"crit/internal/config"
	"crit/internal/lang"
	"crit/internal/review"
)

// Rule is one compiled detection pattern applied line by line.
type Rule struct {
	ID         string
	Category   string
	Severity   review.Severity
	Message    string
	Suggestion string

	// Languages restricts the rule to these languages; empty means all.
	Languages []lang.Language

	re *regexp.Regexp
}

func (r Rule) appliesTo(l lang.Language) bool {
	if len(r.Languages) == 0 {
		return true
	}
	for _, want := range r.Languages {
		if l == want {
			return true
		}
	}
	return false
}

func builtinRules(cfg config.AnalyzerConfig) []Rule {
	var rules []Rule

	if cfg.Security {
		rules = append(rules,
			Rule{
				ID:         "hardcoded-secret",
				Category:   "security",
				Severity:   review.SeverityCritical,
				Message:    "Possible hardcoded credential",
				Suggestion: "Load secrets from the environment or a secret store",
				re:         regexp.MustCompile(`(?i)(password|passwd|secret|api_?key|auth_?token)\s*[:=]\s*["'][^"']{4,}["']`),
			},
			Rule{
				ID:         "eval-usage",
				Category:   "security",
				Severity:   review.SeverityHigh,
				Message:    "eval() on dynamic input enables code injection",
				Suggestion: "Parse the input instead of evaluating it",
				Languages:  []lang.Language{lang.Python, lang.JavaScript},
				re:         regexp.MustCompile(`\beval\s*\(`),
			},
			Rule{
				ID:         "sql-string-concat",
				Category:   "security",
				Severity:   review.SeverityHigh,
				Message:    "SQL assembled by string concatenation",
				Suggestion: "Use parameterized queries",
				re:         regexp.MustCompile(`(?i)\b(select|insert|update|delete)\b[^"']*["'][^"']*["']\s*\+`),
			},
			Rule{
				ID:         "shell-true",
				Category:   "security",
				Severity:   review.SeverityHigh,
				Message:    "subprocess with shell=True is injectable",
				Suggestion: "Pass an argument list with shell=False",
				Languages:  []lang.Language{lang.Python},
				re:         regexp.MustCompile(`shell\s*=\s*True`),
			},
		)
	}

	if cfg.Performance {
		rules = append(rules,
			Rule{
				ID:         "sync-sleep",
				Category:   "performance",
				Severity:   review.SeverityMedium,
				Message:    "Blocking sleep in source code",
				Suggestion: "Prefer event- or deadline-driven waiting",
				re:         regexp.MustCompile(`\b(time\.sleep|Thread\.Sleep)\s*\(`),
			},
			Rule{
				ID:         "select-star",
				Category:   "performance",
				Severity:   review.SeverityLow,
				Message:    "SELECT * fetches more columns than needed",
				Suggestion: "List the columns the code actually uses",
				re:         regexp.MustCompile(`(?i)select\s+\*\s+from\b`),
			},
		)
	}

	if cfg.Maintainability {
		rules = append(rules,
			Rule{
				ID:       "long-line",
				Category: "maintainability",
				Severity: review.SeverityLow,
				Message:  "Line exceeds 120 characters",
				re:       regexp.MustCompile(`^.{121,}`),
			},
			Rule{
				ID:       "todo-comment",
				Category: "maintainability",
				Severity: review.SeverityLow,
				Message:  "Unresolved TODO/FIXME marker",
				re:       regexp.MustCompile(`\b(TODO|FIXME|HACK)\b`),
			},
		)
	}

	return rules
}

// Analyzer applies built-in and custom rules to single files.
type Analyzer struct {
	workspaceRoot string
	rules         []Rule
	suppressions  *Suppressions
}

// NewAnalyzer builds an analyzer from config, plus any RULES.toml custom
// rules and .crit/suppress.yaml suppressions present in the workspace. A
// missing rules or suppression file is not an error; a malformed one is.
func NewAnalyzer(workspaceRoot string, cfg config.AnalyzerConfig) (*Analyzer, error) {
	rules := builtinRules(cfg)

	custom, err := LoadRulesFile(filepath.Join(workspaceRoot, RulesFileName))
	if err != nil {
		return nil, err
	}
	rules = append(rules, custom...)

	suppressions, err := LoadSuppressions(filepath.Join(workspaceRoot, ".crit", "suppress.yaml"))
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		workspaceRoot: workspaceRoot,
		rules:         rules,
		suppressions:  suppressions,
	}, nil
}

// AnalyzeFile scans one file and returns its issues. A missing or unreadable
// file yields zero issues, never an error, per the analyzer contract.
func (a *Analyzer) AnalyzeFile(filePath string) ([]review.ReviewIssue, error) {
	p := filePath
	if !filepath.IsAbs(p) {
		p = filepath.Join(a.workspaceRoot, p)
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	fileLang := lang.FromPath(filePath)

	var issues []review.ReviewIssue
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		for _, rule := range a.rules {
			if !rule.appliesTo(fileLang) {
				continue
			}
			if !rule.re.MatchString(line) {
				continue
			}
			if a.suppressions.Suppressed(filePath, rule.ID) {
				continue
			}
			issues = append(issues, review.ReviewIssue{
				Severity:   rule.Severity,
				Category:   rule.Category,
				FilePath:   filePath,
				Line:       lineNum,
				Message:    rule.Message,
				Suggestion: rule.Suggestion,
			})
		}
	}
	// Scanner errors (binary junk, over-long lines) end the pass early;
	// issues found so far still count.
	_ = scanner.Err()

	return issues, nil
}

func parseLanguages(names []string) []lang.Language {
	var out []lang.Language
	for _, name := range names {
		switch strings.ToLower(name) {
		case "python":
			out = append(out, lang.Python)
		case "csharp", "c#":
			out = append(out, lang.CSharp)
		case "javascript", "typescript", "js", "ts":
			out = append(out, lang.JavaScript)
		}
	}
	return out
}
