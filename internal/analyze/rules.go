package analyze

import (
	"fmt"
	"os"
	"regexp"

	toml "github.com/pelletier/go-toml/v2"

	"crit/internal/review"
)

// RulesFileName is the default filename for custom rule declarations at the
// workspace root.
const RulesFileName = "RULES.toml"

// RuleDeclaration is one custom rule in RULES.toml.
type RuleDeclaration struct {
	// ID is the unique rule identifier, used in suppressions
	ID string `toml:"id"`

	// Category is a free-form grouping, e.g. "security"
	Category string `toml:"category"`

	// Severity is one of critical, high, medium, low
	Severity string `toml:"severity"`

	// Pattern is the regular expression applied to each line
	Pattern string `toml:"pattern"`

	// Message describes the finding
	Message string `toml:"message"`

	// Suggestion is an optional remediation hint
	Suggestion string `toml:"suggestion,omitempty"`

	// Languages restricts the rule (python, csharp, javascript); empty
	// means all languages
	Languages []string `toml:"languages,omitempty"`
}

// RulesFile is the root structure of RULES.toml.
type RulesFile struct {
	// Version is the schema version
	Version int `toml:"version"`

	// Rules is the list of declared rules
	Rules []RuleDeclaration `toml:"rule"`
}

// LoadRulesFile parses custom rules from the given path. A missing file
// returns no rules and no error; a malformed file or pattern is an error,
// since silently dropping a user's rule would hide findings.
func LoadRulesFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file RulesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for _, decl := range file.Rules {
		if decl.ID == "" || decl.Pattern == "" {
			return nil, fmt.Errorf("rule in %s missing id or pattern", path)
		}
		re, err := regexp.Compile(decl.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: invalid pattern: %w", decl.ID, err)
		}
		rules = append(rules, Rule{
			ID:         decl.ID,
			Category:   decl.Category,
			Severity:   parseSeverity(decl.Severity),
			Message:    decl.Message,
			Suggestion: decl.Suggestion,
			Languages:  parseLanguages(decl.Languages),
			re:         re,
		})
	}

	return rules, nil
}

func parseSeverity(s string) review.Severity {
	switch review.Severity(s) {
	case review.SeverityCritical, review.SeverityHigh, review.SeverityMedium, review.SeverityLow:
		return review.Severity(s)
	default:
		return review.SeverityMedium
	}
}
