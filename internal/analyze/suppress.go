package analyze

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"crit/internal/paths"
)

// Suppression silences one rule (or all rules, with "*") under a path prefix.
type Suppression struct {
	Path string `yaml:"path"`
	Rule string `yaml:"rule"`
}

// Suppressions is the immutable suppression list loaded from
// .crit/suppress.yaml.
type Suppressions struct {
	Entries []Suppression `yaml:"suppressions"`
}

// LoadSuppressions reads a suppression file. Missing file means no
// suppressions; a malformed file is an error.
func LoadSuppressions(path string) (*Suppressions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Suppressions{}, nil
		}
		return nil, err
	}

	var s Suppressions
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// Suppressed reports whether ruleID is suppressed for filePath.
func (s *Suppressions) Suppressed(filePath, ruleID string) bool {
	p := paths.Normalize(filePath)
	for _, entry := range s.Entries {
		if entry.Rule != "*" && entry.Rule != ruleID {
			continue
		}
		if strings.HasPrefix(p, paths.Normalize(entry.Path)) {
			return true
		}
	}
	return false
}
