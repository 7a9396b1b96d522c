package stitch

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks that a stitch file is well-formed enough to hand to its
// engine: readable and non-empty, a unified diff for patches, parseable
// YAML with a rule: key for rewrite rules. The engines remain the authority
// on whether a stitch actually applies.
func (s Stitch) Validate() error {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("reading stitch file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("stitch file is empty: %s", s.Path)
	}

	switch s.Kind {
	case KindPatch:
		if !looksLikeDiff(string(data)) {
			return fmt.Errorf("patch %s does not look like a unified diff", s.Path)
		}
	case KindRule:
		var rule map[string]any
		if err := yaml.Unmarshal(data, &rule); err != nil {
			return fmt.Errorf("rule %s is not valid YAML: %w", s.Path, err)
		}
		if _, ok := rule["rule"]; !ok {
			return fmt.Errorf("rule %s has no rule: key", s.Path)
		}
	}
	return nil
}

func looksLikeDiff(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ") ||
			strings.HasPrefix(line, "diff ") || strings.HasPrefix(line, "@@ ") {
			return true
		}
	}
	return false
}
