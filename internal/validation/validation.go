// Package validation lints the synthesized CloudFormation template with
// cfn-lint-go. The stack builder only checks the dependency graph; the
// linter checks property-level template validity against the resource
// specifications.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lex00/cfn-lint-go/pkg/lint"
)

// Report categorizes the linter's findings for one template.
type Report struct {
	Passed        bool     `json:"passed"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	Informational []string `json:"informational"`
}

// TotalIssues returns the total number of findings.
func (r Report) TotalIssues() int {
	return len(r.Errors) + len(r.Warnings) + len(r.Informational)
}

// LintTemplate runs cfn-lint-go on a template file. Warnings do not fail
// the report; errors do.
func LintTemplate(templatePath string) (*Report, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return &Report{
			Passed: false,
			Errors: []string{fmt.Sprintf("Template file not found: %s", templatePath)},
		}, nil
	}

	linter := lint.New(lint.Options{})
	matches, err := linter.LintFile(templatePath)
	if err != nil {
		return &Report{
			Passed: false,
			Errors: []string{fmt.Sprintf("Linter error: %v", err)},
		}, nil
	}

	report := &Report{
		Errors:        []string{},
		Warnings:      []string{},
		Informational: []string{},
	}

	for _, match := range matches {
		formatted := formatMatch(match)

		switch match.Level {
		case "Error":
			report.Errors = append(report.Errors, formatted)
		case "Warning":
			report.Warnings = append(report.Warnings, formatted)
		default:
			report.Informational = append(report.Informational, formatted)
		}
	}

	report.Passed = len(report.Errors) == 0
	return report, nil
}

// LintTemplateBytes lints an in-memory template. The linter works on files,
// so the bytes are staged in a temporary one.
func LintTemplateBytes(data []byte) (*Report, error) {
	dir, err := os.MkdirTemp("", "eksobs-lint-*")
	if err != nil {
		return nil, fmt.Errorf("staging template: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(dir)
	}()

	path := filepath.Join(dir, "template.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("staging template: %w", err)
	}

	return LintTemplate(path)
}

// formatMatch formats a single finding for display.
func formatMatch(match lint.Match) string {
	pathStr := ""
	if len(match.Location.Path) > 0 {
		parts := make([]string, len(match.Location.Path))
		for i, p := range match.Location.Path {
			parts[i] = fmt.Sprintf("%v", p)
		}
		pathStr = strings.Join(parts, "/")
	}

	if pathStr != "" {
		return fmt.Sprintf("%s: %s (at %s)", match.Rule.ID, match.Message, pathStr)
	}
	return fmt.Sprintf("%s: %s", match.Rule.ID, match.Message)
}
