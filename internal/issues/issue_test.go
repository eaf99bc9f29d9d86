package issues

import (
	"testing"

	"github.com/erraggy/podtools/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string // Strings that must be present in output
		notContains []string // Strings that must NOT be present in output
	}{
		{
			name: "error severity with basic fields",
			issue: Issue{
				Path:     "$[0][2]",
				Message:  "table cell is empty",
				Severity: severity.SeverityError,
			},
			contains: []string{
				"✗",
				"$[0][2]",
				"table cell is empty",
			},
			notContains: []string{"Context:"},
		},
		{
			name: "critical severity with basic fields",
			issue: Issue{
				Path:     "$[3]",
				Message:  "cannot convert node",
				Severity: severity.SeverityCritical,
			},
			contains: []string{
				"✗",
				"$[3]",
				"cannot convert node",
			},
			notContains: []string{"Context:"},
		},
		{
			name: "warning severity with basic fields",
			issue: Issue{
				Path:     "$[1]",
				Message:  "table caption dropped",
				Severity: severity.SeverityWarning,
			},
			contains: []string{
				"⚠",
				"$[1]",
				"table caption dropped",
			},
		},
		{
			name: "info severity with context",
			issue: Issue{
				Path:     "$[0][1]",
				Message:  "unknown formatting code treated as section",
				Severity: severity.SeverityInfo,
				Context:  "formatting code Z",
			},
			contains: []string{
				"ℹ",
				"$[0][1]",
				"unknown formatting code treated as section",
				"Context: formatting code Z",
			},
		},
		{
			name: "unknown severity uses fallback symbol",
			issue: Issue{
				Path:     "$",
				Message:  "something",
				Severity: severity.Severity(99),
			},
			contains: []string{"?", "$", "something"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.issue.String()
			for _, s := range tt.contains {
				assert.Contains(t, result, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, result, s)
			}
		})
	}
}
