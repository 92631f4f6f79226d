package pwf

import (
	"gopkg.in/yaml.v3"

	"github.com/meltforce/pwf/internal/schema"
)

// ValidatePlan validates a decoded value against the Plan v1 schema. An
// empty result means the value is a valid plan document.
func ValidatePlan(doc any) []ValidationIssue {
	return issuesFromViolations(schema.Validate(doc, schema.KindPlan))
}

// ValidateHistory validates a decoded value against the History v1 schema.
func ValidateHistory(doc any) []ValidationIssue {
	return issuesFromViolations(schema.Validate(doc, schema.KindHistory))
}

// PlanResult is the outcome of parsing plan text: exactly one of Plan and
// Issues is populated.
type PlanResult struct {
	Plan   *Plan
	Issues []ValidationIssue
}

// Valid reports whether parsing produced a document.
func (r PlanResult) Valid() bool { return len(r.Issues) == 0 }

// HistoryResult is the outcome of parsing history text: exactly one of
// History and Issues is populated.
type HistoryResult struct {
	History *History
	Issues  []ValidationIssue
}

// Valid reports whether parsing produced a document.
func (r HistoryResult) Valid() bool { return len(r.Issues) == 0 }

// ParsePlan decodes and validates plan text. Malformed text yields a single
// issue at the document root; a well-formed but invalid document yields the
// schema issue list; otherwise the typed plan is returned.
func ParsePlan(text string) PlanResult {
	value, err := Decode(text)
	if err != nil {
		return PlanResult{Issues: decodeIssue(err)}
	}
	if issues := ValidatePlan(value); len(issues) > 0 {
		return PlanResult{Issues: issues}
	}
	var p Plan
	if err := yaml.Unmarshal([]byte(text), &p); err != nil {
		return PlanResult{Issues: decodeIssue(err)}
	}
	return PlanResult{Plan: &p}
}

// ParseHistory decodes and validates history text.
func ParseHistory(text string) HistoryResult {
	value, err := Decode(text)
	if err != nil {
		return HistoryResult{Issues: decodeIssue(err)}
	}
	if issues := ValidateHistory(value); len(issues) > 0 {
		return HistoryResult{Issues: issues}
	}
	var h History
	if err := yaml.Unmarshal([]byte(text), &h); err != nil {
		return HistoryResult{Issues: decodeIssue(err)}
	}
	return HistoryResult{History: &h}
}
