package pwf

import "github.com/meltforce/pwf/internal/schema"

// Severity classifies a validation issue. Schema-originated issues are
// always errors today; the warning level is reserved for soft rules.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is a single structural problem in a candidate document,
// located by a canonical path string ("" addresses the document root).
type ValidationIssue struct {
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`
	Severity Severity `json:"severity" yaml:"severity"`
	Code     string   `json:"code,omitempty" yaml:"code,omitempty"`
}

// issuesFromViolations maps raw schema violations into issues, resolving
// each raw location through the canonical path grammar.
func issuesFromViolations(violations []schema.Violation) []ValidationIssue {
	if len(violations) == 0 {
		return nil
	}
	issues := make([]ValidationIssue, len(violations))
	for i, v := range violations {
		issues[i] = ValidationIssue{
			Path:     schema.Path(v),
			Message:  v.Message,
			Severity: SeverityError,
			Code:     v.Keyword,
		}
	}
	return issues
}

// decodeIssue wraps a serializer failure as the single root-path issue the
// parse facade returns for malformed text.
func decodeIssue(err error) []ValidationIssue {
	return []ValidationIssue{{
		Path:     "",
		Message:  err.Error(),
		Severity: SeverityError,
		Code:     "decode",
	}}
}
