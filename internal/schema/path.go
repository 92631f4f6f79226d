package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// identPattern matches keys that can be rendered as a bare dotted segment.
var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Path renders the canonical path string for a violation. Rules, applied
// left to right over the raw location:
//
//   - empty location → "" (the document root)
//   - integer segment → "[N]"
//   - identifier-shaped key → ".key" (no leading dot at the start)
//   - any other key → "['key']" with \ and ' backslash-escaped
//
// For required violations the missing property is appended as a trailing
// segment, so a day missing its exercises resolves to
// "cycle.days[0].exercises". For additionalProperties violations the
// unexpected property is appended the same way.
func Path(v Violation) string {
	var b strings.Builder
	for _, seg := range v.Location {
		if seg.IsIndex {
			fmt.Fprintf(&b, "[%d]", seg.Index)
		} else {
			appendKey(&b, seg.Key)
		}
	}
	switch v.Keyword {
	case KeywordRequired, KeywordAdditionalProperties:
		appendKey(&b, v.Property)
	}
	return b.String()
}

func appendKey(b *strings.Builder, key string) {
	if identPattern.MatchString(key) {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(key)
		return
	}
	b.WriteString("['")
	b.WriteString(escapeKey(key))
	b.WriteString("']")
}

// escapeKey escapes backslash and single-quote characters for use inside a
// bracket-quoted segment.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r == '\\' || r == '\'' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
