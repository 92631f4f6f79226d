package schema

import (
	"fmt"
	"slices"
	"sort"
	"time"
)

// Segment is one step of a raw violation location: either an object key or
// an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeySegment returns a Segment addressing an object property.
func KeySegment(k string) Segment { return Segment{Key: k} }

// IndexSegment returns a Segment addressing an array element.
func IndexSegment(i int) Segment { return Segment{Index: i, IsIndex: true} }

// Violation keywords.
const (
	KeywordRequired             = "required"
	KeywordType                 = "type"
	KeywordEnum                 = "enum"
	KeywordAdditionalProperties = "additionalProperties"
	KeywordMinItems             = "minItems"
	KeywordConst                = "const"
	KeywordMinimum              = "minimum"
	KeywordMaximum              = "maximum"
)

// Violation is one schema violation located by raw segments from the
// document root to the first offending element. For required violations
// Property names the missing property; for additionalProperties violations
// it names the unexpected one.
type Violation struct {
	Location []Segment
	Keyword  string
	Property string
	Message  string
}

// Validate walks a decoded document against the schema for kind and returns
// all violations found, in deterministic depth-first order. An empty slice
// means the document is valid. The walk never descends into a value whose
// type already failed.
func Validate(doc any, kind Kind) []Violation {
	root := ForKind(kind)
	if root == nil {
		return []Violation{{Keyword: KeywordType, Message: fmt.Sprintf("unknown document kind %q", kind)}}
	}
	var out []Violation
	walk(doc, root, nil, &out)
	return out
}

func walk(v any, n *Node, loc []Segment, out *[]Violation) {
	switch n.Type {
	case TypeObject:
		obj, ok := asMap(v)
		if !ok {
			report(out, loc, KeywordType, "", "expected object, got %s", typeName(v))
			return
		}
		for _, req := range n.Required {
			if _, present := obj[req]; !present {
				report(out, loc, KeywordRequired, req, "missing required property %q", req)
			}
		}
		for _, dep := range sortedTriggers(n.DependentRequired) {
			if _, present := obj[dep]; !present {
				continue
			}
			for _, want := range n.DependentRequired[dep] {
				if _, present := obj[want]; !present {
					report(out, loc, KeywordRequired, want, "property %q is required when %q is present", want, dep)
				}
			}
		}
		for _, key := range sortedKeys(obj) {
			child, declared := n.Properties[key]
			switch {
			case declared:
				walk(obj[key], child, append(slices.Clone(loc), KeySegment(key)), out)
			case n.Values != nil:
				walk(obj[key], n.Values, append(slices.Clone(loc), KeySegment(key)), out)
			case n.Closed:
				report(out, loc, KeywordAdditionalProperties, key, "unexpected property %q", key)
			}
		}

	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			report(out, loc, KeywordType, "", "expected array, got %s", typeName(v))
			return
		}
		if len(arr) < n.MinItems {
			report(out, loc, KeywordMinItems, "", "array must contain at least %d element(s), has %d", n.MinItems, len(arr))
		}
		if n.Items != nil {
			for i, item := range arr {
				walk(item, n.Items, append(slices.Clone(loc), IndexSegment(i)), out)
			}
		}

	case TypeString:
		s, ok := v.(string)
		if !ok {
			report(out, loc, KeywordType, "", "expected string, got %s", typeName(v))
			return
		}
		if len(n.Enum) > 0 && !slices.Contains(n.Enum, s) {
			report(out, loc, KeywordEnum, "", "value %q is not one of %v", s, n.Enum)
		}

	case TypeInteger:
		i, ok := asInt(v)
		if !ok {
			report(out, loc, KeywordType, "", "expected integer, got %s", typeName(v))
			return
		}
		if n.Const != nil && i != int64(*n.Const) {
			report(out, loc, KeywordConst, "", "value must equal %d, got %d", *n.Const, i)
			return
		}
		checkRange(float64(i), n, loc, out)

	case TypeNumber:
		f, ok := asFloat(v)
		if !ok {
			report(out, loc, KeywordType, "", "expected number, got %s", typeName(v))
			return
		}
		checkRange(f, n, loc, out)

	case TypeBool:
		if _, ok := v.(bool); !ok {
			report(out, loc, KeywordType, "", "expected boolean, got %s", typeName(v))
		}

	case TypeTimestamp:
		switch t := v.(type) {
		case time.Time:
		case string:
			if t == "" {
				report(out, loc, KeywordType, "", "expected timestamp, got empty string")
			}
		default:
			report(out, loc, KeywordType, "", "expected timestamp, got %s", typeName(v))
		}
	}
}

func checkRange(f float64, n *Node, loc []Segment, out *[]Violation) {
	if n.Min != nil && f < *n.Min {
		report(out, loc, KeywordMinimum, "", "value %v is below minimum %v", f, *n.Min)
	}
	if n.Max != nil && f > *n.Max {
		report(out, loc, KeywordMaximum, "", "value %v exceeds maximum %v", f, *n.Max)
	}
}

func report(out *[]Violation, loc []Segment, keyword, property, format string, args ...any) {
	*out = append(*out, Violation{
		Location: slices.Clone(loc),
		Keyword:  keyword,
		Property: property,
		Message:  fmt.Sprintf(format, args...),
	})
}

// asMap normalizes both map shapes the YAML decoder can produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	if f, ok := v.(float64); ok {
		return f, true
	}
	return 0, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any, map[any]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "number"
	case time.Time:
		return "timestamp"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTriggers(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
