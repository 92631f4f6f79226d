// Package schema holds the compiled PWF document schemas and the validator
// that walks a decoded document against them. Violations carry the raw
// location (key/index segments from the root) so they can be rendered into
// the canonical path grammar by Path.
package schema

// Kind selects which compiled schema a document is validated against.
type Kind string

const (
	KindPlan    Kind = "plan"
	KindHistory Kind = "history"
)

// Type is the expected shape of a value at one schema node.
type Type string

const (
	TypeObject    Type = "object"
	TypeArray     Type = "array"
	TypeString    Type = "string"
	TypeInteger   Type = "integer"
	TypeNumber    Type = "number"
	TypeBool      Type = "bool"
	TypeTimestamp Type = "timestamp"
)

// Node is one compiled schema node. A tree of Nodes is the in-memory form
// of a PWF document schema; the two trees are built once at package init.
type Node struct {
	Type Type

	// Object constraints.
	Required   []string
	Properties map[string]*Node
	// Values validates every property value of a free-form string-keyed map
	// (used for the plan glossary). Mutually exclusive with Properties.
	Values *Node
	// Closed rejects properties not declared in Properties.
	Closed bool
	// DependentRequired maps a trigger property to properties that must
	// also be present whenever the trigger is (cross-field rules).
	DependentRequired map[string][]string

	// Array constraints.
	Items    *Node
	MinItems int

	// Scalar constraints.
	Enum  []string
	Const *int
	Min   *float64
	Max   *float64
}

// registry holds the one compiled schema per document kind.
var registry = map[Kind]*Node{
	KindPlan:    planSchema(),
	KindHistory: historySchema(),
}

// ForKind returns the compiled schema for a document kind, or nil for an
// unknown kind.
func ForKind(kind Kind) *Node {
	return registry[kind]
}

func intPtr(v int) *int         { return &v }
func numPtr(v float64) *float64 { return &v }
