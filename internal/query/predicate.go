// Package query builds the predicate trees, ordering specifications, and
// pagination windows that parameterize recipe queries against the Galley
// data service.
//
// The predicate tree is a typed AST (comparison leaves combined by AND/OR
// groups) serialized to the service's boolean-expression JSON in exactly one
// place, [Comparison.MarshalJSON] and the group marshalers. Callers never
// splice query strings together.
//
// [Compose] is pure: the same [models.SearchFilter] always yields the same
// tree, and the one tree value is shared by the row query and its paired
// count query, so the count always describes the result set being paged.
package query

import "encoding/json"

// Operator is a comparison operator understood by the data service.
type Operator string

const (
	OpEq    Operator = "_eq"
	OpIlike Operator = "_ilike"
	OpLte   Operator = "_lte"
	OpGte   Operator = "_gte"
	OpIn    Operator = "_in"
)

// Expr is a node of the predicate tree. Implementations marshal themselves
// to the wire boolean-expression format.
type Expr interface {
	json.Marshaler
	exprNode()
}

// Comparison is a leaf of the predicate tree: a field path compared to a
// value. A path longer than one element descends through relations, e.g.
// {"ingredients", "name"} matches against the ingredient relation's name.
type Comparison struct {
	Path  []string
	Op    Operator
	Value any
}

func (Comparison) exprNode() {}

// MarshalJSON serializes the leaf as nested single-key objects ending in the
// operator: {"ingredients": {"name": {"_ilike": "%egg%"}}}.
func (c Comparison) MarshalJSON() ([]byte, error) {
	node := map[string]any{string(c.Op): c.Value}
	for i := len(c.Path) - 1; i >= 0; i-- {
		node = map[string]any{c.Path[i]: node}
	}
	return json.Marshal(node)
}

// And is a conjunction group: every child must match.
type And []Expr

func (And) exprNode() {}

func (a And) MarshalJSON() ([]byte, error) {
	return marshalGroup("_and", a)
}

// Or is a disjunction group: at least one child must match.
type Or []Expr

func (Or) exprNode() {}

func (o Or) MarshalJSON() ([]byte, error) {
	return marshalGroup("_or", o)
}

func marshalGroup(key string, children []Expr) ([]byte, error) {
	if children == nil {
		children = []Expr{}
	}
	return json.Marshal(map[string][]Expr{key: children})
}

// Eq builds an equality leaf on a top-level field.
func Eq(field string, value any) Comparison {
	return Comparison{Path: []string{field}, Op: OpEq, Value: value}
}

// Ilike builds a case-insensitive substring-match leaf. The value must
// already be wildcard-wrapped by the caller.
func Ilike(field string, pattern string) Comparison {
	return Comparison{Path: []string{field}, Op: OpIlike, Value: pattern}
}

// Lte builds a less-than-or-equal leaf on a top-level field.
func Lte(field string, value any) Comparison {
	return Comparison{Path: []string{field}, Op: OpLte, Value: value}
}

// Gte builds a greater-than-or-equal leaf on a top-level field.
func Gte(field string, value any) Comparison {
	return Comparison{Path: []string{field}, Op: OpGte, Value: value}
}
