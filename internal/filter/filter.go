// Package filter builds SurrealDB WHERE clauses from optional predicates.
//
// Listing endpoints decide each business rule independently: some rules
// apply, some do not. Each rule that applies becomes a Predicate; rules that
// do not apply contribute nil. And folds the sequence into a single
// conjunction, skipping nil entries, and yields nil when nothing remains.
// A nil Predicate renders as no WHERE clause at all (select-all).
//
// Predicates carry their bind variables alongside the expression, so values
// are never interpolated into query text.
package filter

import (
	"sort"
	"strings"
)

// Predicate is a composable query condition with its bind variables.
// A nil *Predicate means "no condition".
type Predicate struct {
	expr string
	vars map[string]interface{}
}

// Eq builds an equality predicate: field = $name, binding name to value.
func Eq(field, name string, value interface{}) *Predicate {
	return &Predicate{
		expr: field + " = $" + name,
		vars: map[string]interface{}{name: value},
	}
}

// And combines predicates with AND, skipping nil entries.
// Returns nil if every entry is nil.
func And(preds ...*Predicate) *Predicate {
	return combine("AND", preds)
}

// Or combines predicates with OR, skipping nil entries.
// Returns nil if every entry is nil.
func Or(preds ...*Predicate) *Predicate {
	return combine("OR", preds)
}

func combine(op string, preds []*Predicate) *Predicate {
	present := make([]*Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if len(present) == 1 {
		return present[0]
	}

	parts := make([]string, 0, len(present))
	vars := make(map[string]interface{})
	for _, p := range present {
		parts = append(parts, "("+p.expr+")")
		for k, v := range p.vars {
			vars[k] = v
		}
	}
	return &Predicate{
		expr: strings.Join(parts, " "+op+" "),
		vars: vars,
	}
}

// Expr returns the condition expression, or "" for a nil predicate.
func (p *Predicate) Expr() string {
	if p == nil {
		return ""
	}
	return p.expr
}

// WhereClause returns "WHERE <expr>", or "" for a nil predicate.
func (p *Predicate) WhereClause() string {
	if p == nil {
		return ""
	}
	return "WHERE " + p.expr
}

// Vars returns the bind variables, or nil for a nil predicate.
func (p *Predicate) Vars() map[string]interface{} {
	if p == nil {
		return nil
	}
	return p.vars
}

// Names returns the bound variable names in sorted order. Used by tests and
// diagnostics; query execution uses Vars directly.
func (p *Predicate) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.vars))
	for k := range p.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
