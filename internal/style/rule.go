// Package style defines the rule contract and the evaluation engine.
package style

import (
	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// Rule is a single style check with its canonical fix. Rules are pure:
// Check and Fix never mutate the tree, the model, or the rule itself.
//
// Check receives the node's layout explicitly rather than reading it
// from the model, so a fixed Info value can be re-checked directly.
// Fix must be self-stabilizing: re-checking its output reports no
// violation, and fixing conformant layout returns it unchanged.
type Rule interface {
	// ID is the stable identifier used in reports and config.
	ID() string

	// AppliesTo lists the node kinds the rule is evaluated against.
	// Sibling-context rules name the parent kind so they see the full
	// child sequence at once.
	AppliesTo() []syntax.Kind

	// Advisory marks rules that report but never re-layout, either
	// because the fix would change semantics or because the guide
	// leaves the choice to judgment.
	Advisory() bool

	// Check returns a violation, or nil when the layout conforms.
	Check(n *syntax.Node, info layout.Info, m *layout.Model) *Violation

	// Fix returns the corrected layout for the node. Advisory rules
	// return info unchanged.
	Fix(n *syntax.Node, info layout.Info, m *layout.Model) layout.Info
}

// Violation is a single non-conformance finding. It is an immutable
// value keyed by (RuleID, Span); the evaluator drops duplicates.
type Violation struct {
	RuleID   string
	Node     *syntax.Node
	Span     syntax.Span
	Message  string
	Advisory bool
}

// Rules is an ordered rule sequence, in registry (guide section) order.
type Rules []Rule

// For returns the subset applicable to the given node kind, preserving
// registry order.
func (rs Rules) For(kind syntax.Kind) Rules {
	var out Rules
	for _, r := range rs {
		for _, k := range r.AppliesTo() {
			if k == kind {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ByID returns the rule with the given ID, or nil.
func (rs Rules) ByID(id string) Rule {
	for _, r := range rs {
		if r.ID() == id {
			return r
		}
	}
	return nil
}
