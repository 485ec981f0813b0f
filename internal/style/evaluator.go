package style

import (
	"fmt"

	"github.com/donaldgifford/hstyle/internal/layout"
	"github.com/donaldgifford/hstyle/internal/syntax"
)

// Evaluate walks the tree in pre-order and applies every applicable
// rule to every node, in registry order. The returned violations are
// in traversal order (top-to-bottom, then registry order within a
// node), which is the report order.
//
// The model is returned alongside the violations so callers can render
// fixes without recomputing layout.
func Evaluate(root *syntax.Node, src string, rules Rules) ([]Violation, *layout.Model, error) {
	model, err := layout.Compute(root, layout.NewSource(src))
	if err != nil {
		return nil, nil, err
	}

	byKind := make(map[syntax.Kind]Rules)
	var (
		violations []Violation
		seen       = make(map[violationKey]bool)
		evalErr    error
	)

	syntax.Walk(root, func(n *syntax.Node) bool {
		if evalErr != nil {
			return false
		}

		applicable, ok := byKind[n.Kind]
		if !ok {
			applicable = rules.For(n.Kind)
			byKind[n.Kind] = applicable
		}

		info := model.Info(n)
		for _, r := range applicable {
			v, err := checkSafe(r, n, info, model)
			if err != nil {
				evalErr = err
				return false
			}
			if v == nil {
				continue
			}

			key := violationKey{ruleID: v.RuleID, span: v.Span}
			if seen[key] {
				continue
			}
			seen[key] = true
			violations = append(violations, *v)
		}
		return true
	})

	if evalErr != nil {
		return nil, nil, evalErr
	}
	return violations, model, nil
}

// violationKey dedupes findings per (rule, span).
type violationKey struct {
	ruleID string
	span   syntax.Span
}

// checkSafe invokes a rule's Check, converting a panic into a
// RuleInternalError naming the rule. A panicking rule is an authoring
// bug and aborts the unit.
func checkSafe(r Rule, n *syntax.Node, info layout.Info, m *layout.Model) (v *Violation, err error) {
	defer func() {
		if p := recover(); p != nil {
			v = nil
			err = &RuleInternalError{RuleID: r.ID(), Err: fmt.Errorf("check panicked: %v", p)}
		}
	}()

	v = r.Check(n, info, m)
	if v != nil {
		// Normalize fields rules commonly leave to the engine.
		if v.RuleID == "" {
			v.RuleID = r.ID()
		}
		if v.Node == nil {
			v.Node = n
		}
		if (v.Span == syntax.Span{}) {
			v.Span = v.Node.Span
		}
		v.Advisory = r.Advisory()
	}
	return v, nil
}

// Canonicalize computes the corrected layout for a violation on
// demand. Advisory violations return the node's current layout
// unchanged. The fix is re-checked before being returned; a fix that
// does not stabilize is a RuleInternalError.
func Canonicalize(v Violation, m *layout.Model, rules Rules) (layout.Info, error) {
	info := m.Info(v.Node)

	if v.Advisory {
		return info, nil
	}

	r := rules.ByID(v.RuleID)
	if r == nil {
		return layout.Info{}, &RuleInternalError{RuleID: v.RuleID, Err: fmt.Errorf("rule not registered")}
	}

	fixed, err := fixSafe(r, v.Node, info, m)
	if err != nil {
		return layout.Info{}, err
	}

	if again := r.Check(v.Node, fixed, m); again != nil {
		return layout.Info{}, &RuleInternalError{
			RuleID: v.RuleID,
			Err:    fmt.Errorf("fix is not self-stabilizing: %s", again.Message),
		}
	}
	return fixed, nil
}

// fixSafe invokes a rule's Fix with the same panic conversion as
// checkSafe.
func fixSafe(r Rule, n *syntax.Node, info layout.Info, m *layout.Model) (fixed layout.Info, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &RuleInternalError{RuleID: r.ID(), Err: fmt.Errorf("fix panicked: %v", p)}
		}
	}()

	return r.Fix(n, info, m), nil
}
