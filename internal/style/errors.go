package style

import "fmt"

// RuleInternalError reports a rule that violated its own contract: its
// Check panicked, or its Fix failed to stabilize under re-checking.
// This is a tooling defect, not a defect in the checked source; the
// rule id is carried so the report can say so.
type RuleInternalError struct {
	RuleID string
	Err    error
}

// Error implements the error interface.
func (e *RuleInternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rule %s: internal error: %v", e.RuleID, e.Err)
	}
	return fmt.Sprintf("rule %s: internal error", e.RuleID)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *RuleInternalError) Unwrap() error {
	return e.Err
}
