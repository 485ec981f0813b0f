// Package rules manages registration of style rules.
package rules

import (
	"github.com/donaldgifford/hstyle/internal/config"
	"github.com/donaldgifford/hstyle/internal/style"
)

// builder constructs a rule from the active configuration.
type builder func(cfg *config.StyleConfig) style.Rule

var builders []builder

// register adds a rule builder to the registry. Builders run in the
// order they are registered, which fixes the evaluation and report
// order across runs.
func register(b builder) {
	builders = append(builders, b)
}

// All constructs every registered rule in registration order, dropping
// rules the configuration disables. The result is safe for concurrent
// read access; rules hold no mutable state.
func All(cfg *config.StyleConfig) style.Rules {
	out := make(style.Rules, 0, len(builders))
	for _, b := range builders {
		r := b(cfg)
		if cfg.Enabled(r.ID()) {
			out = append(out, r)
		}
	}
	return out
}
