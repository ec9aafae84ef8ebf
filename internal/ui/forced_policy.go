// Package ui provides the reconciliation decision policies: a forced policy
// for unattended runs and an interactive single-keystroke prompt.
package ui

import (
	"context"

	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// ForcedPolicy implements ReconcilePolicy with a fixed answer for every
// mismatch. Used for unattended runs where no prompt is possible.
type ForcedPolicy struct {
	decision rsscripter.Decision
	logger   rsscripter.Logger
}

// NewForcedDeletePolicy creates a policy that deletes every mismatch.
func NewForcedDeletePolicy(logger rsscripter.Logger) rsscripter.ReconcilePolicy {
	return &ForcedPolicy{decision: rsscripter.DecisionDelete, logger: logger}
}

// NewForcedKeepPolicy creates a policy that keeps every mismatch.
func NewForcedKeepPolicy(logger rsscripter.Logger) rsscripter.ReconcilePolicy {
	return &ForcedPolicy{decision: rsscripter.DecisionKeep, logger: logger}
}

// Resolve returns the fixed decision.
func (p *ForcedPolicy) Resolve(ctx context.Context, m rsscripter.Mismatch) (rsscripter.Resolution, error) {
	select {
	case <-ctx.Done():
		return rsscripter.Resolution{}, ctx.Err()
	default:
	}
	if p.logger != nil {
		p.logger.Verbose("%s %s: forced %s", m.Kind, m.Path, p.decision)
	}
	return rsscripter.Resolution{Decision: p.decision}, nil
}

// Verify ForcedPolicy implements the ReconcilePolicy interface at compile time
var _ rsscripter.ReconcilePolicy = (*ForcedPolicy)(nil)
