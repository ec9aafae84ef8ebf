package rsscripter

import (
	"context"
	"fmt"
)

// MismatchKind classifies what reconciliation found in the output tree that
// the current generation pass did not produce.
type MismatchKind int

const (
	// MismatchExtraFile is a script file not written by the current run.
	MismatchExtraFile MismatchKind = iota

	// MismatchEmptyDir is an untracked directory that contains nothing after
	// its own children have been resolved.
	MismatchEmptyDir
)

// String returns a human-readable name for the mismatch kind.
func (k MismatchKind) String() string {
	switch k {
	case MismatchExtraFile:
		return "extra file"
	case MismatchEmptyDir:
		return "empty directory"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Mismatch is a single item reconciliation needs a decision for.
// Path is relative to the output root, forward slashes.
type Mismatch struct {
	Kind MismatchKind
	Path string
}

// Decision is the policy's answer for one mismatch.
type Decision int

const (
	// DecisionKeep leaves the item in place for this run.
	DecisionKeep Decision = iota

	// DecisionDelete removes the item from the output tree.
	DecisionDelete

	// DecisionIgnore keeps the item and appends it to the persisted ignore
	// list so future runs stop asking.
	DecisionIgnore
)

// String returns a human-readable name for the decision.
func (d Decision) String() string {
	switch d {
	case DecisionKeep:
		return "keep"
	case DecisionDelete:
		return "delete"
	case DecisionIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Resolution carries the decision plus the optional "apply to all remaining
// items of this kind" shortcut.
type Resolution struct {
	Decision   Decision
	ApplyToAll bool
}

// ReconcilePolicy decides what happens to each mismatch found during
// reconciliation.
//
// Implementations:
//   - ForcedPolicy: always answers delete (or always keep), for unattended runs
//   - InteractivePolicy: prompts per item, blocking on a single keystroke
type ReconcilePolicy interface {
	// Resolve returns the decision for one mismatch. The reconciler applies
	// ApplyToAll itself and stops consulting the policy for that kind.
	Resolve(ctx context.Context, m Mismatch) (Resolution, error)
}
