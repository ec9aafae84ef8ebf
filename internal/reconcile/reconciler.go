package reconcile

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/rsscripter/rsscripter/internal/files/filesystem"
	"github.com/rsscripter/rsscripter/internal/files/tracker"
	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// Reconciler walks the output tree after generation and resolves drift
// through the configured decision policy. Stale script files and empty
// untracked directories are the two mismatch kinds; anything else in the
// tree (non-script files, hidden directories) is left alone.
type Reconciler struct {
	fs      filesystem.Provider
	tracked *tracker.Tracker
	policy  rsscripter.ReconcilePolicy
	logger  rsscripter.Logger

	// sticky holds the apply-to-all decision per mismatch kind once the
	// policy has issued one.
	sticky map[rsscripter.MismatchKind]rsscripter.Decision
}

// NewReconciler creates a reconciler over the given tracked path set.
//
// Parameters:
//   - fs: the filesystem provider (must not be nil)
//   - tracked: the paths the current run produced (must not be nil)
//   - policy: the drift decision policy (must not be nil)
//   - logger: the message sink (must not be nil)
func NewReconciler(fs filesystem.Provider, tracked *tracker.Tracker, policy rsscripter.ReconcilePolicy, logger rsscripter.Logger) *Reconciler {
	if fs == nil {
		panic("reconcile: filesystem provider cannot be nil")
	}
	if tracked == nil {
		panic("reconcile: tracker cannot be nil")
	}
	if policy == nil {
		panic("reconcile: policy cannot be nil")
	}
	if logger == nil {
		panic("reconcile: logger cannot be nil")
	}
	return &Reconciler{
		fs:      fs,
		tracked: tracked,
		policy:  policy,
		logger:  logger,
		sticky:  make(map[rsscripter.MismatchKind]rsscripter.Decision),
	}
}

// Run reconciles the tree under root. The persisted ignore list is loaded
// first and its expansion joins the tracked set; ignore decisions made during
// the walk are appended and the list is rewritten only when modified.
func (r *Reconciler) Run(ctx context.Context, root string) error {
	ignore := LoadIgnoreList(r.fs, root)
	ignore.Materialize(r.tracked)

	if _, err := r.walk(ctx, root, "", ignore); err != nil {
		return err
	}
	if err := ignore.Save(); err != nil {
		return fmt.Errorf("failed to save ignore list: %w", err)
	}
	return nil
}

// walk resolves one directory bottom-up and returns how many entries survive
// in it. A surviving count of zero makes the directory itself a deletion
// candidate for the caller.
func (r *Reconciler) walk(ctx context.Context, root, relDir string, ignore *IgnoreList) (int, error) {
	fullDir := root
	if relDir != "" {
		fullDir = filepath.Join(root, filepath.FromSlash(relDir))
	}
	entries, err := r.fs.ReadDir(fullDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", fullDir, err)
	}

	remaining := 0
	for _, entry := range entries {
		relPath := entry.Name()
		if relDir != "" {
			relPath = path.Join(relDir, entry.Name())
		}

		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") {
				remaining++
				continue
			}
			childRemaining, err := r.walk(ctx, root, relPath, ignore)
			if err != nil {
				return 0, err
			}
			if childRemaining > 0 || r.tracked.Contains(relPath) {
				remaining++
				continue
			}
			kept, err := r.resolve(ctx, rsscripter.MismatchEmptyDir, root, relPath, ignore)
			if err != nil {
				return 0, err
			}
			if kept {
				remaining++
			}
			continue
		}

		if !strings.EqualFold(path.Ext(entry.Name()), rsscripter.ScriptExtension) || r.tracked.Contains(relPath) {
			remaining++
			continue
		}
		kept, err := r.resolve(ctx, rsscripter.MismatchExtraFile, root, relPath, ignore)
		if err != nil {
			return 0, err
		}
		if kept {
			remaining++
		}
	}
	return remaining, nil
}

// resolve asks the policy (or a sticky apply-to-all answer) what to do with
// one mismatch and carries the decision out. It reports whether the item
// survives in the tree.
func (r *Reconciler) resolve(ctx context.Context, kind rsscripter.MismatchKind, root, relPath string, ignore *IgnoreList) (bool, error) {
	decision, ok := r.sticky[kind]
	if !ok {
		resolution, err := r.policy.Resolve(ctx, rsscripter.Mismatch{Kind: kind, Path: relPath})
		if err != nil {
			return false, fmt.Errorf("decision policy failed for %s: %w", relPath, err)
		}
		decision = resolution.Decision
		if resolution.ApplyToAll {
			r.sticky[kind] = decision
		}
	}

	switch decision {
	case rsscripter.DecisionDelete:
		full := filepath.Join(root, filepath.FromSlash(relPath))
		if err := r.fs.Remove(full); err != nil {
			// Deletion failures are per-item: report and move on.
			r.logger.Error("failed to delete %s: %v", relPath, err)
			return true, nil
		}
		r.logger.Info("deleted %s %s", kind, relPath)
		return false, nil
	case rsscripter.DecisionIgnore:
		ignore.Append(relPath)
		r.tracked.Record(relPath)
		r.logger.Info("ignoring %s from now on", relPath)
		return true, nil
	default:
		r.logger.Verbose("keeping %s %s", kind, relPath)
		return true, nil
	}
}
