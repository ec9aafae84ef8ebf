package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

func TestForcedDeletePolicy(t *testing.T) {
	policy := NewForcedDeletePolicy(nil)
	res, err := policy.Resolve(context.Background(), rsscripter.Mismatch{
		Kind: rsscripter.MismatchExtraFile,
		Path: "Schemas/public/Tables/old.sql",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Decision != rsscripter.DecisionDelete {
		t.Errorf("expected delete, got %v", res.Decision)
	}
}

func TestForcedKeepPolicy(t *testing.T) {
	policy := NewForcedKeepPolicy(nil)
	res, err := policy.Resolve(context.Background(), rsscripter.Mismatch{
		Kind: rsscripter.MismatchEmptyDir,
		Path: "Schemas/old_schema",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Decision != rsscripter.DecisionKeep {
		t.Errorf("expected keep, got %v", res.Decision)
	}
}

func TestForcedPolicyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	policy := NewForcedDeletePolicy(nil)
	_, err := policy.Resolve(ctx, rsscripter.Mismatch{Path: "x.sql"})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func updatePrompt(t *testing.T, msg tea.Msg) promptModel {
	t.Helper()
	m := newPromptModel(rsscripter.Mismatch{
		Kind: rsscripter.MismatchExtraFile,
		Path: "Schemas/public/Tables/old.sql",
	})
	updated, cmd := m.Update(msg)
	final, ok := updated.(promptModel)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	if final.answered || final.cancelled {
		if cmd == nil {
			t.Error("terminal answer must quit the program")
		}
	}
	return final
}

func TestPromptAnswersSingleItem(t *testing.T) {
	cases := []struct {
		key  rune
		want rsscripter.Decision
	}{
		{'k', rsscripter.DecisionKeep},
		{'d', rsscripter.DecisionDelete},
		{'i', rsscripter.DecisionIgnore},
	}
	for _, tc := range cases {
		m := updatePrompt(t, keyRune(tc.key))
		if !m.answered {
			t.Errorf("key %q: expected an answer", tc.key)
			continue
		}
		if m.resolution.Decision != tc.want {
			t.Errorf("key %q: expected %v, got %v", tc.key, tc.want, m.resolution.Decision)
		}
		if m.resolution.ApplyToAll {
			t.Errorf("key %q: lowercase must not apply to all", tc.key)
		}
	}
}

func TestPromptAnswersApplyToAll(t *testing.T) {
	cases := []struct {
		key  rune
		want rsscripter.Decision
	}{
		{'K', rsscripter.DecisionKeep},
		{'D', rsscripter.DecisionDelete},
		{'I', rsscripter.DecisionIgnore},
	}
	for _, tc := range cases {
		m := updatePrompt(t, keyRune(tc.key))
		if !m.answered {
			t.Errorf("key %q: expected an answer", tc.key)
			continue
		}
		if m.resolution.Decision != tc.want {
			t.Errorf("key %q: expected %v, got %v", tc.key, tc.want, m.resolution.Decision)
		}
		if !m.resolution.ApplyToAll {
			t.Errorf("key %q: uppercase must apply to all", tc.key)
		}
	}
}

func TestPromptCancel(t *testing.T) {
	m := updatePrompt(t, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.cancelled {
		t.Error("expected cancelled state after esc")
	}
	if m.answered {
		t.Error("cancelled prompt must not carry an answer")
	}
}

func TestPromptIgnoresUnboundKeys(t *testing.T) {
	m := updatePrompt(t, keyRune('x'))
	if m.answered || m.cancelled {
		t.Error("unbound key must not resolve the prompt")
	}
}

func TestPromptViewNamesThePath(t *testing.T) {
	m := newPromptModel(rsscripter.Mismatch{
		Kind: rsscripter.MismatchExtraFile,
		Path: "Schemas/public/Tables/old.sql",
	})
	view := m.View()
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	if !strings.Contains(view, "Schemas/public/Tables/old.sql") {
		t.Errorf("view must show the mismatch path, got: %q", view)
	}
}
