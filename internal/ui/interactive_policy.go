package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// InteractivePolicy implements ReconcilePolicy with a per-item terminal
// prompt. Each mismatch blocks the run on a single keystroke; an uppercase
// answer applies the decision to all remaining mismatches of that kind.
type InteractivePolicy struct{}

// NewInteractivePolicy creates a new InteractivePolicy.
func NewInteractivePolicy() rsscripter.ReconcilePolicy {
	return &InteractivePolicy{}
}

// Resolve prompts for one mismatch and returns the chosen resolution.
func (p *InteractivePolicy) Resolve(ctx context.Context, m rsscripter.Mismatch) (rsscripter.Resolution, error) {
	program := tea.NewProgram(
		newPromptModel(m),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	final, err := program.Run()
	if err != nil {
		return rsscripter.Resolution{}, fmt.Errorf("decision prompt failed: %w", err)
	}
	model, ok := final.(promptModel)
	if !ok || !model.answered {
		return rsscripter.Resolution{}, fmt.Errorf("decision prompt cancelled for %s", m.Path)
	}
	return model.resolution, nil
}

// Verify InteractivePolicy implements the ReconcilePolicy interface at compile time
var _ rsscripter.ReconcilePolicy = (*InteractivePolicy)(nil)

type promptKeyMap struct {
	Keep      key.Binding
	Delete    key.Binding
	Ignore    key.Binding
	KeepAll   key.Binding
	DeleteAll key.Binding
	IgnoreAll key.Binding
	Quit      key.Binding
}

func defaultPromptKeyMap() promptKeyMap {
	return promptKeyMap{
		Keep: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "keep"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Ignore: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "ignore from now on"),
		),
		KeepAll: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "keep all"),
		),
		DeleteAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete all"),
		),
		IgnoreAll: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "ignore all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "abort"),
		),
	}
}

type promptStyles struct {
	Title lipgloss.Style
	Path  lipgloss.Style
	Help  lipgloss.Style
}

func defaultPromptStyles() promptStyles {
	return promptStyles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		Path:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

// promptModel is the bubbletea model for one mismatch decision.
type promptModel struct {
	mismatch   rsscripter.Mismatch
	keyMap     promptKeyMap
	styles     promptStyles
	resolution rsscripter.Resolution
	answered   bool
	cancelled  bool
}

func newPromptModel(m rsscripter.Mismatch) promptModel {
	return promptModel{
		mismatch: m,
		keyMap:   defaultPromptKeyMap(),
		styles:   defaultPromptStyles(),
	}
}

// Init implements tea.Model.
func (m promptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keyMap.Keep):
		return m.answer(rsscripter.DecisionKeep, false)
	case key.Matches(keyMsg, m.keyMap.Delete):
		return m.answer(rsscripter.DecisionDelete, false)
	case key.Matches(keyMsg, m.keyMap.Ignore):
		return m.answer(rsscripter.DecisionIgnore, false)
	case key.Matches(keyMsg, m.keyMap.KeepAll):
		return m.answer(rsscripter.DecisionKeep, true)
	case key.Matches(keyMsg, m.keyMap.DeleteAll):
		return m.answer(rsscripter.DecisionDelete, true)
	case key.Matches(keyMsg, m.keyMap.IgnoreAll):
		return m.answer(rsscripter.DecisionIgnore, true)
	case key.Matches(keyMsg, m.keyMap.Quit):
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m promptModel) answer(d rsscripter.Decision, applyToAll bool) (tea.Model, tea.Cmd) {
	m.resolution = rsscripter.Resolution{Decision: d, ApplyToAll: applyToAll}
	m.answered = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m promptModel) View() string {
	title := m.styles.Title.Render(fmt.Sprintf("Found %s not produced by this run:", m.mismatch.Kind))
	path := m.styles.Path.Render("  " + m.mismatch.Path)
	help := m.styles.Help.Render("k keep • d delete • i ignore from now on • uppercase applies to all of this kind • q abort")
	return title + "\n" + path + "\n" + help + "\n"
}
