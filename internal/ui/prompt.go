package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/tlog/internal/selector"
)

// DefaultMaxListed is how many ranked candidates are drawn under the prompt.
const DefaultMaxListed = 10

// Model draws a selector machine and feeds it key presses. The machine holds
// all state; the model only translates keys and renders.
type Model struct {
	machine   *selector.Machine
	header    string
	theme     Theme
	keys      keyMap
	help      help.Model
	maxListed int
}

func NewModel(m *selector.Machine, header string, theme Theme, maxListed int) Model {
	if maxListed <= 0 {
		maxListed = DefaultMaxListed
	}
	h := help.New()
	h.Styles.ShortKey = theme.Hint
	h.Styles.ShortDesc = theme.Label
	return Model{
		machine:   m,
		header:    header,
		theme:     theme,
		keys:      newKeyMap(m.QuitSequence(), m.Mode() == selector.PickMode),
		help:      h,
		maxListed: maxListed,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		for _, k := range m.translate(msg) {
			m.machine.Press(k)
		}
		if m.machine.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) translate(msg tea.KeyMsg) []selector.Key {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return []selector.Key{{Type: selector.KeyEscape}}
	case key.Matches(msg, m.keys.Commit):
		return []selector.Key{{Type: selector.KeyEnter}}
	case key.Matches(msg, m.keys.Erase):
		return []selector.Key{{Type: selector.KeyBackspace}}
	}
	switch msg.Type {
	case tea.KeyRunes:
		return selector.Type(string(msg.Runes))
	case tea.KeySpace:
		return []selector.Key{{Type: selector.KeyRune, Rune: ' '}}
	}
	return nil
}

func (m Model) View() string {
	if m.machine.Done() {
		return ""
	}
	var b strings.Builder

	if m.header != "" {
		b.WriteString(m.theme.Label.Render("running ") + m.theme.Value.Render(m.header) + "\n")
	}
	if p := m.machine.Project(); p != "" {
		b.WriteString(m.theme.Label.Render("project ") + m.theme.Title.Render(p) + "\n")
	}

	b.WriteString(m.theme.Prompt.Render(">") + " " + m.machine.Buffer() + m.theme.Cursor.Render(" ") + "\n")

	for i, s := range m.machine.Ranked() {
		if i >= m.maxListed {
			b.WriteString(m.theme.Hint.Render(fmt.Sprintf("    … %d more", len(m.machine.Ranked())-i)) + "\n")
			break
		}
		idx := "   "
		if i <= 9 {
			idx = fmt.Sprintf("[%d]", i)
		}
		label := m.theme.Value.Render(s.Label)
		if i == 0 {
			label = m.theme.Title.Render(s.Label)
		}
		b.WriteString(m.theme.Index.Render(idx) + " " + label + "\n")
	}

	if err := m.machine.Err(); err != nil {
		b.WriteString(m.theme.Error.Render(err.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Prompter runs the machine as a full bubbletea program. The program owns
// the terminal while it runs and restores it on every exit path.
type Prompter struct {
	Theme     Theme
	MaxListed int
	Options   []tea.ProgramOption
}

func (p Prompter) Prompt(ctx context.Context, m *selector.Machine, header string) (selector.Outcome, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.Options...)
	prog := tea.NewProgram(NewModel(m, header, p.Theme, p.MaxListed), opts...)
	if _, err := prog.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return selector.Outcome{Kind: selector.Cancelled}, nil
		}
		return selector.Outcome{}, fmt.Errorf("run prompt: %w", err)
	}
	if !m.Done() {
		return selector.Outcome{Kind: selector.Cancelled}, nil
	}
	return m.Outcome(), nil
}
