package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/tlog/internal/selector"
)

type memCatalog map[string][]string

func (c memCatalog) Projects() ([]string, error) {
	return []string{"Album", "Alpha"}, nil
}

func (c memCatalog) Tasks(p string) ([]string, error) { return c[p], nil }

func (c memCatalog) CreateProject(p string) error {
	c[p] = nil
	return nil
}

func (c memCatalog) AddTask(p, t string) error {
	c[p] = append(c[p], t)
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestModelTypesAndSelects(t *testing.T) {
	cat := memCatalog{"Alpha": {"Bug"}}
	mach := selector.NewPicker(cat, selector.Options{})
	m := NewModel(mach, "", PlainTheme, 0)

	m, cmd := send(t, m, runes("A"), runes("l"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd != nil {
		t.Fatal("unexpected command while typing")
	}
	if mach.Buffer() != "Al " {
		t.Fatalf("buffer = %q", mach.Buffer())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if mach.Buffer() != "Al" {
		t.Fatalf("buffer after backspace = %q", mach.Buffer())
	}

	view := m.View()
	for _, want := range []string{"> Al", "[0] Album", "[1] Alpha"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	// a pasted chunk arrives as one message
	m, _ = send(t, m, runes(`\1`))
	if mach.Project() != "Alpha" {
		t.Fatalf("project = %q", mach.Project())
	}
	if !strings.Contains(m.View(), "project Alpha") {
		t.Fatalf("view:\n%s", m.View())
	}

	m, cmd = send(t, m, runes(`\0`))
	if cmd == nil {
		t.Fatal("expected quit command after selection")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("command is not tea.Quit")
	}
	out := mach.Outcome()
	if out.Kind != selector.StartTimer || out.Project != "Alpha" || out.Task != "Bug" {
		t.Fatalf("outcome = %+v", out)
	}
	if m.View() != "" {
		t.Fatalf("view after finish = %q", m.View())
	}
}

func TestModelEnterAndEscape(t *testing.T) {
	cat := memCatalog{}
	mach := selector.NewPicker(cat, selector.Options{})
	m := NewModel(mach, "", PlainTheme, 0)
	m, _ = send(t, m, runes("Gamma"), tea.KeyMsg{Type: tea.KeyEnter})
	if mach.Project() != "Gamma" {
		t.Fatalf("project = %q", mach.Project())
	}
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || mach.Outcome().Kind != selector.Cancelled {
		t.Fatalf("outcome = %+v", mach.Outcome())
	}

	mach = selector.NewNote(selector.Options{})
	m = NewModel(mach, "", PlainTheme, 0)
	_, cmd = send(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || mach.Outcome().Kind != selector.Cancelled {
		t.Fatalf("ctrl+c outcome = %+v", mach.Outcome())
	}
}

func TestModelNoteView(t *testing.T) {
	mach := selector.NewNote(selector.Options{})
	m := NewModel(mach, "09:15 Alpha_Bug (", PlainTheme, 0)
	m, _ = send(t, m, runes("fixed it"))
	view := m.View()
	if !strings.Contains(view, "running 09:15 Alpha_Bug (") || !strings.Contains(view, "> fixed it") {
		t.Fatalf("view:\n%s", view)
	}
	if strings.Contains(view, "[0]") {
		t.Fatalf("note view lists candidates:\n%s", view)
	}
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if out := mach.Outcome(); out.Kind != selector.CloseEntry || out.Note != "fixed it" {
		t.Fatalf("outcome = %+v", out)
	}
}

func TestModelShowsErrorsAndTruncates(t *testing.T) {
	mach := selector.NewPicker(memCatalog{}, selector.Options{})
	m := NewModel(mach, "", PlainTheme, 1)
	m, _ = send(t, m, runes(`A\7`))
	view := m.View()
	if !strings.Contains(view, "no candidate") {
		t.Fatalf("view missing error:\n%s", view)
	}
	if !strings.Contains(view, "[0] ") || strings.Contains(view, "[1] ") || !strings.Contains(view, "1 more") {
		t.Fatalf("list not truncated:\n%s", view)
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("plain").Title.Render("x") != "x" {
		t.Fatal("plain theme styled output")
	}
	_ = ThemeByName("anything")
}
