package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Commit key.Binding
	Erase  key.Binding
	Cancel key.Binding
	// Select and Quit are typed into the buffer; they are listed for help only.
	Select key.Binding
	Quit   key.Binding
}

func newKeyMap(quit string, picking bool) keyMap {
	commit := "save note"
	if picking {
		commit = "create / start"
	}
	km := keyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", commit)),
		Erase:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "erase")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		Select: key.NewBinding(key.WithKeys(`\`), key.WithHelp(`\0-\9`, "pick")),
		Quit:   key.NewBinding(key.WithKeys(quit), key.WithHelp(quit, "quit")),
	}
	km.Select.SetEnabled(picking)
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Commit, k.Erase, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
