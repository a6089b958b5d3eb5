// Package selector is the keystroke-driven prompt behind tlog: it keeps the
// input buffer, re-ranks candidates on every edit and turns `\<digit>`
// selectors and Enter into decisions. It does no terminal I/O; callers feed
// it keys and read back its state.
package selector

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ramanasai/tlog/internal/rank"
)

var (
	ErrNoCandidate = errors.New("no candidate at that index")
	ErrEmptyLabel  = errors.New("type a name first")
)

// Catalog is the project and task storage the picker reads and extends.
type Catalog interface {
	Projects() ([]string, error)
	Tasks(project string) ([]string, error)
	CreateProject(name string) error
	AddTask(project, task string) error
}

type Mode int

const (
	// PickMode chooses or creates a project, then a task.
	PickMode Mode = iota
	// NoteMode collects free text that closes the running entry.
	NoteMode
)

type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyBackspace
	KeyEscape
)

type Key struct {
	Type KeyType
	Rune rune
}

// Type turns s into one KeyRune per rune.
func Type(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Key{Type: KeyRune, Rune: r})
	}
	return keys
}

type OutcomeKind int

const (
	// Pending means the prompt is still waiting for keys.
	Pending OutcomeKind = iota
	StartTimer
	CloseEntry
	Cancelled
	Abandoned
)

func (k OutcomeKind) String() string {
	switch k {
	case Pending:
		return "pending"
	case StartTimer:
		return "start"
	case CloseEntry:
		return "close"
	case Cancelled:
		return "cancel"
	case Abandoned:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is how the prompt finished. Project and Task are set for
// StartTimer, Note for CloseEntry.
type Outcome struct {
	Kind    OutcomeKind
	Project string
	Task    string
	Note    string
}

type Options struct {
	// QuitSequence ends the prompt without committing; DefaultQuit if empty.
	QuitSequence string
}

// Machine is one prompt session. It is not safe for concurrent use.
//
// Candidates are ranked against the buffer without a trailing selector, so
// `\N` indexes the list that was on screen before it was typed.
type Machine struct {
	catalog Catalog
	mode    Mode
	parser  Parser

	buf     []rune
	project string
	pool    []string
	ranked  []rank.Scored

	err  error
	done Outcome
}

func newMachine(c Catalog, mode Mode, opts Options) *Machine {
	quit := opts.QuitSequence
	if quit == "" {
		quit = DefaultQuit
	}
	return &Machine{catalog: c, mode: mode, parser: Parser{Quit: quit}}
}

// NewPicker starts a prompt over the catalog's projects. A listing failure
// is shown as the status and leaves the candidate list empty.
func NewPicker(c Catalog, opts Options) *Machine {
	m := newMachine(c, PickMode, opts)
	projects, err := c.Projects()
	if err != nil {
		m.err = fmt.Errorf("list projects: %w", err)
	}
	m.pool = projects
	m.rerank()
	return m
}

// NewNote starts a free-text prompt for the closing note.
func NewNote(opts Options) *Machine {
	return newMachine(nil, NoteMode, opts)
}

func (m *Machine) Mode() Mode { return m.mode }
func (m *Machine) Buffer() string { return string(m.buf) }
func (m *Machine) Project() string { return m.project }
func (m *Machine) Ranked() []rank.Scored { return m.ranked }
func (m *Machine) Outcome() Outcome { return m.done }
func (m *Machine) Done() bool { return m.done.Kind != Pending }
func (m *Machine) QuitSequence() string { return m.parser.Quit }

// Err is the last recoverable error, cleared by the next key.
func (m *Machine) Err() error { return m.err }

// Labels returns the ranked candidates without scores.
func (m *Machine) Labels() []string {
	out := make([]string, len(m.ranked))
	for i, s := range m.ranked {
		out[i] = s.Label
	}
	return out
}

// Press applies one key. Once the machine is done further keys are ignored.
func (m *Machine) Press(k Key) Outcome {
	if m.Done() {
		return m.done
	}
	m.err = nil

	switch k.Type {
	case KeyRune:
		if unicode.IsControl(k.Rune) {
			break
		}
		m.buf = append(m.buf, k.Rune)
		m.rerank()
		m.onText()
	case KeyBackspace:
		if len(m.buf) > 0 {
			m.buf = m.buf[:len(m.buf)-1]
			m.rerank()
		}
	case KeyEnter:
		m.commit()
	case KeyEscape:
		m.done = Outcome{Kind: Cancelled}
	}
	return m.done
}

// PressAll applies keys in order and stops early once the machine is done.
func (m *Machine) PressAll(keys []Key) Outcome {
	for _, k := range keys {
		if m.Press(k).Kind != Pending {
			break
		}
	}
	return m.done
}

func (m *Machine) rerank() {
	if m.mode == NoteMode {
		return
	}
	m.ranked = rank.Rank(m.parser.Query(string(m.buf)), m.pool)
}

func (m *Machine) onText() {
	cmd := m.parser.Parse(string(m.buf))
	switch cmd.Kind {
	case Quit:
		m.done = Outcome{Kind: Abandoned}
	case SelectIndex:
		if m.mode == PickMode {
			m.selectAt(cmd)
		}
	}
}

func (m *Machine) selectAt(cmd Command) {
	if cmd.Index >= len(m.ranked) {
		m.err = fmt.Errorf(`%w: \%d (%d listed)`, ErrNoCandidate, cmd.Index, len(m.ranked))
		m.buf = []rune(cmd.Text)
		m.rerank()
		return
	}
	label := m.ranked[cmd.Index].Label
	if m.project == "" {
		m.enterProject(label)
		return
	}
	m.done = Outcome{Kind: StartTimer, Project: m.project, Task: label}
}

func (m *Machine) enterProject(project string) {
	tasks, err := m.catalog.Tasks(project)
	if err != nil {
		m.err = fmt.Errorf("load tasks: %w", err)
	}
	m.project = project
	m.pool = tasks
	m.buf = m.buf[:0]
	m.rerank()
}

func (m *Machine) commit() {
	text := strings.TrimSpace(string(m.buf))

	if m.mode == NoteMode {
		m.done = Outcome{Kind: CloseEntry, Note: text}
		return
	}
	if text == "" {
		m.err = ErrEmptyLabel
		return
	}

	if m.project == "" {
		if err := m.catalog.CreateProject(text); err != nil {
			m.err = err
			return
		}
		m.enterProject(text)
		return
	}

	// A failed append still starts the timer; the caller sees it in Err.
	if err := m.catalog.AddTask(m.project, text); err != nil {
		m.err = fmt.Errorf("save task: %w", err)
	}
	m.done = Outcome{Kind: StartTimer, Project: m.project, Task: text}
}
