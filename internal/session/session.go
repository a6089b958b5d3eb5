// Package session decides at start-up whether the last entry in today's log
// is still running and drives the matching prompt: pick a project and task
// to start a new entry, or write the note that closes the running one.
//
// The day log is the only state. Nothing else records that an entry is
// running, so a session can be closed from a later process.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ramanasai/tlog/internal/selector"
	"github.com/ramanasai/tlog/internal/store"
)

// Prompter runs a selector machine to completion, usually by reading keys
// from a terminal. header is the running record shown in note mode.
type Prompter interface {
	Prompt(ctx context.Context, m *selector.Machine, header string) (selector.Outcome, error)
}

// Notifier is told about committed entries; errors are logged and ignored.
type Notifier interface {
	Started(project, task string) error
	Closed(record string) error
}

// Tracker ties the store to a clock.
type Tracker struct {
	Store *store.Store
	Now   func() time.Time
}

func NewTracker(s *store.Store) *Tracker {
	return &Tracker{Store: s, Now: time.Now}
}

// LogPath is today's log file.
func (t *Tracker) LogPath() string {
	return t.Store.DayPath(t.Now())
}

// Prepare creates the folders and today's empty log.
func (t *Tracker) Prepare() error {
	_, err := t.Store.Init(t.Now())
	return err
}

func (t *Tracker) State() (store.State, error) {
	return store.LogState(t.LogPath())
}

// Pending is the open record at the end of today's log, if any.
func (t *Tracker) Pending() (string, error) {
	return store.Pending(t.LogPath())
}

// Begin appends an open record for project and task to the log of the
// current day and returns it. The week folder is created if the day is new.
func (t *Tracker) Begin(project, task string) (string, error) {
	now := t.Now()
	path := t.Store.DayPath(now)
	st, err := store.LogState(path)
	if err != nil {
		return "", err
	}
	if st == store.Open {
		return "", fmt.Errorf("an entry is already running in %s", path)
	}
	rec := store.OpenRecord(now, project, task)
	return rec, store.Append(path, rec)
}

// Close appends note and the end time to the open record in the log at
// path and returns the appended text. path is the log the entry was opened
// in, which is yesterday's once the prompt runs past midnight.
func (t *Tracker) Close(path, note string) (string, error) {
	now := t.Now()
	st, err := store.LogState(path)
	if err != nil {
		return "", err
	}
	if st != store.Open {
		return "", fmt.Errorf("no running entry in %s", path)
	}
	rec := store.CloseRecord(now, note)
	return rec, store.Append(path, rec)
}

// Result says what a run did.
type Result struct {
	State   store.State
	Outcome selector.Outcome
	// Record is the text appended to the log, empty if nothing was written.
	Record string
	// WriteErr is set when the outcome could not be appended. It is logged
	// and reported here rather than returned: the prompt itself succeeded.
	WriteErr error
}

type Options struct {
	Selector selector.Options
	Logger   *slog.Logger
	Notifier Notifier
}

// Run inspects today's log and runs one prompt against it. Only setup and
// prompt failures are returned as errors.
func Run(ctx context.Context, t *Tracker, p Prompter, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := t.Prepare(); err != nil {
		return Result{}, fmt.Errorf("prepare store: %w", err)
	}
	path := t.LogPath()
	st, err := store.LogState(path)
	if err != nil {
		return Result{}, err
	}
	log.Debug("session state", "log", path, "state", st)

	res := Result{State: st}
	switch st {
	case store.Idle:
		m := selector.NewPicker(t.Store, opts.Selector)
		out, err := p.Prompt(ctx, m, "")
		if err != nil {
			return res, err
		}
		res.Outcome = out
		if m.Err() != nil {
			log.Warn("prompt finished with error", "err", m.Err())
		}
		if out.Kind != selector.StartTimer {
			return res, nil
		}
		res.Record, err = t.Begin(out.Project, out.Task)
		if err != nil {
			log.Error("start entry", "project", out.Project, "task", out.Task, "err", err)
			res.Record, res.WriteErr = "", err
			return res, nil
		}
		if opts.Notifier != nil {
			if err := opts.Notifier.Started(out.Project, out.Task); err != nil {
				log.Debug("notify", "err", err)
			}
		}

	case store.Open:
		pending, err := store.Pending(path)
		if err != nil {
			log.Warn("read pending entry", "err", err)
		}
		m := selector.NewNote(opts.Selector)
		out, err := p.Prompt(ctx, m, pending)
		if err != nil {
			return res, err
		}
		res.Outcome = out
		if out.Kind != selector.CloseEntry {
			return res, nil
		}
		res.Record, err = t.Close(path, out.Note)
		if err != nil {
			log.Error("close entry", "err", err)
			res.Record, res.WriteErr = "", err
			return res, nil
		}
		if opts.Notifier != nil {
			if err := opts.Notifier.Closed(pending + res.Record); err != nil {
				log.Debug("notify", "err", err)
			}
		}
	}
	return res, nil
}
